package dispatch_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"searchmenu/internal/dispatch"
	"searchmenu/internal/ipc"
	"searchmenu/internal/logging"
	"searchmenu/internal/menu"
)

type recordingSender struct {
	commands []string
	err      error
}

func (s *recordingSender) Send(_ context.Context, command string) error {
	s.commands = append(s.commands, command)
	return s.err
}

func newDispatcher(sender dispatch.Sender) (*dispatch.Dispatcher, *bytes.Buffer) {
	var out bytes.Buffer
	return dispatch.New(sender, &out, logging.NewNop()), &out
}

var playlistInput = menu.Input{
	Mode:     menu.ModePlaylist,
	Playlist: menu.Text("/x/y/movie.mkv\n/x/z/second.mkv\n/x/w/movie.mkv"),
}

func TestRunListsLabelsInOrder(t *testing.T) {
	sender := &recordingSender{}
	d, out := newDispatcher(sender)

	outcome, err := d.Run(context.Background(), playlistInput, nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if outcome != dispatch.OutcomeListed {
		t.Fatalf("unexpected outcome %s", outcome)
	}
	if got := out.String(); got != "movie.mkv\nsecond.mkv\nmovie.mkv\n" {
		t.Fatalf("unexpected output %q", got)
	}
	if len(sender.commands) != 0 {
		t.Fatalf("listing must not send, got %q", sender.commands)
	}
}

func TestRunSendsMatchingAction(t *testing.T) {
	sender := &recordingSender{}
	d, out := newDispatcher(sender)

	outcome, err := d.Run(context.Background(), playlistInput, []string{"second.mkv"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if outcome != dispatch.OutcomeSent {
		t.Fatalf("unexpected outcome %s", outcome)
	}
	if len(sender.commands) != 1 || sender.commands[0] != "no-osd set playlist-pos 1\n" {
		t.Fatalf("unexpected commands %q", sender.commands)
	}
	if out.Len() != 0 {
		t.Fatalf("dispatch must not print, got %q", out.String())
	}
}

func TestRunFirstDuplicateWins(t *testing.T) {
	sender := &recordingSender{}
	d, _ := newDispatcher(sender)

	if _, err := d.Run(context.Background(), playlistInput, []string{"movie.mkv"}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(sender.commands) != 1 || sender.commands[0] != "no-osd set playlist-pos 0\n" {
		t.Fatalf("unexpected commands %q", sender.commands)
	}
}

func TestRunUnmatchedSelectionIsNoop(t *testing.T) {
	for _, selection := range []string{"", "missing.mkv", "movie.mkv "} {
		sender := &recordingSender{}
		d, out := newDispatcher(sender)
		outcome, err := d.Run(context.Background(), playlistInput, []string{selection})
		if err != nil {
			t.Fatalf("selection %q: Run returned error: %v", selection, err)
		}
		if outcome != dispatch.OutcomeUnmatched {
			t.Fatalf("selection %q: unexpected outcome %s", selection, outcome)
		}
		if len(sender.commands) != 0 || out.Len() != 0 {
			t.Fatalf("selection %q: expected no side effects", selection)
		}
	}
}

func TestRunUnknownModeDoesNothing(t *testing.T) {
	sender := &recordingSender{}
	d, out := newDispatcher(sender)

	// The payload is malformed but never inspected.
	in := menu.Input{Mode: "chapters", Binding: menu.Text("{")}
	outcome, err := d.Run(context.Background(), in, []string{"anything"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if outcome != dispatch.OutcomeIgnored || out.Len() != 0 || len(sender.commands) != 0 {
		t.Fatalf("expected no work, outcome=%s output=%q commands=%q", outcome, out.String(), sender.commands)
	}
}

func TestRunMalformedInputPrintsNothing(t *testing.T) {
	sender := &recordingSender{}
	d, out := newDispatcher(sender)

	in := menu.Input{Mode: menu.ModeBinding, Binding: menu.Text(`[{"key":"a","cmd":"x"},`)}
	_, err := d.Run(context.Background(), in, nil)
	if !errors.Is(err, menu.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no partial output, got %q", out.String())
	}
}

func TestRunPropagatesTransportFailure(t *testing.T) {
	failure := &ipc.UnavailableError{Endpoint: ipc.DefaultEndpoint(), Reason: "not found", Err: errors.New("boom")}
	sender := &recordingSender{err: failure}
	d, _ := newDispatcher(sender)

	in := menu.Input{Mode: menu.ModeAudioTrack, AudioTrack: menu.Text(`A: English\nA: French`)}
	_, err := d.Run(context.Background(), in, []string{"2: French"})
	if !errors.Is(err, ipc.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if len(sender.commands) != 1 || sender.commands[0] != "set aid 2\n" {
		t.Fatalf("unexpected commands %q", sender.commands)
	}
}

func TestRunRejectsExtraArguments(t *testing.T) {
	d, _ := newDispatcher(&recordingSender{})
	if _, err := d.Run(context.Background(), playlistInput, []string{"a", "b"}); !errors.Is(err, dispatch.ErrTooManyArgs) {
		t.Fatalf("expected ErrTooManyArgs, got %v", err)
	}
}

func TestRunCommandModeRoundTrip(t *testing.T) {
	in := menu.Input{
		Mode:    menu.ModeCommand,
		Command: menu.Text(`[{"name":"seek","args":[{"name":"target"},{"name":"flags","optional":true}]}]`),
	}
	d, out := newDispatcher(&recordingSender{})
	if _, err := d.Run(context.Background(), in, nil); err != nil {
		t.Fatalf("list: %v", err)
	}
	label := out.String()[:out.Len()-1]

	sender := &recordingSender{}
	d, _ = newDispatcher(sender)
	if _, err := d.Run(context.Background(), in, []string{label}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	want := "script-message-to search_menu search_menu-command 'seek <target> [<flags>]'\n"
	if len(sender.commands) != 1 || sender.commands[0] != want {
		t.Fatalf("unexpected commands %q", sender.commands)
	}
}
