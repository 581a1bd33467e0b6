package dispatch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"searchmenu/internal/logging"
	"searchmenu/internal/menu"
)

// ErrTooManyArgs is returned when more than one selection is supplied.
var ErrTooManyArgs = errors.New("expected at most one selection argument")

// Sender delivers a command line to the player.
type Sender interface {
	Send(ctx context.Context, command string) error
}

// Outcome describes what a run did.
type Outcome int

const (
	// OutcomeIgnored means the mode selector was not recognized.
	OutcomeIgnored Outcome = iota
	// OutcomeListed means every label was printed.
	OutcomeListed
	// OutcomeSent means the selected label's action was sent.
	OutcomeSent
	// OutcomeUnmatched means no label equaled the selection.
	OutcomeUnmatched
)

func (o Outcome) String() string {
	switch o {
	case OutcomeListed:
		return "listed"
	case OutcomeSent:
		return "sent"
	case OutcomeUnmatched:
		return "unmatched"
	default:
		return "ignored"
	}
}

// Dispatcher connects the formatter to stdout and the player.
type Dispatcher struct {
	sender Sender
	out    io.Writer
	logger *slog.Logger
}

// New returns a dispatcher printing to out and sending through sender.
func New(sender Sender, out io.Writer, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		out:    out,
		logger: logging.NewComponentLogger(logger, "dispatch"),
	}
}

// Run lists labels when args is empty, or sends the action of the first
// label equal to args[0].
func (d *Dispatcher) Run(ctx context.Context, in menu.Input, args []string) (Outcome, error) {
	if len(args) > 1 {
		return OutcomeIgnored, fmt.Errorf("%w, got %d", ErrTooManyArgs, len(args))
	}
	logger := d.logger.With(logging.String(logging.FieldMode, in.Mode.String()))
	if !in.Mode.Valid() {
		logger.Debug("unrecognized mode; nothing to do")
		return OutcomeIgnored, nil
	}

	entries, err := menu.Build(in)
	if err != nil {
		return OutcomeIgnored, err
	}

	if len(args) == 0 {
		if err := d.list(entries); err != nil {
			return OutcomeIgnored, err
		}
		logger.Debug("menu listed", logging.Int("entries", len(entries)))
		return OutcomeListed, nil
	}

	selection := args[0]
	entry, ok := menu.Lookup(entries, selection)
	if !ok {
		logger.Debug("selection matched no entry", logging.String(logging.FieldSelection, selection))
		return OutcomeUnmatched, nil
	}
	if err := d.sender.Send(ctx, entry.Action); err != nil {
		return OutcomeIgnored, err
	}
	logger.Info("selection dispatched", logging.String(logging.FieldSelection, selection))
	return OutcomeSent, nil
}

func (d *Dispatcher) list(entries []menu.Entry) error {
	w := bufio.NewWriter(d.out)
	for _, label := range menu.Labels(entries) {
		w.WriteString(label)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write menu: %w", err)
	}
	return nil
}
