// Package dispatch runs one menu invocation: it either lists every label of
// the selected mode or sends the action behind a single selected label.
//
// Unknown modes and unmatched selections are quiet no-ops so the menu UI can
// treat them as a cancelled menu. Malformed input and transport failures are
// returned to the caller.
package dispatch
