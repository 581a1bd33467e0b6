// Package logging assembles the structured slog loggers used by the menu
// program and the operator CLI.
//
// It owns the console and JSON handlers, level parsing, and output routing.
// Standard field keys keep log lines from both binaries in the same shape.
// Standard output is never a log destination: it carries menu labels.
//
// Prefer these constructors over hand-rolled slog setup. NewNop serves tests
// and wiring code that cannot fail.
package logging
