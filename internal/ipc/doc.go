// Package ipc delivers command lines to the player's control endpoint.
//
// The endpoint is a Unix domain socket on most platforms and a named pipe on
// Windows; the choice is made once by DefaultEndpoint or PlatformEndpoint and
// hidden behind Client.Send. Each send opens a connection with a bounded
// connect timeout, writes one command, and closes the connection whether or
// not the write succeeded. Nothing is read back.
//
// An endpoint that cannot be opened is reported as an *UnavailableError
// matching ErrUnavailable so callers can tell a missing player from a
// deliberate no-op.
package ipc
