// Package menu turns player data into menu entries and back.
//
// Each mode (key bindings, playlist, commands, properties, audio and
// subtitle tracks) has a formatter that maps its raw payload to an ordered
// list of entries. An entry pairs the label shown to the user with the exact
// command line sent to the player when that label is selected. Formatting is
// pure: the same Input always yields the same entries, which is what lets a
// label printed by one invocation be resolved by the next.
//
// Raw payloads arrive through Input, built once per process from the
// environment by InputFromEnv. Formatters never touch the environment
// themselves.
package menu
