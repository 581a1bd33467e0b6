// Package main hosts the search-menu entrypoint invoked by the menu UI.
//
// With no argument it prints one label per line for the mode named by
// SEARCH_MENU_MODE. With one argument it resolves that label and sends the
// matching command to the player. Flag parsing is disabled so any label,
// including one that starts with a dash, is taken verbatim.
//
// Configuration comes from SEARCH_MENU_CONFIG (or the default location) since
// the argument list belongs to the menu.
package main
