// Package main hosts search-menuctl, the operator companion to search-menu.
//
// The Cobra command tree scaffolds and validates configuration, previews the
// entries and player commands a menu invocation would produce, sends raw
// commands to the player, and checks that the control endpoint is reachable.
// The menu UI never calls this binary; it exists for setting up and
// debugging the integration.
package main
