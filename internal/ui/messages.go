// Package ui provides the Bubble Tea TUI for the rocket browser.
package ui

import "github.com/VladimirMikulas/ExampleSpaceXapp/internal/rocket"

// RocketsLoaded is sent when the catalog arrives from the repository.
type RocketsLoaded struct {
	Rockets   []rocket.Rocket
	Refreshed bool // true when this load was a forced refresh
	Err       error
}
