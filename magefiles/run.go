//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Starts the desktop viewer with the debug overlay.
func (Run) Viewer() error {
	fmt.Println("Run viewer...")
	_, err := executeCmd("go", withArgs("run", ".", "-debug"), withStream())
	return err
}

// Writes a short forward walk to ./snapshots.
func (Run) Snapshot() error {
	mg.Deps(Build.Snap)
	_, err := executeCmd("bin/rcsnap", withArgs("-frames", "60", "-every", "15", "-throttle", "-1", "-turn", "0.3"), withStream())
	return err
}
