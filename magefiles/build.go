//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the desktop viewer.
func (Build) Viewer() error {
	return goBuild(filepath.Join(binDir, "raycaster"), ".")
}

// Builds the terminal frontend.
func (Build) Tty() error {
	return goBuild(filepath.Join(binDir, "raytty"), "./cmd/raytty")
}

// Builds the headless snapshot tool.
func (Build) Snap() error {
	return goBuild(filepath.Join(binDir, "rcsnap"), "./cmd/rcsnap")
}

// Builds every binary.
func (Build) All() {
	mg.Deps(Build.Viewer, Build.Tty, Build.Snap)
}
