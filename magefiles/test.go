//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs the unit tests of the headless packages.
func (Test) Unit() error {
	_, err := executeCmd("go", withArgs("test", "./geom/...", "./bitmap/...", "./tilemap/...",
		"./world/...", "./render/...", "./settings/...", "./logging/...", "./cmd/..."), withStream())
	return err
}

// Runs the unit tests with the race detector.
func (Test) Race() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./render/...", "./settings/..."),
		withEnv("CGO_ENABLED=1"), withStream())
	return err
}

// Runs vet over the module.
func (Test) Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}
