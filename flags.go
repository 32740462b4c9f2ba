package main

import "flag"

// Command-line flags for the desktop viewer. Everything that shapes the world
// or the projection lives in the settings file instead.
var (
	// configFlag points at a YAML or TOML settings file. A missing file
	// means defaults.
	configFlag = flag.String("config", "raycaster.yaml", "settings file (.yaml, .yml or .toml)")

	// logLevelFlag overrides log.level from the settings file.
	logLevelFlag = flag.String("log-level", "", "log level override (debug, info, warn, error)")

	// watchConfigFlag reloads focal length and view width when the settings
	// file changes on disk.
	watchConfigFlag = flag.Bool("watch-config", true, "reload view parameters when the settings file changes")

	// debugFlag enables the FPS and frame timing overlay. F3 toggles it at runtime.
	debugFlag = flag.Bool("debug", false, "show FPS and frame timing overlay")

	// enableAudioFlag plays a bump sound on wall contact.
	enableAudioFlag = flag.Bool("enable-audio", false, "play a bump sound when the body hits a wall")

	bumpSoundFlag = flag.String("bump-sound", "", "WAV file played on wall contact instead of the synthesized thud")

	// cpuProfileFlag writes a pprof CPU profile for the whole session.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")

	// recordDefaultPGO triggers a scripted walk to produce default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "walk randomly for 15s while capturing default.pgo")
)
