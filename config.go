package main

import "time"

// Presentation and timing constants for the desktop viewer. Buffer sizes and
// body parameters come from the settings file.
const (
	defaultTPS               = 60
	maxFrameStep             = 0.1 // seconds
	minimapMargin            = 4
	debugColumnGap           = 12
	joystickStrokeWidth      = 2
	pgoRecordDuration        = 15 * time.Second
	audioSampleRate          = 48000
	audioPlayerBufferLatency = 40 * time.Millisecond
	bumpFrequency            = 110.0
	bumpDecayPerSecond       = 18.0
	bumpCooldown             = 150 * time.Millisecond
	minBumpStrength          = 0.15
	pcm16MaxValue            = 32767
	pcm16MinValue            = -32768
	defaultPGOPath           = "default.pgo"
)
