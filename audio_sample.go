package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// loadBumpSample decodes the WAV at path, resampled to sampleRate, and mixes
// it down to mono.
func loadBumpSample(sampleRate int, path string) ([]float32, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("reading decoded %q: %w", path, err)
	}
	samples := stereoPCMToMono(pcm)
	if len(samples) == 0 {
		return nil, fmt.Errorf("wav %q has no audio data", path)
	}
	return samples, nil
}

// stereoPCMToMono averages interleaved little-endian 16-bit frames into
// samples in [-1, 1).
func stereoPCMToMono(pcm []byte) []float32 {
	frames := len(pcm) / 4
	if frames == 0 {
		return nil
	}
	out := make([]float32, frames)
	for i := range out {
		frame := pcm[i*4 : i*4+4]
		left := int16(binary.LittleEndian.Uint16(frame[0:2]))
		right := int16(binary.LittleEndian.Uint16(frame[2:4]))
		out[i] = (float32(left) + float32(right)) * (0.5 / 32768.0)
	}
	return out
}
