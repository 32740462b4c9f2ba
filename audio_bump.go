package main

import (
	"math"
	"sync"
)

// bumpAudioStream is an endless 16-bit stereo PCM stream that stays silent
// until Trigger is called. It plays either a recorded sample or a decaying
// low tone.
type bumpAudioStream struct {
	mu sync.Mutex

	sample []float32 // mono, at audioSampleRate; nil selects the tone
	pos    int

	level float32
	phase float64
	decay float32
}

func newBumpAudioStream(sample []float32) *bumpAudioStream {
	return &bumpAudioStream{
		sample: sample,
		pos:    len(sample),
		decay:  float32(math.Exp(-bumpDecayPerSecond / audioSampleRate)),
	}
}

// Trigger restarts the sound at the given strength in [0, 1].
func (s *bumpAudioStream) Trigger(strength float32) {
	if strength > 1 {
		strength = 1
	} else if strength < 0 {
		strength = 0
	}
	s.mu.Lock()
	s.level = strength
	s.pos = 0
	s.phase = 0
	s.mu.Unlock()
}

func (s *bumpAudioStream) next() float32 {
	if s.sample != nil {
		if s.pos >= len(s.sample) {
			return 0
		}
		v := s.sample[s.pos] * s.level
		s.pos++
		return v
	}
	if s.level < 1e-4 {
		s.level = 0
		return 0
	}
	v := s.level * float32(math.Sin(s.phase))
	s.phase += 2 * math.Pi * bumpFrequency / audioSampleRate
	s.level *= s.decay
	return v
}

func (s *bumpAudioStream) Read(p []byte) (int, error) {
	// whole stereo frames only, 4 bytes each
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < frameBytes; i += 4 {
		v := int16(clampPCM(s.next() * pcm16MaxValue))
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	return frameBytes, nil
}

func (s *bumpAudioStream) Close() error {
	return nil
}

func clampPCM(v float32) float32 {
	if v > pcm16MaxValue {
		return pcm16MaxValue
	}
	if v < pcm16MinValue {
		return pcm16MinValue
	}
	return v
}
