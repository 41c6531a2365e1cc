package audio

import (
	"math"
	"sync"
)

// Tone is a mix of sine partials held for a number of frames.
// A tone with no partials is silence.
type Tone struct {
	Frequencies []float64
	Amplitude   float64
	Frames      int
}

// ToneSource is a Capturer that synthesizes tones instead of reading a
// device. Each call to Frame advances one frame; the tone list loops.
type ToneSource struct {
	mu         sync.Mutex
	capturing  bool
	tones      []Tone
	frameSize  int
	sampleRate int
	current    int // index into tones
	held       int // frames already produced for the current tone
	phase      []float64
}

// NewToneSource creates a synthetic source.
func NewToneSource(frameSize, sampleRate int, tones ...Tone) *ToneSource {
	return &ToneSource{
		tones:      tones,
		frameSize:  frameSize,
		sampleRate: sampleRate,
	}
}

// Drone returns a single looping tone of the given partials, e.g. Sa and Pa.
func Drone(amplitude float64, frequencies ...float64) Tone {
	return Tone{Frequencies: frequencies, Amplitude: amplitude, Frames: 1}
}

// Start begins synthesis from the first tone
func (s *ToneSource) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.capturing {
		return ErrAlreadyCapturing
	}
	s.capturing = true
	s.current, s.held = 0, 0
	s.phase = nil
	return nil
}

// Stop ends synthesis
func (s *ToneSource) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.capturing {
		return ErrNotCapturing
	}
	s.capturing = false
	return nil
}

// IsCapturing returns true between Start and Stop
func (s *ToneSource) IsCapturing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capturing
}

// Frame synthesizes the next frame
func (s *ToneSource) Frame() (*Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.capturing {
		return nil, ErrNotCapturing
	}
	if len(s.tones) == 0 {
		return nil, ErrNoFrame
	}

	tone := s.tones[s.current]
	if len(s.phase) != len(tone.Frequencies) {
		s.phase = make([]float64, len(tone.Frequencies))
	}

	samples := make([]float32, s.frameSize)
	if n := len(tone.Frequencies); n > 0 {
		amp := tone.Amplitude / float64(n)
		for p, freq := range tone.Frequencies {
			step := 2 * math.Pi * freq / float64(s.sampleRate)
			phase := s.phase[p]
			for i := range samples {
				samples[i] += float32(amp * math.Sin(phase))
				phase += step
			}
			s.phase[p] = math.Mod(phase, 2*math.Pi)
		}
	}

	s.held++
	if s.held >= max(tone.Frames, 1) {
		s.held = 0
		s.current = (s.current + 1) % len(s.tones)
		s.phase = nil
	}
	return &Frame{Samples: samples, SampleRate: s.sampleRate}, nil
}
