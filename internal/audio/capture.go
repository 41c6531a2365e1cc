package audio

import (
	"errors"
	"math"
)

// Errors
var (
	ErrAlreadyCapturing = errors.New("audio capture already started")
	ErrNotCapturing     = errors.New("audio capture not started")
	ErrNoFrame          = errors.New("no audio frame available")
)

// silenceDB is reported for frames with effectively zero energy.
const silenceDB = -100.0

// Frame is one block of mono samples
type Frame struct {
	Samples    []float32
	SampleRate int
}

// Level returns the RMS amplitude of the frame and the same level in dBFS.
func (f *Frame) Level() (rms, db float64) {
	if f == nil || len(f.Samples) == 0 {
		return 0, silenceDB
	}

	sumSquares := 0.0
	for _, sample := range f.Samples {
		s := float64(sample)
		sumSquares += s * s
	}
	rms = math.Sqrt(sumSquares / float64(len(f.Samples)))

	// Avoid log(0)
	if rms > 1e-7 {
		db = 20 * math.Log10(rms)
	} else {
		db = silenceDB
	}
	return rms, db
}

// Capturer is a source of live audio frames
type Capturer interface {
	// Start begins audio capture
	Start() error

	// Stop ends audio capture
	Stop() error

	// Frame returns a copy of the most recent frame
	Frame() (*Frame, error)

	// IsCapturing returns true if currently capturing audio
	IsCapturing() bool
}
