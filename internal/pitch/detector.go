package pitch

import (
	"errors"

	"github.com/0xlemi/raagnote/internal/audio"
)

// Errors
var (
	ErrEmptyFrame     = errors.New("empty audio frame")
	ErrBelowThreshold = errors.New("signal below threshold")
	ErrNoPitch        = errors.New("no pitch in range")
)

// Reading is the pitch estimate for one analysis frame
type Reading struct {
	Frequency float64 // Fundamental frequency in Hz
	Clarity   float64 // 0..1, higher means a cleaner periodic signal
	RMS       float64 // RMS amplitude of the frame
}

// Estimator turns audio frames into pitch readings
type Estimator interface {
	// Estimate analyzes a frame and returns its pitch reading
	Estimate(frame *audio.Frame) (Reading, error)
}
