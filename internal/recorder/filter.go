package recorder

import (
	"github.com/0xlemi/raagnote/internal/pitch"
)

// Filter decides which pitch readings are clean enough to record
type Filter struct {
	ClarityThreshold float64 // Readings must be strictly clearer than this
	MinFrequency     float64 // Hz
	MaxFrequency     float64 // Hz
	MinRMS           float64 // Quieter readings are treated as silence
}

// DefaultFilter returns the thresholds used for live singing
func DefaultFilter() Filter {
	return Filter{
		ClarityThreshold: 0.7,
		MinFrequency:     60,
		MaxFrequency:     1200,
		MinRMS:           0.001,
	}
}

// Accept reports whether a reading should be mapped and recorded
func (f Filter) Accept(r pitch.Reading) bool {
	if r.Clarity <= f.ClarityThreshold {
		return false
	}
	if r.RMS < f.MinRMS {
		return false
	}
	return r.Frequency >= f.MinFrequency && r.Frequency <= f.MaxFrequency
}
