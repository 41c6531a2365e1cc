package swara

import (
	"fmt"
	"math"
)

const (
	a4Frequency = 440.0
	a4MIDI      = 69
)

// Mapping is the result of placing a frequency on the sargam scale.
type Mapping struct {
	Frequency float64 // Input frequency in Hz
	Note      string  // Western note name, e.g. "C#"
	Octave    int     // Western octave, 4 for middle C
	MIDI      int     // Nearest MIDI number
	Degree    Degree  // Scale degree relative to the tonic
	Saptak    int     // Octaves above (+) or below (-) the tonic's base octave
	Swara     Label   // Rendered label including saptak markers
	Cents     float64 // Deviation from the equal-tempered pitch, positive is sharp
}

// Western returns the Western note with octave, e.g. "A4".
func (m Mapping) Western() string {
	return fmt.Sprintf("%s%d", m.Note, m.Octave)
}

// In renders the mapped swara in another script.
func (m Mapping) In(s Script) Label {
	return Render(m.Degree, m.Saptak, s)
}

// MapFrequency maps frequencyHz onto the sargam scale of tonic, rendering the
// label in the Latin script. Filtering by clarity, amplitude and range is the
// caller's job; only non-positive or non-finite frequencies are rejected.
func MapFrequency(frequencyHz float64, tonic Tonic) (Mapping, error) {
	return MapFrequencyIn(frequencyHz, tonic, Latin)
}

// MapFrequencyIn is MapFrequency with an explicit script.
func MapFrequencyIn(frequencyHz float64, tonic Tonic, s Script) (Mapping, error) {
	if math.IsNaN(frequencyHz) || math.IsInf(frequencyHz, 0) || frequencyHz <= 0 {
		return Mapping{}, fmt.Errorf("%w: frequency %v Hz", ErrInvalidInput, frequencyHz)
	}
	if err := tonic.Validate(); err != nil {
		return Mapping{}, err
	}
	if _, ok := baseNames[s]; !ok {
		return Mapping{}, fmt.Errorf("%w: unknown script %d", ErrInvalidInput, int(s))
	}

	midi := MIDINumber(frequencyHz)
	noteIndex := mod12(midi)
	degree := Degree(mod12(noteIndex - tonic.PitchClass))
	saptak := floorDiv(midi-tonic.MIDI(), 12)

	return Mapping{
		Frequency: frequencyHz,
		Note:      noteNames[noteIndex],
		Octave:    floorDiv(midi, 12) - 1,
		MIDI:      midi,
		Degree:    degree,
		Saptak:    saptak,
		Swara:     Render(degree, saptak, s),
		Cents:     CentDeviation(frequencyHz, midi),
	}, nil
}

// MIDINumber returns the nearest MIDI number for a positive frequency.
// Halves round upward.
func MIDINumber(frequencyHz float64) int {
	return int(math.Floor(12*math.Log2(frequencyHz/a4Frequency) + a4MIDI + 0.5))
}

// IdealFrequency returns the equal-tempered frequency of a MIDI number (A4 = 440Hz).
func IdealFrequency(midi int) float64 {
	return a4Frequency * math.Pow(2, float64(midi-a4MIDI)/12)
}

// CentDeviation returns how far frequencyHz is from the ideal pitch of midi,
// in cents. The value is not rounded.
func CentDeviation(frequencyHz float64, midi int) float64 {
	return 1200 * math.Log2(frequencyHz/IdealFrequency(midi))
}
