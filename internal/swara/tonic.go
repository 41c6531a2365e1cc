package swara

import (
	"fmt"
	"strconv"
	"strings"
)

// All note names in chromatic order
var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Flat spellings accepted as tonic names.
var flatNames = map[string]int{"Db": 1, "Eb": 3, "Gb": 6, "Ab": 8, "Bb": 10}

const (
	minOctave = -1
	maxOctave = 9
)

// NoteName returns the Western name of pitch class pc (0 = C).
func NoteName(pc int) string {
	return noteNames[mod12(pc)]
}

// NoteNames returns the twelve pitch class names, starting at C.
func NoteNames() []string {
	return noteNames[:]
}

// ParsePitchClass parses a Western note name such as "C", "F#" or "Bb".
func ParsePitchClass(name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: empty note name", ErrInvalidInput)
	}
	norm := strings.ToUpper(name[:1]) + name[1:]
	for i, n := range noteNames {
		if n == norm {
			return i, nil
		}
	}
	if pc, ok := flatNames[norm]; ok {
		return pc, nil
	}
	return 0, fmt.Errorf("%w: unknown note name %q", ErrInvalidInput, name)
}

// Tonic is the Sa reference: a pitch class and the base octave it sits in.
// It is passed by value to every mapping call.
type Tonic struct {
	PitchClass int
	Octave     int
}

// NewTonic builds a tonic from a note name and octave.
func NewTonic(name string, octave int) (Tonic, error) {
	pc, err := ParsePitchClass(name)
	if err != nil {
		return Tonic{}, err
	}
	t := Tonic{PitchClass: pc, Octave: octave}
	if err := t.Validate(); err != nil {
		return Tonic{}, err
	}
	return t, nil
}

// ParseTonic parses a tonic written as note name and octave, e.g. "C#4" or "Bb3".
func ParseTonic(s string) (Tonic, error) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, func(r rune) bool {
		return r == '-' || (r >= '0' && r <= '9')
	})
	if i <= 0 {
		return Tonic{}, fmt.Errorf("%w: malformed tonic %q", ErrInvalidInput, s)
	}
	octave, err := strconv.Atoi(s[i:])
	if err != nil {
		return Tonic{}, fmt.Errorf("%w: malformed tonic octave %q", ErrInvalidInput, s)
	}
	return NewTonic(s[:i], octave)
}

// Validate checks the pitch class and octave ranges.
func (t Tonic) Validate() error {
	if t.PitchClass < 0 || t.PitchClass > 11 {
		return fmt.Errorf("%w: tonic pitch class %d out of range", ErrInvalidInput, t.PitchClass)
	}
	if t.Octave < minOctave || t.Octave > maxOctave {
		return fmt.Errorf("%w: tonic octave %d out of range", ErrInvalidInput, t.Octave)
	}
	return nil
}

// Name returns the Western note name of the tonic's pitch class.
func (t Tonic) Name() string {
	return NoteName(t.PitchClass)
}

// String returns the tonic as e.g. "C4".
func (t Tonic) String() string {
	return fmt.Sprintf("%s%d", t.Name(), t.Octave)
}

// MIDI returns the MIDI number of Sa in the base octave (octave 4 = standard numbering).
func (t Tonic) MIDI() int {
	return t.Octave*12 + t.PitchClass + 12
}

// Frequency returns the equal-tempered frequency of Sa in the base octave.
func (t Tonic) Frequency() float64 {
	return IdealFrequency(t.MIDI())
}

// PerfectFifth returns the pitch class a fifth above pc.
func PerfectFifth(pc int) int {
	return mod12(pc + 7)
}

// Drone returns the Sa and Pa frequencies of a tanpura drone for the tonic.
// Pa is named a fifth above Sa but kept in the same octave number, so for
// tonics from F# upwards it sounds below Sa.
func (t Tonic) Drone() (sa, pa float64) {
	paTonic := Tonic{PitchClass: PerfectFifth(t.PitchClass), Octave: t.Octave}
	return t.Frequency(), paTonic.Frequency()
}

func mod12(n int) int {
	return ((n % 12) + 12) % 12
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
