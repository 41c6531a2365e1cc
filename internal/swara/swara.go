// Package swara maps detected frequencies onto the sargam scale relative to a
// chosen tonic (Sa), with Western note correspondence and cent deviation.
package swara

import (
	"errors"
	"fmt"
	"strings"
)

// Errors
var (
	ErrInvalidInput = errors.New("invalid input")
)

// Degree is a chromatic scale degree relative to Sa, from Sa (0) to Ni (11).
type Degree int

const (
	Sa Degree = iota
	KomalRe
	Re
	KomalGa
	Ga
	Ma
	TeevraMa
	Pa
	KomalDha
	Dha
	KomalNi
	Ni
)

// Markers used when rendering labels.
const (
	KomalMarker  = "♭"
	TeevraMarker = "#"
	SaptakMarker = "*"
)

// Script selects the alphabet labels are rendered in.
type Script int

const (
	Latin Script = iota
	Devanagari
)

var scriptNames = map[Script]string{
	Latin:      "latin",
	Devanagari: "devanagari",
}

// String returns the script's flag name.
func (s Script) String() string {
	if name, ok := scriptNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Script(%d)", int(s))
}

// ParseScript parses "latin" or "devanagari".
func ParseScript(name string) (Script, error) {
	for s, n := range scriptNames {
		if strings.EqualFold(name, n) {
			return s, nil
		}
	}
	return Latin, fmt.Errorf("%w: unknown script %q", ErrInvalidInput, name)
}

// Base swara names per degree, before komal/teevra marking.
var baseNames = map[Script][12]string{
	Latin:      {"Sa", "Re", "Re", "Ga", "Ga", "Ma", "Ma", "Pa", "Dha", "Dha", "Ni", "Ni"},
	Devanagari: {"सा", "रे", "रे", "ग", "ग", "म", "म", "प", "ध", "ध", "नि", "नि"},
}

// Valid reports whether d is one of the twelve degrees.
func (d Degree) Valid() bool {
	return d >= Sa && d <= Ni
}

// Komal reports whether d is a flattened Re, Ga, Dha or Ni.
func (d Degree) Komal() bool {
	switch d {
	case KomalRe, KomalGa, KomalDha, KomalNi:
		return true
	}
	return false
}

// In renders the degree as a label without octave markers.
// Teevra Ma and the komal set are disjoint, so at most one marker applies.
func (d Degree) In(s Script) Label {
	names, ok := baseNames[s]
	if !ok || !d.Valid() {
		return ""
	}
	name := names[d]
	switch {
	case d == TeevraMa:
		return Label(name + TeevraMarker)
	case d.Komal():
		return Label(KomalMarker + name)
	}
	return Label(name)
}

// String renders the degree in the Latin script.
func (d Degree) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Degree(%d)", int(d))
	}
	return string(d.In(Latin))
}

// Label is a rendered swara token such as "Sa", "♭Re", "Ma#", "*Pa" or "Sa*".
type Label string

// Sequence is an ordered list of recorded swaras. Order encodes melodic direction.
type Sequence []Label

// Render builds a label for degree d, adding one saptak marker per octave:
// prefixed below the tonic's octave, suffixed above it.
func Render(d Degree, saptak int, s Script) Label {
	base := string(d.In(s))
	if base == "" {
		return ""
	}
	switch {
	case saptak < 0:
		return Label(strings.Repeat(SaptakMarker, -saptak) + base)
	case saptak > 0:
		return Label(base + strings.Repeat(SaptakMarker, saptak))
	}
	return Label(base)
}

// String returns the label text.
func (l Label) String() string {
	return string(l)
}

// StripSaptak removes octave markers from both ends of the label.
func (l Label) StripSaptak() Label {
	return Label(strings.Trim(string(l), SaptakMarker))
}

// lookup indexes every accepted spelling of every degree.
var lookup = buildLookup()

func buildLookup() map[string]Degree {
	m := make(map[string]Degree)
	for d := Sa; d <= Ni; d++ {
		for s := range baseNames {
			m[lookupKey(string(d.In(s)))] = d
		}
		if d.Komal() {
			// ASCII spelling of the komal marker, e.g. "bRe".
			m[lookupKey("b"+string(baseNames[Latin][d]))] = d
		}
	}
	return m
}

func lookupKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseLabel parses a label in either script, returning its degree and
// signed saptak (negative below the tonic's octave).
func ParseLabel(s string) (Degree, int, error) {
	raw := strings.TrimSpace(s)
	core := strings.TrimLeft(raw, SaptakMarker)
	below := len(raw) - len(core)
	trimmed := strings.TrimRight(core, SaptakMarker)
	above := len(core) - len(trimmed)

	if trimmed == "" {
		return 0, 0, fmt.Errorf("%w: empty swara %q", ErrInvalidInput, s)
	}
	if below > 0 && above > 0 {
		return 0, 0, fmt.Errorf("%w: swara %q marked both below and above", ErrInvalidInput, s)
	}
	d, ok := lookup[lookupKey(trimmed)]
	if !ok {
		return 0, 0, fmt.Errorf("%w: unknown swara %q", ErrInvalidInput, s)
	}
	return d, above - below, nil
}

// Normalize re-renders a label in the Latin script, optionally dropping its
// saptak markers.
func Normalize(l Label, stripSaptak bool) (Label, error) {
	d, saptak, err := ParseLabel(string(l))
	if err != nil {
		return "", err
	}
	if stripSaptak {
		saptak = 0
	}
	return Render(d, saptak, Latin), nil
}

// ParseSequence normalizes each token into a Latin-script sequence.
func ParseSequence(tokens []string, stripSaptak bool) (Sequence, error) {
	seq := make(Sequence, 0, len(tokens))
	for _, tok := range tokens {
		l, err := Normalize(Label(tok), stripSaptak)
		if err != nil {
			return nil, err
		}
		seq = append(seq, l)
	}
	return seq, nil
}

// In re-renders every label of the sequence in script s. Labels that fail to
// parse are kept as they are.
func (q Sequence) In(s Script) Sequence {
	out := make(Sequence, len(q))
	for i, l := range q {
		d, saptak, err := ParseLabel(string(l))
		if err != nil {
			out[i] = l
			continue
		}
		out[i] = Render(d, saptak, s)
	}
	return out
}

// Strings returns the labels as plain strings.
func (q Sequence) Strings() []string {
	out := make([]string, len(q))
	for i, l := range q {
		out[i] = string(l)
	}
	return out
}
