// Package raag holds the raag catalog and the engine that ranks raags
// against a recorded swara sequence.
package raag

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	lev "github.com/agnivade/levenshtein"

	"github.com/0xlemi/raagnote/internal/swara"
)

// Errors
var (
	ErrInvalidCatalog = errors.New("invalid raag catalog")
	ErrUnknownRaag    = errors.New("unknown raag")
)

// UnknownThaat is returned by Thaat for ids not in the catalog.
const UnknownThaat = "Unknown"

// Time is the part of the day a raag is traditionally performed in.
type Time int

const (
	Morning Time = iota + 1
	Afternoon
	Evening
	Night
)

var timeNames = map[Time]string{
	Morning:   "Morning",
	Afternoon: "Afternoon",
	Evening:   "Evening",
	Night:     "Night",
}

// String returns the time's display name.
func (t Time) String() string {
	if name, ok := timeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Time(%d)", int(t))
}

// ParseTime parses a time of day name, ignoring case.
func ParseTime(name string) (Time, error) {
	for t, n := range timeNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown time of day %q", name)
}

// MarshalText renders the time by name in JSON and TOML output.
func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a time written by MarshalText.
func (t *Time) UnmarshalText(text []byte) error {
	parsed, err := ParseTime(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Definition describes one raag. Patterns are written in the base octave.
type Definition struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`       // Latin display name, e.g. "Yaman"
	NativeName string        `json:"nativeName"` // Devanagari display name, e.g. "राग यमन"
	Aroha      []swara.Label `json:"aroha"`
	Avaroha    []swara.Label `json:"avaroha"`
	Pakad      []swara.Label `json:"pakad"`
	Vadi       swara.Label   `json:"vadi"`
	Samvadi    swara.Label   `json:"samvadi"`
	Time       Time          `json:"time"`
	Mood       string        `json:"mood"`
	Thaat      string        `json:"thaat"`
}

// Catalog is an immutable, ordered set of raag definitions.
// It is safe for concurrent use.
type Catalog struct {
	defs  []Definition
	index map[string]int
}

// NewCatalog validates defs and builds a catalog that keeps their order.
// Any malformed definition fails the whole catalog.
func NewCatalog(defs ...Definition) (*Catalog, error) {
	c := &Catalog{
		defs:  make([]Definition, 0, len(defs)),
		index: make(map[string]int, len(defs)),
	}
	for i, def := range defs {
		if err := def.validate(); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidCatalog, i, err)
		}
		key := strings.ToLower(def.ID)
		if _, dup := c.index[key]; dup {
			return nil, fmt.Errorf("%w: duplicate raag id %q", ErrInvalidCatalog, def.ID)
		}
		c.index[key] = len(c.defs)
		c.defs = append(c.defs, def.clone())
	}
	return c, nil
}

// MustCatalog is NewCatalog for compiled-in data; it panics on error.
func MustCatalog(defs ...Definition) *Catalog {
	c, err := NewCatalog(defs...)
	if err != nil {
		panic(err)
	}
	return c
}

func (d Definition) validate() error {
	switch {
	case strings.TrimSpace(d.ID) == "":
		return errors.New("missing id")
	case strings.TrimSpace(d.Name) == "":
		return fmt.Errorf("raag %q: missing name", d.ID)
	case strings.TrimSpace(d.Thaat) == "":
		return fmt.Errorf("raag %q: missing thaat", d.ID)
	case d.Time < Morning || d.Time > Night:
		return fmt.Errorf("raag %q: missing time of day", d.ID)
	}
	patterns := []struct {
		field  string
		labels []swara.Label
	}{
		{"aroha", d.Aroha},
		{"avaroha", d.Avaroha},
		{"pakad", d.Pakad},
		{"vadi", []swara.Label{d.Vadi}},
		{"samvadi", []swara.Label{d.Samvadi}},
	}
	for _, p := range patterns {
		if len(p.labels) == 0 {
			return fmt.Errorf("raag %q: missing %s", d.ID, p.field)
		}
		for _, l := range p.labels {
			if err := checkBaseLabel(l); err != nil {
				return fmt.Errorf("raag %q: %s: %w", d.ID, p.field, err)
			}
		}
	}
	return nil
}

// checkBaseLabel requires a canonical Latin label without saptak markers.
func checkBaseLabel(l swara.Label) error {
	if l == "" {
		return errors.New("missing swara")
	}
	d, saptak, err := swara.ParseLabel(string(l))
	if err != nil {
		return err
	}
	if saptak != 0 {
		return fmt.Errorf("swara %q carries octave markers", l)
	}
	if canonical := d.In(swara.Latin); canonical != l {
		return fmt.Errorf("swara %q is not canonical, want %q", l, canonical)
	}
	return nil
}

func (d Definition) clone() Definition {
	d.Aroha = slices.Clone(d.Aroha)
	d.Avaroha = slices.Clone(d.Avaroha)
	d.Pakad = slices.Clone(d.Pakad)
	return d
}

// Len returns the number of raags.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// All returns copies of every definition in declaration order.
func (c *Catalog) All() []Definition {
	out := make([]Definition, len(c.defs))
	for i, d := range c.defs {
		out[i] = d.clone()
	}
	return out
}

// Lookup returns the definition with the given id, ignoring case.
func (c *Catalog) Lookup(id string) (Definition, bool) {
	i, ok := c.index[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Definition{}, false
	}
	return c.defs[i].clone(), true
}

// Thaat returns the parent scale group of a raag given by id or display
// name, or UnknownThaat.
func (c *Catalog) Thaat(id string) string {
	if d, ok := c.Lookup(id); ok {
		return d.Thaat
	}
	q := foldName(id)
	for _, d := range c.defs {
		if foldName(d.Name) == q {
			return d.Thaat
		}
	}
	return UnknownThaat
}

// Thaats returns the distinct thaat names in first-appearance order.
func (c *Catalog) Thaats() []string {
	var out []string
	for _, d := range c.defs {
		if !slices.Contains(out, d.Thaat) {
			out = append(out, d.Thaat)
		}
	}
	return out
}

// InThaat returns the raags belonging to thaat, ignoring case.
func (c *Catalog) InThaat(thaat string) []Definition {
	var out []Definition
	for _, d := range c.defs {
		if strings.EqualFold(d.Thaat, thaat) {
			out = append(out, d.clone())
		}
	}
	return out
}

// maxSuggestDistance bounds the edit distance of "did you mean" suggestions.
const maxSuggestDistance = 3

// Find resolves a raag by id or display name, ignoring case and spaces.
// When nothing matches, the error lists the closest names by edit distance.
func (c *Catalog) Find(query string) (Definition, error) {
	q := foldName(query)
	for _, d := range c.defs {
		if foldName(d.ID) == q || foldName(d.Name) == q || d.NativeName == strings.TrimSpace(query) {
			return d.clone(), nil
		}
	}

	type candidate struct {
		name string
		dist int
	}
	var candidates []candidate
	for _, d := range c.defs {
		dist := lev.ComputeDistance(q, foldName(d.Name))
		if dist <= maxSuggestDistance {
			candidates = append(candidates, candidate{d.Name, dist})
		}
	}
	if len(candidates) == 0 {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownRaag, query)
	}
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return a.dist - b.dist
	})
	names := make([]string, len(candidates))
	for i, cand := range candidates {
		names[i] = cand.name
	}
	return Definition{}, fmt.Errorf("%w: %q (did you mean %s?)", ErrUnknownRaag, query, strings.Join(names, ", "))
}

func foldName(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' || r == '_' {
			return -1
		}
		return r
	}, s)
}
