package raag

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/0xlemi/raagnote/internal/swara"
)

// catalogFile is the on-disk YAML layout of a catalog.
type catalogFile struct {
	Raags []raagEntry `yaml:"raags"`
}

type raagEntry struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	NativeName string   `yaml:"native_name"`
	Aroha      []string `yaml:"aroha"`
	Avaroha    []string `yaml:"avaroha"`
	Pakad      []string `yaml:"pakad"`
	Vadi       string   `yaml:"vadi"`
	Samvadi    string   `yaml:"samvadi"`
	Time       string   `yaml:"time"`
	Mood       string   `yaml:"mood"`
	Thaat      string   `yaml:"thaat"`
}

// LoadCatalog reads a YAML catalog file. Swaras may be written in either
// script; they are stored in canonical Latin form.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes YAML catalog data.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: failed to parse catalog: %w", ErrInvalidCatalog, err)
	}
	if len(file.Raags) == 0 {
		return nil, fmt.Errorf("%w: no raags defined", ErrInvalidCatalog)
	}

	defs := make([]Definition, 0, len(file.Raags))
	for i, e := range file.Raags {
		def, err := e.definition()
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d (%q): %w", ErrInvalidCatalog, i, e.ID, err)
		}
		defs = append(defs, def)
	}
	return NewCatalog(defs...)
}

func (e raagEntry) definition() (Definition, error) {
	def := Definition{
		ID:         e.ID,
		Name:       e.Name,
		NativeName: e.NativeName,
		Mood:       e.Mood,
		Thaat:      e.Thaat,
	}
	if e.Time != "" {
		t, err := ParseTime(e.Time)
		if err != nil {
			return Definition{}, err
		}
		def.Time = t
	}

	var err error
	if def.Aroha, err = parseLabels(e.Aroha); err != nil {
		return Definition{}, fmt.Errorf("aroha: %w", err)
	}
	if def.Avaroha, err = parseLabels(e.Avaroha); err != nil {
		return Definition{}, fmt.Errorf("avaroha: %w", err)
	}
	if def.Pakad, err = parseLabels(e.Pakad); err != nil {
		return Definition{}, fmt.Errorf("pakad: %w", err)
	}
	if def.Vadi, err = parseLabel(e.Vadi); err != nil {
		return Definition{}, fmt.Errorf("vadi: %w", err)
	}
	if def.Samvadi, err = parseLabel(e.Samvadi); err != nil {
		return Definition{}, fmt.Errorf("samvadi: %w", err)
	}
	return def, nil
}

// parseLabel canonicalizes a label but keeps saptak markers so validation
// can reject them. Empty input stays empty.
func parseLabel(s string) (swara.Label, error) {
	if s == "" {
		return "", nil
	}
	return swara.Normalize(swara.Label(s), false)
}

func parseLabels(in []string) ([]swara.Label, error) {
	out := make([]swara.Label, 0, len(in))
	for _, s := range in {
		l, err := parseLabel(s)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}
