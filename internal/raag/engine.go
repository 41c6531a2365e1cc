package raag

import (
	"slices"

	"github.com/0xlemi/raagnote/internal/swara"
)

const (
	// MinSequenceLength is the shortest sequence worth analysing.
	MinSequenceLength = 3

	// MinConfidence is the default cut-off for reported matches.
	MinConfidence = 0.4
)

// Composite weights.
const (
	presenceWeight = 0.4
	sequenceWeight = 0.6

	arohaPresenceWeight   = 0.3
	avarohaPresenceWeight = 0.3
	pakadPresenceWeight   = 0.2

	arohaSequenceWeight   = 0.4
	avarohaSequenceWeight = 0.4
	pakadSequenceWeight   = 0.2

	vadiWeight    = 0.2
	samvadiWeight = 0.1
)

// Match is the score breakdown of one raag against a recorded sequence.
type Match struct {
	RaagID     string `json:"raagId"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`

	Confidence float64 `json:"confidence"`

	ArohaPresence     float64       `json:"arohaPresenceConfidence"`
	ArohaSequence     float64       `json:"arohaSequenceConfidence"`
	AvarohaPresence   float64       `json:"avarohaPresenceConfidence"`
	AvarohaSequence   float64       `json:"avarohaSequenceConfidence"`
	PakadPresence     float64       `json:"pakadConfidence"`
	PresenceScore     float64       `json:"presenceConfidence"`
	SequenceScore     float64       `json:"sequenceConfidence"`
	NoisePenalty      float64       `json:"noisePenalty"`
	VadiBonus         float64       `json:"vadiBonus"`
	SamvadiBonus      float64       `json:"samvadiBonus"`
	VadiSamvadiBonus  float64       `json:"vadiSamvadiBonus"`
	MatchedSwaras     []swara.Label `json:"matchedSwaras"`
	ExtraSwaras       []swara.Label `json:"extraSwaras"`
	TotalRecorded     int           `json:"totalRecordedSwaras"`
	RaagSwaraCount    int           `json:"raagSwaras"`
	MatchedSwaraCount int           `json:"matchedSwarasCount"`

	Vadi    swara.Label `json:"vadi"`
	Samvadi swara.Label `json:"samvadi"`
	Time    Time        `json:"time"`
	Mood    string      `json:"mood"`
	Thaat   string      `json:"thaat"`
}

// Option configures an Engine.
type Option func(*Engine)

// WithMinConfidence overrides the reporting threshold.
func WithMinConfidence(v float64) Option {
	return func(e *Engine) {
		e.minConfidence = v
	}
}

// Engine scores sequences against a catalog. It holds no mutable state and
// may be shared between goroutines.
type Engine struct {
	catalog       *Catalog
	minConfidence float64
}

// NewEngine creates an engine over catalog, or the built-in catalog if nil.
func NewEngine(catalog *Catalog, opts ...Option) *Engine {
	if catalog == nil {
		catalog = Default()
	}
	e := &Engine{
		catalog:       catalog,
		minConfidence: MinConfidence,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the engine matches against.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

var defaultEngine = NewEngine(nil)

// MatchRaags ranks the built-in catalog against seq.
func MatchRaags(seq []swara.Label) []Match {
	return defaultEngine.Match(seq)
}

// Match scores every raag against seq and returns those at or above the
// confidence threshold, best first. Ties keep catalog order. Sequences
// shorter than MinSequenceLength yield no matches.
func (e *Engine) Match(seq []swara.Label) []Match {
	if len(seq) < MinSequenceLength {
		return []Match{}
	}
	rec := indexRecording(seq)

	matches := make([]Match, 0, len(e.catalog.defs))
	for _, def := range e.catalog.defs {
		m := score(def, seq, rec)
		if m.Confidence >= e.minConfidence {
			matches = append(matches, m)
		}
	}
	slices.SortStableFunc(matches, func(a, b Match) int {
		switch {
		case a.Confidence > b.Confidence:
			return -1
		case a.Confidence < b.Confidence:
			return 1
		}
		return 0
	})
	return matches
}

// Score returns the unfiltered breakdown of a single raag against seq.
func (e *Engine) Score(def Definition, seq []swara.Label) Match {
	return score(def, seq, indexRecording(seq))
}

// recording indexes where each swara occurs in the recorded sequence.
type recording struct {
	length    int
	positions map[swara.Label][]int
}

func indexRecording(seq []swara.Label) recording {
	r := recording{
		length:    len(seq),
		positions: make(map[swara.Label][]int),
	}
	for i, l := range seq {
		r.positions[l] = append(r.positions[l], i)
	}
	return r
}

func (r recording) count(l swara.Label) int {
	return len(r.positions[l])
}

// occurrence returns the index of the nth recorded occurrence of l, the first
// occurrence when there are fewer than n+1, or -1 when l was never recorded.
func (r recording) occurrence(l swara.Label, nth int) int {
	pos := r.positions[l]
	switch {
	case len(pos) == 0:
		return -1
	case nth < len(pos):
		return pos[nth]
	}
	return pos[0]
}

// patternScore is the normalized presence and ordering of one pattern.
type patternScore struct {
	presence float64
	sequence float64
}

// scorePattern walks the pattern once. A present swara is in order when it is
// the first position or it was recorded after the previous pattern swara; an
// absent previous swara sits at -1. A swara repeated within the pattern is
// matched against its repeated recorded occurrences in turn.
func scorePattern(pattern []swara.Label, rec recording) patternScore {
	if len(pattern) == 0 {
		return patternScore{}
	}
	seen := make(map[swara.Label]int, len(pattern))
	present, ordered := 0, 0
	prev := -1
	for i, l := range pattern {
		at := rec.occurrence(l, seen[l])
		seen[l]++
		if at >= 0 {
			present++
			if i == 0 || at > prev {
				ordered++
			}
		}
		prev = at
	}
	n := float64(len(pattern))
	return patternScore{
		presence: float64(present) / n,
		sequence: float64(ordered) / n,
	}
}

func score(def Definition, seq []swara.Label, rec recording) Match {
	aroha := scorePattern(def.Aroha, rec)
	avaroha := scorePattern(def.Avaroha, rec)
	pakad := scorePattern(def.Pakad, rec)

	inRaag := make(map[swara.Label]bool, len(def.Aroha)+len(def.Avaroha)+len(def.Pakad))
	for _, pattern := range [][]swara.Label{def.Aroha, def.Avaroha, def.Pakad} {
		for _, l := range pattern {
			inRaag[l] = true
		}
	}
	matched := make([]swara.Label, 0, len(seq))
	extra := make([]swara.Label, 0)
	for _, l := range seq {
		if inRaag[l] {
			matched = append(matched, l)
		} else {
			extra = append(extra, l)
		}
	}

	m := Match{
		RaagID:            def.ID,
		Name:              def.Name,
		NativeName:        def.NativeName,
		ArohaPresence:     aroha.presence,
		ArohaSequence:     aroha.sequence,
		AvarohaPresence:   avaroha.presence,
		AvarohaSequence:   avaroha.sequence,
		PakadPresence:     pakad.presence,
		MatchedSwaras:     matched,
		ExtraSwaras:       extra,
		TotalRecorded:     len(seq),
		RaagSwaraCount:    len(def.Aroha),
		MatchedSwaraCount: len(matched),
		Vadi:              def.Vadi,
		Samvadi:           def.Samvadi,
		Time:              def.Time,
		Mood:              def.Mood,
		Thaat:             def.Thaat,
	}
	if len(seq) == 0 {
		return m
	}

	total := float64(rec.length)
	m.NoisePenalty = max(0, 1-float64(len(extra))/total)
	m.VadiBonus = float64(rec.count(def.Vadi)) / total * vadiWeight
	m.SamvadiBonus = float64(rec.count(def.Samvadi)) / total * samvadiWeight
	m.VadiSamvadiBonus = m.VadiBonus + m.SamvadiBonus

	// Pakad has no ordering score; its presence stands in for one.
	m.PresenceScore = arohaPresenceWeight*aroha.presence +
		avarohaPresenceWeight*avaroha.presence +
		pakadPresenceWeight*pakad.presence
	m.SequenceScore = arohaSequenceWeight*aroha.sequence +
		avarohaSequenceWeight*avaroha.sequence +
		pakadSequenceWeight*pakad.presence

	m.Confidence = (presenceWeight*m.PresenceScore+sequenceWeight*m.SequenceScore)*m.NoisePenalty +
		m.VadiSamvadiBonus
	return m
}
