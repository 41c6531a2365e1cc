package recorder

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/0xlemi/raagnote/internal/swara"
)

// DefaultDebounce is the gap a swara must exceed after the last recorded one
const DefaultDebounce = 400 * time.Millisecond

// Options configures a Recorder
type Options struct {
	Debounce    time.Duration
	StripSaptak bool             // Record "*Ni" and "Sa*" as "Ni" and "Sa"
	Clock       func() time.Time // Defaults to time.Now
}

// Session is one recording, from Start to Stop
type Session struct {
	ID       uuid.UUID
	Started  time.Time
	Ended    time.Time
	Sequence swara.Sequence
}

// Duration returns how long the session lasted, or zero while it is open
func (s Session) Duration() time.Duration {
	if s.Ended.IsZero() {
		return 0
	}
	return s.Ended.Sub(s.Started)
}

// Recorder accumulates swaras while recording is on.
// It is safe for concurrent use by the capture loop and the UI.
type Recorder struct {
	mu        sync.Mutex
	opts      Options
	recording bool
	session   Session
	lastAt    time.Time
}

// New creates an idle recorder
func New(opts Options) *Recorder {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Debounce < 0 {
		opts.Debounce = 0
	}
	return &Recorder{opts: opts}
}

// Start clears the sequence and begins a new session
func (r *Recorder) Start() Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.recording = true
	r.lastAt = time.Time{}
	r.session = Session{
		ID:       uuid.New(),
		Started:  r.opts.Clock(),
		Sequence: swara.Sequence{},
	}
	return r.snapshot()
}

// Stop finalizes the session and returns it. Stopping an idle recorder
// returns the last finished session.
func (r *Recorder) Stop() Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		r.recording = false
		r.session.Ended = r.opts.Clock()
	}
	return r.snapshot()
}

// Recording reports whether a session is open
func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// Session returns a copy of the current or last session
func (r *Recorder) Session() Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

// Offer appends a swara heard at the given time. It is ignored when idle,
// when it repeats the last recorded swara, or when it arrives within the
// debounce window. Returns true if the swara was recorded.
func (r *Recorder) Offer(label swara.Label, at time.Time) bool {
	if r.opts.StripSaptak {
		label = label.StripSaptak()
	}
	if label == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording {
		return false
	}
	seq := r.session.Sequence
	if len(seq) > 0 && seq[len(seq)-1] == label {
		return false
	}
	if r.opts.Debounce > 0 && !r.lastAt.IsZero() && at.Sub(r.lastAt) <= r.opts.Debounce {
		return false
	}

	r.session.Sequence = append(seq, label)
	r.lastAt = at
	return true
}

func (r *Recorder) snapshot() Session {
	s := r.session
	s.Sequence = slices.Clone(s.Sequence)
	return s
}

// Collapse removes consecutive repeats, e.g. Sa Sa Re Re Sa -> Sa Re Sa
func Collapse(seq swara.Sequence) swara.Sequence {
	return slices.Compact(slices.Clone(seq))
}
