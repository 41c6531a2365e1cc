// Package listen runs the live pipeline from audio frames to recorded swaras.
package listen

import (
	"context"
	"errors"
	"time"

	"github.com/0xlemi/raagnote/internal/audio"
	"github.com/0xlemi/raagnote/internal/logger"
	"github.com/0xlemi/raagnote/internal/pitch"
	"github.com/0xlemi/raagnote/internal/recorder"
	"github.com/0xlemi/raagnote/internal/swara"
)

// DefaultInterval is how often a frame is pulled from the capturer
const DefaultInterval = 50 * time.Millisecond

// Event is emitted once per processed frame
type Event interface {
	event()
}

// NoteEvent carries an accepted reading and its swara
type NoteEvent struct {
	Reading  pitch.Reading
	Mapping  swara.Mapping
	Recorded bool // The recorder appended this swara
}

// SilenceEvent means the frame held no usable pitch
type SilenceEvent struct{}

// LevelEvent reports the input level of a frame
type LevelEvent struct {
	RMS float64
	DB  float64
}

func (NoteEvent) event()    {}
func (SilenceEvent) event() {}
func (LevelEvent) event()   {}

// Listener ties capture, estimation, filtering, mapping and recording together
type Listener struct {
	Capturer  audio.Capturer
	Estimator pitch.Estimator
	Filter    recorder.Filter
	Tonic     swara.Tonic
	Recorder  *recorder.Recorder // Optional
	Interval  time.Duration
}

// Run starts the capturer and processes frames until ctx is done.
// The capturer is stopped on return.
func (l *Listener) Run(ctx context.Context, emit func(Event)) error {
	if err := l.Tonic.Validate(); err != nil {
		return err
	}
	if err := l.Capturer.Start(); err != nil {
		return err
	}
	defer func() {
		if err := l.Capturer.Stop(); err != nil {
			logger.L().Debug("stop capture", "error", err)
		}
	}()

	interval := l.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if ctx.Err() != nil {
				return nil
			}
			l.process(now, emit)
		}
	}
}

// process handles one frame. Capture errors are skipped; the next tick retries.
func (l *Listener) process(now time.Time, emit func(Event)) {
	frame, err := l.Capturer.Frame()
	if err != nil {
		logger.L().Debug("no frame", "error", err)
		return
	}

	rms, db := frame.Level()
	emit(LevelEvent{RMS: rms, DB: db})

	reading, err := l.Estimator.Estimate(frame)
	if err != nil {
		if !errors.Is(err, pitch.ErrBelowThreshold) && !errors.Is(err, pitch.ErrNoPitch) {
			logger.L().Debug("estimate failed", "error", err)
		}
		emit(SilenceEvent{})
		return
	}
	if !l.Filter.Accept(reading) {
		emit(SilenceEvent{})
		return
	}

	m, err := swara.MapFrequency(reading.Frequency, l.Tonic)
	if err != nil {
		logger.L().Debug("map frequency", "frequency", reading.Frequency, "error", err)
		emit(SilenceEvent{})
		return
	}

	recorded := false
	if l.Recorder != nil {
		recorded = l.Recorder.Offer(m.Swara, now)
	}
	if recorded {
		logger.L().Debug("recorded swara", "swara", m.Swara, "note", m.Western(), "cents", m.Cents)
	}
	emit(NoteEvent{Reading: reading, Mapping: m, Recorded: recorded})
}
