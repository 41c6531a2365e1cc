package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xlemi/raagnote/internal/audio"
	"github.com/0xlemi/raagnote/internal/listen"
	"github.com/0xlemi/raagnote/internal/pitch"
	"github.com/0xlemi/raagnote/internal/raag"
	"github.com/0xlemi/raagnote/internal/recorder"
	"github.com/0xlemi/raagnote/internal/swara"
)

func TestListenCmd_Use(t *testing.T) {
	assert.Equal(t, "listen", listenCmd.Use)
	assert.Contains(t, listenCmd.Long, "Toggle Latin / Devanagari")
}

func TestListenCmd_HasFlags(t *testing.T) {
	for _, name := range []string{"demo", "plain", "duration", "max-swaras"} {
		assert.NotNil(t, listenCmd.Flags().Lookup(name), "flag %s should exist", name)
	}
}

func TestDemoPhrase(t *testing.T) {
	tonic := swara.Tonic{PitchClass: 9, Octave: 3}
	tones := demoPhrase(tonic, 5)
	require.Len(t, tones, 16)

	assert.InDelta(t, 220.0, tones[0].Frequencies[0], 1e-9)
	assert.InDelta(t, 440.0, tones[7].Frequencies[0], 1e-9)
	assert.Empty(t, tones[15].Frequencies, "phrase ends in a rest")
	for _, tone := range tones {
		assert.Equal(t, 5, tone.Frames)
	}
}

func TestListenLines_MatchesRecordedPhrase(t *testing.T) {
	tonic := swara.Tonic{PitchClass: 0, Octave: 4}
	est, err := pitch.NewFFTEstimator(60, 1200)
	require.NoError(t, err)

	rec := recorder.New(recorder.Options{StripSaptak: true})
	l := &listen.Listener{
		Capturer:  audio.NewToneSource(4096, 44100, demoPhrase(tonic, 1)[:8]...),
		Estimator: est,
		Filter:    recorder.DefaultFilter(),
		Tonic:     tonic,
		Recorder:  rec,
		Interval:  time.Millisecond,
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	defer rootCmd.SetOut(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, listenLines(ctx, rootCmd, l, raag.NewEngine(nil), swara.Latin, 8))

	out := buf.String()
	assert.Contains(t, out, "Listening with Sa = C4")
	assert.Contains(t, out, "Sequence: Sa Re Ga Ma# Pa Dha Ni Sa")
	assert.Regexp(t, `1st\s+Yaman\s`, out)
	assert.False(t, rec.Recording())

	lines := strings.Count(out, " Hz ")
	assert.Equal(t, 8, lines)
}
