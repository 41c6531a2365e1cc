package swara

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTonic(t *testing.T, name string, octave int) Tonic {
	t.Helper()
	tonic, err := NewTonic(name, octave)
	require.NoError(t, err)
	return tonic
}

func TestMapFrequency_A440(t *testing.T) {
	m, err := MapFrequency(440, mustTonic(t, "C", 4))
	require.NoError(t, err)

	assert.Equal(t, "A", m.Note)
	assert.Equal(t, 4, m.Octave)
	assert.Equal(t, 69, m.MIDI)
	assert.Equal(t, Dha, m.Degree)
	assert.Equal(t, 0, m.Saptak)
	assert.Equal(t, Label("Dha"), m.Swara)
	assert.InDelta(t, 0, m.Cents, 1e-9)
	assert.Equal(t, "A4", m.Western())
}

func TestMapFrequency_TonicIsSa(t *testing.T) {
	for pc := 0; pc < 12; pc++ {
		for octave := 1; octave <= 6; octave++ {
			tonic := Tonic{PitchClass: pc, Octave: octave}
			m, err := MapFrequency(tonic.Frequency(), tonic)
			require.NoError(t, err)
			assert.Equal(t, Label("Sa"), m.Swara, "tonic %s", tonic)
			assert.Equal(t, 0, m.Saptak, "tonic %s", tonic)
			assert.Equal(t, NoteName(pc), m.Note)
		}
	}
}

func TestMapFrequency_Degrees(t *testing.T) {
	tonic := mustTonic(t, "D", 4)
	want := []Label{"Sa", "♭Re", "Re", "♭Ga", "Ga", "Ma", "Ma#", "Pa", "♭Dha", "Dha", "♭Ni", "Ni"}
	for i, label := range want {
		m, err := MapFrequency(IdealFrequency(tonic.MIDI()+i), tonic)
		require.NoError(t, err)
		assert.Equal(t, label, m.Swara)
		assert.Equal(t, Degree(i), m.Degree)
	}
}

func TestMapFrequency_Saptak(t *testing.T) {
	tonic := mustTonic(t, "C", 4)

	tests := []struct {
		name   string
		offset int
		want   Label
		saptak int
	}{
		{"two below", -24, "**Sa", -2},
		{"one below Pa", -5, "*Pa", -1},
		{"one below Ni", -1, "*Ni", -1},
		{"base Ni", 11, "Ni", 0},
		{"upper Sa", 12, "Sa*", 1},
		{"two above Ga", 28, "Ga**", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := MapFrequency(IdealFrequency(tonic.MIDI()+tt.offset), tonic)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Swara)
			assert.Equal(t, tt.saptak, m.Saptak)
		})
	}
}

func TestMapFrequency_Devanagari(t *testing.T) {
	tonic := mustTonic(t, "C", 4)

	m, err := MapFrequencyIn(IdealFrequency(tonic.MIDI()+6), tonic, Devanagari)
	require.NoError(t, err)
	assert.Equal(t, Label("म#"), m.Swara)

	m, err = MapFrequencyIn(IdealFrequency(tonic.MIDI()+13), tonic, Devanagari)
	require.NoError(t, err)
	assert.Equal(t, Label("♭रे*"), m.Swara)
	assert.Equal(t, Label("♭Re*"), m.In(Latin))
}

func TestMapFrequency_InvalidInput(t *testing.T) {
	tonic := mustTonic(t, "C", 4)
	for _, f := range []float64{0, -440, math.NaN(), math.Inf(1)} {
		_, err := MapFrequency(f, tonic)
		assert.ErrorIs(t, err, ErrInvalidInput, "frequency %v", f)
	}

	_, err := MapFrequency(440, Tonic{PitchClass: 12, Octave: 4})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = MapFrequencyIn(440, tonic, Script(9))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMapFrequency_Cents(t *testing.T) {
	tonic := mustTonic(t, "C", 4)

	sharp := 440 * math.Pow(2, 20.0/1200)
	m, err := MapFrequency(sharp, tonic)
	require.NoError(t, err)
	assert.Equal(t, 69, m.MIDI)
	assert.InDelta(t, 20, m.Cents, 1e-9)

	flat := 440 * math.Pow(2, -30.0/1200)
	m, err = MapFrequency(flat, tonic)
	require.NoError(t, err)
	assert.Equal(t, 69, m.MIDI)
	assert.InDelta(t, -30, m.Cents, 1e-9)
}

func TestCentDeviation_ZeroAtIdealFrequency(t *testing.T) {
	for midi := 0; midi <= 127; midi++ {
		assert.InDelta(t, 0, CentDeviation(IdealFrequency(midi), midi), 1e-9, "midi %d", midi)
		assert.Equal(t, midi, MIDINumber(IdealFrequency(midi)))
	}
}

func TestTeevraMaNeverKomal(t *testing.T) {
	assert.False(t, TeevraMa.Komal())
	for s := range baseNames {
		label := TeevraMa.In(s)
		assert.NotContains(t, string(label), KomalMarker)
		assert.Contains(t, string(label), TeevraMarker)
	}
	for d := Sa; d <= Ni; d++ {
		label := string(d.In(Latin))
		hasKomal := strings.HasPrefix(label, KomalMarker)
		hasTeevra := strings.HasSuffix(label, TeevraMarker)
		assert.False(t, hasKomal && hasTeevra, "degree %d", d)
	}
}
