package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xlemi/raagnote/internal/swara"
)

func TestMapCmd_Use(t *testing.T) {
	assert.Equal(t, "map <frequency>...", mapCmd.Use)
}

func TestMapCmd_RequiresArgs(t *testing.T) {
	_, err := execute(t, "map")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
}

func TestMapCmd_Table(t *testing.T) {
	out, err := execute(t, "map", "261.63", "130.81", "523.25", "466.16")
	require.NoError(t, err)

	assert.Contains(t, out, "Sa = C4 (261.63 Hz)")
	assert.Contains(t, out, "C4   Sa ")
	assert.Contains(t, out, "C3   *Sa")
	assert.Contains(t, out, "C5   Sa*")
	assert.Contains(t, out, "A#4  ♭Ni")
}

func TestMapCmd_TonicAndScript(t *testing.T) {
	out, err := execute(t, "map", "--tonic", "A3", "--script", "devanagari", "220", "330")
	require.NoError(t, err)
	assert.Contains(t, out, "सा")
	assert.Contains(t, out, "प")
}

func TestMapCmd_JSON(t *testing.T) {
	out, err := execute(t, "map", "--json", "440", "311.13")
	require.NoError(t, err)

	var got []mappingOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)

	assert.Equal(t, "A4", got[0].Note)
	assert.Equal(t, 69, got[0].MIDI)
	assert.Equal(t, swara.Label("Dha"), got[0].Swara)
	assert.Equal(t, 9, got[0].Degree)
	assert.Equal(t, swara.Label("♭Ga"), got[1].Swara)
	assert.InDelta(t, 0, got[1].Cents, 0.1)
}

func TestMapCmd_InvalidFrequency(t *testing.T) {
	_, err := execute(t, "map", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid frequency "abc"`)

	_, err = execute(t, "map", "0")
	assert.ErrorIs(t, err, swara.ErrInvalidInput)
}

func TestMapCmd_InvalidTonic(t *testing.T) {
	_, err := execute(t, "map", "--tonic", "H", "440")
	assert.ErrorIs(t, err, swara.ErrInvalidInput)
}
