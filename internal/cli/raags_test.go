package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xlemi/raagnote/internal/raag"
)

func TestRaagsCmd_Use(t *testing.T) {
	assert.Equal(t, "raags [name]", raagsCmd.Use)
}

func TestRaagsCmd_ListsByThaat(t *testing.T) {
	out, err := execute(t, "raags")
	require.NoError(t, err)

	assert.Contains(t, out, "Kalyan thaat")
	assert.Contains(t, out, "Todi thaat")
	assert.Regexp(t, `Yaman\s+Evening\s+Serene, Peaceful`, out)
	assert.Less(t, strings.Index(out, "Kalyan thaat"), strings.Index(out, "Bhairav thaat"))
}

func TestRaagsCmd_ThaatFilter(t *testing.T) {
	out, err := execute(t, "raags", "--thaat", "bhairav")
	require.NoError(t, err)

	assert.Contains(t, out, "Ahir Bhairav")
	assert.NotContains(t, out, "Yaman")

	out, err = execute(t, "raags", "--thaat", "Nowhere")
	require.NoError(t, err)
	assert.Contains(t, out, "No raags found.")
}

func TestRaagsCmd_Detail(t *testing.T) {
	out, err := execute(t, "raags", "yaman")
	require.NoError(t, err)

	assert.Contains(t, out, "Yaman (राग यमन)")
	assert.Contains(t, out, "Aroha:    Sa Re Ga Ma# Pa Dha Ni Sa")
	assert.Contains(t, out, "Vadi:     Ga")
	assert.Contains(t, out, "Samvadi:  Ni")
}

func TestRaagsCmd_DetailDevanagari(t *testing.T) {
	out, err := execute(t, "raags", "Malkauns", "--script", "devanagari")
	require.NoError(t, err)
	assert.Contains(t, out, "सा")
	assert.Contains(t, out, "♭ग")
}

func TestRaagsCmd_Suggestions(t *testing.T) {
	_, err := execute(t, "raags", "yamn")
	require.Error(t, err)
	assert.ErrorIs(t, err, raag.ErrUnknownRaag)
	assert.Contains(t, err.Error(), "did you mean Yaman")
}

func TestRaagsCmd_JSON(t *testing.T) {
	out, err := execute(t, "raags", "--json", "bhoopali")
	require.NoError(t, err)

	var def raag.Definition
	require.NoError(t, json.Unmarshal([]byte(out), &def))
	assert.Equal(t, "bhoopali", def.ID)
	assert.Equal(t, "Kalyan", def.Thaat)

	out, err = execute(t, "raags", "--json")
	require.NoError(t, err)
	var defs []raag.Definition
	require.NoError(t, json.Unmarshal([]byte(out), &defs))
	assert.Len(t, defs, raag.Default().Len())
}

func TestDroneCmd(t *testing.T) {
	out, err := execute(t, "drone")
	require.NoError(t, err)
	assert.Regexp(t, `Sa\s+C4\s+261\.63 Hz`, out)
	assert.Regexp(t, `Pa\s+G4\s+392\.00 Hz`, out)

	out, err = execute(t, "drone", "--tonic", "A4")
	require.NoError(t, err)
	assert.Regexp(t, `Sa\s+A4\s+440\.00 Hz`, out)
	assert.Regexp(t, `Pa\s+E4\s+329\.63 Hz`, out)
}

func TestDroneCmd_RejectsArgs(t *testing.T) {
	_, err := execute(t, "drone", "extra")
	assert.Error(t, err)
}
