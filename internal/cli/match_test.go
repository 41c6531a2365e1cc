package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xlemi/raagnote/internal/raag"
	"github.com/0xlemi/raagnote/internal/swara"
)

func TestMatchCmd_Use(t *testing.T) {
	assert.Equal(t, "match <swara>...", matchCmd.Use)
}

func TestMatchCmd_HasFlags(t *testing.T) {
	for _, name := range []string{"json", "strip-saptak", "min-confidence", "details"} {
		assert.NotNil(t, matchCmd.Flags().Lookup(name), "flag %s should exist", name)
	}
	assert.Equal(t, "0.4", matchCmd.Flags().Lookup("min-confidence").DefValue)
}

func TestMatchCmd_YamanAroha(t *testing.T) {
	out, err := execute(t, "match", "Sa", "Re", "Ga", "Ma#", "Pa", "Dha", "Ni", "Sa")
	require.NoError(t, err)

	assert.Contains(t, out, "Sequence: Sa Re Ga Ma# Pa Dha Ni Sa")
	assert.Regexp(t, `1st\s+Yaman\s+80\.[78]%\s+Kalyan thaat, Evening`, out)
	assert.Contains(t, out, "2nd")
}

func TestMatchCmd_QuotedSequence(t *testing.T) {
	out, err := execute(t, "match", "Sa bRe Ga Ma Pa bDha Ni Sa* Ni bDha Pa Ma Ga bRe Sa", "--strip-saptak", "--details")
	require.NoError(t, err)

	assert.Contains(t, out, "Sequence: Sa ♭Re Ga Ma Pa ♭Dha Ni Sa Ni ♭Dha Pa Ma Ga ♭Re Sa")
	assert.Regexp(t, `1st\s+Bhairav\s`, out)
	assert.Contains(t, out, "presence 0.80")
}

func TestMatchCmd_StripSaptakCollapsesRepeats(t *testing.T) {
	out, err := execute(t, "match", "--strip-saptak", "*Ni", "Re", "Ga", "Ma#", "Pa", "Dha", "Ni", "Sa", "Sa*")
	require.NoError(t, err)
	assert.Contains(t, out, "Sequence: Ni Re Ga Ma# Pa Dha Ni Sa\n")

	out, err = execute(t, "match", "Sa", "Sa*", "Re")
	require.NoError(t, err)
	assert.Contains(t, out, "Sequence: Sa Sa* Re")
}

func TestMatchCmd_JSON(t *testing.T) {
	out, err := execute(t, "match", "--json", "Sa", "Re", "Ga", "Ma#", "Pa", "Dha", "Ni", "Sa")
	require.NoError(t, err)

	var got []raag.Match
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotEmpty(t, got)
	assert.Equal(t, "yaman", got[0].RaagID)
	assert.InDelta(t, 0.8075, got[0].Confidence, 1e-9)
	assert.Equal(t, raag.Evening, got[0].Time)
	assert.Contains(t, out, `"arohaSequenceConfidence": 1`)
}

func TestMatchCmd_TooShort(t *testing.T) {
	out, err := execute(t, "match", "Sa", "Re")
	require.NoError(t, err)
	assert.Contains(t, out, "Need at least 3 swaras to match.")

	out, err = execute(t, "match", "--json", "Sa", "Re")
	require.NoError(t, err)
	assert.Contains(t, out, "[]")
}

func TestMatchCmd_NoConfidentMatch(t *testing.T) {
	out, err := execute(t, "match", "Sa", "Sa", "Sa")
	require.NoError(t, err)
	assert.Contains(t, out, "No raag matched with enough confidence.")
}

func TestMatchCmd_MinConfidence(t *testing.T) {
	out, err := execute(t, "match", "--min-confidence", "0.9", "Sa", "Re", "Ga", "Ma#", "Pa", "Dha", "Ni", "Sa")
	require.NoError(t, err)
	assert.Contains(t, out, "No raag matched with enough confidence.")
}

func TestMatchCmd_InvalidSwara(t *testing.T) {
	_, err := execute(t, "match", "Sa", "Xa", "Ga")
	assert.ErrorIs(t, err, swara.ErrInvalidInput)
}

func TestMatchCmd_CustomCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raags.yaml")
	data := `raags:
  - id: triad
    name: Triad
    aroha: [Sa, Ga, Pa]
    avaroha: [Sa, Ga, Pa]
    pakad: [Sa, Ga, Pa]
    vadi: Ga
    samvadi: Pa
    time: night
    mood: Test
    thaat: Test
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	out, err := execute(t, "match", "--catalog", path, "Sa", "Ga", "Pa")
	require.NoError(t, err)
	assert.Regexp(t, `1st\s+Triad\s`, out)
	assert.NotContains(t, out, "Yaman")

	_, err = execute(t, "match", "--catalog", filepath.Join(t.TempDir(), "missing.yaml"), "Sa", "Ga", "Pa")
	assert.Error(t, err)
}
