package raag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xlemi/raagnote/internal/swara"
)

func TestDefault_Golden(t *testing.T) {
	c := Default()
	assert.Equal(t, 27, c.Len())

	thaats := map[string]string{
		"yaman": "Kalyan", "shuddha-kalyan": "Kalyan", "bhoopali": "Kalyan", "deshkar": "Kalyan",
		"bhairav": "Bhairav", "ahir-bhairav": "Bhairav", "nat-bhairav": "Bhairav",
		"bhairavi": "Bhairavi", "malkauns": "Bhairavi", "darbari-kanada": "Bhairavi",
		"khamaj": "Khamaj", "jhinjhoti": "Khamaj", "rageshri": "Khamaj",
		"kafi": "Kafi", "bageshri": "Kafi", "pilu": "Kafi",
		"asavari": "Asavari", "jaunpuri": "Asavari",
		"alhaiya-bilawal": "Bilawal", "durga": "Bilawal", "des": "Bilawal",
		"purvi": "Purvi", "shree": "Purvi",
		"marwa": "Marwa", "sohini": "Marwa",
		"todi": "Todi", "miyan-ki-todi": "Todi",
	}
	for id, thaat := range thaats {
		assert.Equal(t, thaat, c.Thaat(id), id)
	}
	assert.Equal(t, []string{
		"Kalyan", "Bhairav", "Bhairavi", "Khamaj", "Kafi",
		"Asavari", "Bilawal", "Purvi", "Marwa", "Todi",
	}, c.Thaats())
}

func TestDefault_Yaman(t *testing.T) {
	yaman, ok := Default().Lookup("Yaman")
	require.True(t, ok)
	assert.Equal(t, "राग यमन", yaman.NativeName)
	assert.Equal(t, []swara.Label{"Sa", "Re", "Ga", "Ma#", "Pa", "Dha", "Ni", "Sa"}, yaman.Aroha)
	assert.Equal(t, []swara.Label{"Sa", "Ni", "Dha", "Pa", "Ma#", "Ga", "Re", "Sa"}, yaman.Avaroha)
	assert.Equal(t, []swara.Label{"Ni", "Re", "Ga", "Ma#", "Ga", "Re", "Sa"}, yaman.Pakad)
	assert.Equal(t, swara.Label("Ga"), yaman.Vadi)
	assert.Equal(t, swara.Label("Ni"), yaman.Samvadi)
	assert.Equal(t, "Serene, Peaceful", yaman.Mood)
}

func TestCatalog_ThaatUnknown(t *testing.T) {
	assert.Equal(t, UnknownThaat, Default().Thaat("not-a-raag"))
}

func TestCatalog_ThaatByName(t *testing.T) {
	c := Default()
	assert.Equal(t, "Kalyan", c.Thaat("Shuddha Kalyan"))
	assert.Equal(t, "Kalyan", c.Thaat("shuddha kalyan"))
	assert.Equal(t, "Bhairav", c.Thaat("Ahir Bhairav"))
	assert.Equal(t, UnknownThaat, c.Thaat(""))
}

func TestCatalog_InThaat(t *testing.T) {
	todi := Default().InThaat("todi")
	require.Len(t, todi, 2)
	assert.Equal(t, "Todi", todi[0].Name)
	assert.Equal(t, "Miyan Ki Todi", todi[1].Name)
}

func TestCatalog_AllReturnsCopies(t *testing.T) {
	all := Default().All()
	all[0].Aroha[0] = "Pa"

	yaman, _ := Default().Lookup("yaman")
	assert.Equal(t, swara.Label("Sa"), yaman.Aroha[0])
}

func TestCatalog_Find(t *testing.T) {
	c := Default()

	d, err := c.Find("miyan ki todi")
	require.NoError(t, err)
	assert.Equal(t, "miyan-ki-todi", d.ID)

	d, err = c.Find("राग यमन")
	require.NoError(t, err)
	assert.Equal(t, "yaman", d.ID)

	_, err = c.Find("Yamn")
	require.ErrorIs(t, err, ErrUnknownRaag)
	assert.Contains(t, err.Error(), "did you mean Yaman")

	_, err = c.Find("zzzzzzzzzzzz")
	require.ErrorIs(t, err, ErrUnknownRaag)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestNewCatalog_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Definition)
		want   string
	}{
		{"missing id", func(d *Definition) { d.ID = "" }, "missing id"},
		{"missing name", func(d *Definition) { d.Name = "" }, "missing name"},
		{"missing thaat", func(d *Definition) { d.Thaat = "" }, "missing thaat"},
		{"missing time", func(d *Definition) { d.Time = 0 }, "missing time"},
		{"missing aroha", func(d *Definition) { d.Aroha = nil }, "missing aroha"},
		{"missing pakad", func(d *Definition) { d.Pakad = nil }, "missing pakad"},
		{"missing vadi", func(d *Definition) { d.Vadi = "" }, "vadi: missing swara"},
		{"octave marker", func(d *Definition) { d.Avaroha = labels("Sa*", "Ni") }, "octave markers"},
		{"devanagari", func(d *Definition) { d.Aroha = labels("सा", "रे") }, "not canonical"},
		{"unknown swara", func(d *Definition) { d.Samvadi = "Do" }, "unknown swara"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := triad("triad")
			tt.mutate(&def)
			_, err := NewCatalog(def)
			require.ErrorIs(t, err, ErrInvalidCatalog)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewCatalog_DuplicateID(t *testing.T) {
	_, err := NewCatalog(triad("same"), triad("SAME"))
	require.ErrorIs(t, err, ErrInvalidCatalog)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestMustCatalog_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustCatalog(Definition{})
	})
}

func TestTime(t *testing.T) {
	tm, err := ParseTime("night")
	require.NoError(t, err)
	assert.Equal(t, Night, tm)
	assert.Equal(t, "Night", tm.String())

	text, err := Afternoon.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Afternoon", string(text))

	var back Time
	require.NoError(t, back.UnmarshalText([]byte("evening")))
	assert.Equal(t, Evening, back)

	_, err = ParseTime("dusk")
	assert.Error(t, err)
	assert.Error(t, back.UnmarshalText([]byte("dusk")))
}
