package raag

import "github.com/0xlemi/raagnote/internal/swara"

// builtin is the compiled-in catalog, grouped by thaat.
var builtin = []Definition{
	{
		ID:         "yaman",
		Name:       "Yaman",
		NativeName: "राग यमन",
		Aroha:      labels("Sa", "Re", "Ga", "Ma#", "Pa", "Dha", "Ni", "Sa"),
		Avaroha:    labels("Sa", "Ni", "Dha", "Pa", "Ma#", "Ga", "Re", "Sa"),
		Pakad:      labels("Ni", "Re", "Ga", "Ma#", "Ga", "Re", "Sa"),
		Vadi:       "Ga",
		Samvadi:    "Ni",
		Time:       Evening,
		Mood:       "Serene, Peaceful",
		Thaat:      "Kalyan",
	},
	{
		ID:         "shuddha-kalyan",
		Name:       "Shuddha Kalyan",
		NativeName: "राग शुद्ध कल्याण",
		Aroha:      labels("Sa", "Re", "Ga", "Ma#", "Pa", "Dha", "Ni", "Sa"),
		Avaroha:    labels("Sa", "Ni", "Dha", "Pa", "Ma#", "Ga", "Re", "Sa"),
		Pakad:      labels("Ga", "Ma#", "Pa", "Dha", "Pa", "Ma#", "Ga", "Re", "Sa"),
		Vadi:       "Ga",
		Samvadi:    "Ni",
		Time:       Evening,
		Mood:       "Serene, Divine",
		Thaat:      "Kalyan",
	},
	{
		ID:         "bhoopali",
		Name:       "Bhoopali",
		NativeName: "राग भूपाली",
		Aroha:      labels("Sa", "Re", "Ga", "Pa", "Dha", "Sa"),
		Avaroha:    labels("Sa", "Dha", "Pa", "Ga", "Re", "Sa"),
		Pakad:      labels("Ga", "Pa", "Dha", "Pa", "Ga", "Re", "Sa"),
		Vadi:       "Ga",
		Samvadi:    "Dha",
		Time:       Evening,
		Mood:       "Peaceful, Devotional",
		Thaat:      "Kalyan",
	},
	{
		ID:         "deshkar",
		Name:       "Deshkar",
		NativeName: "राग देशकार",
		Aroha:      labels("Sa", "Re", "Ga", "Pa", "Dha", "Sa"),
		Avaroha:    labels("Sa", "Dha", "Pa", "Ga", "Re", "Sa"),
		Pakad:      labels("Ga", "Pa", "Dha", "Pa", "Ga", "Re", "Sa"),
		Vadi:       "Ga",
		Samvadi:    "Dha",
		Time:       Morning,
		Mood:       "Fresh, Bright",
		Thaat:      "Kalyan",
	},
	{
		ID:         "bhairav",
		Name:       "Bhairav",
		NativeName: "राग भैरव",
		Aroha:      labels("Sa", "♭Re", "Ga", "Ma", "Pa", "♭Dha", "Ni", "Sa"),
		Avaroha:    labels("Sa", "Ni", "♭Dha", "Pa", "Ma", "Ga", "♭Re", "Sa"),
		Pakad:      labels("Ma", "Pa", "♭Dha", "Pa", "Ma", "Ga", "♭Re", "Sa"),
		Vadi:       "Ma",
		Samvadi:    "Sa",
		Time:       Morning,
		Mood:       "Serious, Devotional",
		Thaat:      "Bhairav",
	},
	{
		ID:         "ahir-bhairav",
		Name:       "Ahir Bhairav",
		NativeName: "राग अहीर भैरव",
		Aroha:      labels("Sa", "♭Re", "Ga", "Ma", "Pa", "♭Dha", "Ni", "Sa"),
		Avaroha:    labels("Sa", "Ni", "♭Dha", "Pa", "Ma", "Ga", "♭Re", "Sa"),
		Pakad:      labels("Ga", "Ma", "Pa", "♭Dha", "Pa", "Ma", "Ga", "♭Re", "Sa"),
		Vadi:       "Ma",
		Samvadi:    "Sa",
		Time:       Morning,
		Mood:       "Serene, Peaceful",
		Thaat:      "Bhairav",
	},
	{
		ID:         "nat-bhairav",
		Name:       "Nat Bhairav",
		NativeName: "राग नट भैरव",
		Aroha:      labels("Sa", "Re", "Ga", "Ma", "Pa", "♭Dha", "Ni", "Sa"),
		Avaroha:    labels("Sa", "Ni", "♭Dha", "Pa", "Ma", "Ga", "Re", "Sa"),
		Pakad:      labels("Ga", "Ma", "Pa", "♭Dha", "Pa", "Ma", "Ga", "Re", "Sa"),
		Vadi:       "Ma",
		Samvadi:    "Sa",
		Time:       Morning,
		Mood:       "Energetic, Dramatic",
		Thaat:      "Bhairav",
	},
	{
		ID:         "bhairavi",
		Name:       "Bhairavi",
		NativeName: "राग भैरवी",
		Aroha:      labels("Sa", "♭Re", "♭Ga", "Ma", "Pa", "♭Dha", "♭Ni", "Sa"),
		Avaroha:    labels("Sa", "♭Ni", "♭Dha", "Pa", "Ma", "♭Ga", "♭Re", "Sa"),
		Pakad:      labels("Ma", "Pa", "♭Dha", "Pa", "Ma", "♭Ga", "♭Re", "Sa"),
		Vadi:       "Ma",
		Samvadi:    "Sa",
		Time:       Morning,
		Mood:       "Serious, Devotional",
		Thaat:      "Bhairavi",
	},
	{
		ID:         "malkauns",
		Name:       "Malkauns",
		NativeName: "राग मलकौंस",
		Aroha:      labels("Sa", "♭Ga", "Ma", "♭Dha", "♭Ni", "Sa"),
		Avaroha:    labels("Sa", "♭Ni", "♭Dha", "Ma", "♭Ga", "Sa"),
		Pakad:      labels("♭Dha", "Ma", "♭Ga", "Ma", "♭Dha", "♭Ni", "Sa"),
		Vadi:       "Ma",
		Samvadi:    "Sa",
		Time:       Night,
		Mood:       "Mysterious, Deep",
		Thaat:      "Bhairavi",
	},
	{
		ID:         "darbari-kanada",
		Name:       "Darbari Kanada",
		NativeName: "राग दरबारी कनाडा",
		Aroha:      labels("Sa", "Re", "♭Ga", "Ma", "Pa", "♭Dha", "♭Ni", "Sa"),
		Avaroha:    labels("Sa", "♭Ni", "♭Dha", "Pa", "Ma", "♭Ga", "Re", "Sa"),
		Pakad:      labels("♭Dha", "Pa", "Ma", "♭Ga", "Re", "Sa"),
		Vadi:       "♭Dha",
		Samvadi:    "♭Ga",
		Time:       Night,
		Mood:       "Serious, Majestic",
		Thaat:      "Bhairavi",
	},
	{
		ID:         "khamaj",
		Name:       "Khamaj",
		NativeName: "राग खमाज",
		Aroha:      labels("Sa", "Re", "Ga", "Ma", "Pa", "Dha", "♭Ni", "Sa"),
		Avaroha:    labels("Sa", "♭Ni", "Dha", "Pa", "Ma", "Ga", "Re", "Sa"),
		Pakad:      labels("Ga", "Ma", "Pa", "Dha", "Pa", "Ma", "Ga", "Re", "Sa"),
		Vadi:       "Ga",
		Samvadi:    "♭Ni",
		Time:       Evening,
		Mood:       "Light, Playful",
		Thaat:      "Khamaj",
	},
	{
		ID:         "jhinjhoti",
		Name:       "Jhinjhoti",
		NativeName: "राग झिंझोटी",
		Aroha:      labels("Sa", "Re", "Ga", "Ma", "Pa", "Dha", "♭Ni", "Sa"),
		Avaroha:    labels("Sa", "♭Ni", "Dha", "Pa", "Ma", "Ga", "Re", "Sa"),
		Pakad:      labels("Ga", "Ma", "Pa", "Dha", "Pa", "Ma", "Ga", "Re", "Sa"),
		Vadi:       "Ga",
		Samvadi:    "♭Ni",
		Time:       Evening,
		Mood:       "Romantic, Melancholic",
		Thaat:      "Khamaj",
	},
	{
		ID:         "rageshri",
		Name:       "Rageshri",
		NativeName: "राग रागेश्री",
		Aroha:      labels("Sa", "Re", "Ga", "Ma", "Pa", "Dha", "♭Ni", "Sa"),
		Avaroha:    labels("Sa", "♭Ni", "Dha", "Pa", "Ma", "Ga", "Re", "Sa"),
		Pakad:      labels("Ga", "Ma", "Pa", "Dha", "Pa", "Ma", "Ga", "Re", "Sa"),
		Vadi:       "Ga",
		Samvadi:    "♭Ni",
		Time:       Evening,
		Mood:       "Romantic, Sweet",
		Thaat:      "Khamaj",
	},
	{
		ID:         "kafi",
		Name:       "Kafi",
		NativeName: "राग काफी",
		Aroha:      labels("Sa", "Re", "♭Ga", "Ma", "Pa", "Dha", "♭Ni", "Sa"),
		Avaroha:    labels("Sa", "♭Ni", "Dha", "Pa", "Ma", "♭Ga", "Re", "Sa"),
		Pakad:      labels("♭Ga", "Ma", "Pa", "Dha", "Pa", "Ma", "♭Ga", "Re", "Sa"),
		Vadi:       "Pa",
		Samvadi:    "Re",
		Time:       Evening,
		Mood:       "Romantic, Melancholic",
		Thaat:      "Kafi",
	},
	{
		ID:         "bageshri",
		Name:       "Bageshri",
		NativeName: "राग बागेश्री",
		Aroha:      labels("Sa", "Re", "♭Ga", "Ma", "Pa", "Dha", "♭Ni", "Sa"),
		Avaroha:    labels("Sa", "♭Ni", "Dha", "Pa", "Ma", "♭Ga", "Re", "Sa"),
		Pakad:      labels("Dha", "Pa", "Ma", "♭Ga", "Re", "Sa"),
		Vadi:       "Dha",
		Samvadi:    "♭Ga",
		Time:       Night,
		Mood:       "Romantic, Melancholic",
		Thaat:      "Kafi",
	},
	{
		ID:         "pilu",
		Name:       "Pilu",
		NativeName: "राग पीलू",
		Aroha:      labels("Sa", "Re", "♭Ga", "Ma", "Pa", "Dha", "♭Ni", "Sa"),
		Avaroha:    labels("Sa", "♭Ni", "Dha", "Pa", "Ma", "♭Ga", "Re", "Sa"),
		Pakad:      labels("♭Ga", "Ma", "Pa", "Dha", "Pa", "Ma", "♭Ga", "Re", "Sa"),
		Vadi:       "Pa",
		Samvadi:    "Re",
		Time:       Evening,
		Mood:       "Light, Playful",
		Thaat:      "Kafi",
	},
	{
		ID:         "asavari",
		Name:       "Asavari",
		NativeName: "राग आसावरी",
		Aroha:      labels("Sa", "Re", "♭Ga", "Ma", "Pa", "♭Dha", "♭Ni", "Sa"),
		Avaroha:    labels("Sa", "♭Ni", "♭Dha", "Pa", "Ma", "♭Ga", "Re", "Sa"),
		Pakad:      labels("♭Dha", "Pa", "Ma", "♭Ga", "Re", "Sa"),
		Vadi:       "♭Dha",
		Samvadi:    "♭Ga",
		Time:       Morning,
		Mood:       "Serious, Mysterious",
		Thaat:      "Asavari",
	},
	{
		ID:         "jaunpuri",
		Name:       "Jaunpuri",
		NativeName: "राग जौनपुरी",
		Aroha:      labels("Sa", "Re", "♭Ga", "Ma", "Pa", "♭Dha", "♭Ni", "Sa"),
		Avaroha:    labels("Sa", "♭Ni", "♭Dha", "Pa", "Ma", "♭Ga", "Re", "Sa"),
		Pakad:      labels("♭Dha", "Pa", "Ma", "♭Ga", "Re", "Sa"),
		Vadi:       "♭Dha",
		Samvadi:    "♭Ga",
		Time:       Morning,
		Mood:       "Serious, Mysterious",
		Thaat:      "Asavari",
	},
	{
		ID:         "alhaiya-bilawal",
		Name:       "Alhaiya Bilawal",
		NativeName: "राग अल्हैया बिलावल",
		Aroha:      labels("Sa", "Re", "Ga", "Ma", "Pa", "Dha", "Ni", "Sa"),
		Avaroha:    labels("Sa", "Ni", "Dha", "Pa", "Ma", "Ga", "Re", "Sa"),
		Pakad:      labels("Ga", "Ma", "Pa", "Dha", "Pa", "Ma", "Ga", "Re", "Sa"),
		Vadi:       "Ga",
		Samvadi:    "Ni",
		Time:       Morning,
		Mood:       "Bright, Cheerful",
		Thaat:      "Bilawal",
	},
	{
		ID:         "durga",
		Name:       "Durga",
		NativeName: "राग दुर्गा",
		Aroha:      labels("Sa", "Re", "Ga", "Ma", "Pa", "Dha", "Sa"),
		Avaroha:    labels("Sa", "Dha", "Pa", "Ma", "Ga", "Re", "Sa"),
		Pakad:      labels("Ga", "Ma", "Pa", "Dha", "Pa", "Ma", "Ga", "Re", "Sa"),
		Vadi:       "Ga",
		Samvadi:    "Dha",
		Time:       Evening,
		Mood:       "Peaceful, Serene",
		Thaat:      "Bilawal",
	},
	{
		ID:         "des",
		Name:       "Des",
		NativeName: "राग देश",
		Aroha:      labels("Sa", "Re", "Ga", "Ma", "Pa", "Dha", "Ni", "Sa"),
		Avaroha:    labels("Sa", "Ni", "Dha", "Pa", "Ma", "Ga", "Re", "Sa"),
		Pakad:      labels("Ga", "Ma", "Pa", "Dha", "Pa", "Ma", "Ga", "Re", "Sa"),
		Vadi:       "Ga",
		Samvadi:    "Ni",
		Time:       Evening,
		Mood:       "Romantic, Melancholic",
		Thaat:      "Bilawal",
	},
	{
		ID:         "purvi",
		Name:       "Purvi",
		NativeName: "राग पूर्वी",
		Aroha:      labels("Sa", "♭Re", "Ga", "Ma#", "Pa", "♭Dha", "Ni", "Sa"),
		Avaroha:    labels("Sa", "Ni", "♭Dha", "Pa", "Ma#", "Ga", "♭Re", "Sa"),
		Pakad:      labels("Ma#", "Pa", "♭Dha", "Pa", "Ma#", "Ga", "♭Re", "Sa"),
		Vadi:       "Ma#",
		Samvadi:    "Sa",
		Time:       Afternoon,
		Mood:       "Serious, Mysterious",
		Thaat:      "Purvi",
	},
	{
		ID:         "shree",
		Name:       "Shree",
		NativeName: "राग श्री",
		Aroha:      labels("Sa", "♭Re", "Ga", "Ma#", "Pa", "♭Dha", "Ni", "Sa"),
		Avaroha:    labels("Sa", "Ni", "♭Dha", "Pa", "Ma#", "Ga", "♭Re", "Sa"),
		Pakad:      labels("Ma#", "Pa", "♭Dha", "Pa", "Ma#", "Ga", "♭Re", "Sa"),
		Vadi:       "Ma#",
		Samvadi:    "Sa",
		Time:       Afternoon,
		Mood:       "Serious, Devotional",
		Thaat:      "Purvi",
	},
	{
		ID:         "marwa",
		Name:       "Marwa",
		NativeName: "राग मारवा",
		Aroha:      labels("Sa", "♭Re", "Ga", "Ma#", "Pa", "Dha", "Ni", "Sa"),
		Avaroha:    labels("Sa", "Ni", "Dha", "Pa", "Ma#", "Ga", "♭Re", "Sa"),
		Pakad:      labels("Ma#", "Pa", "Dha", "Pa", "Ma#", "Ga", "♭Re", "Sa"),
		Vadi:       "Ma#",
		Samvadi:    "Sa",
		Time:       Afternoon,
		Mood:       "Serious, Mysterious",
		Thaat:      "Marwa",
	},
	{
		ID:         "sohini",
		Name:       "Sohini",
		NativeName: "राग सोहनी",
		Aroha:      labels("Sa", "♭Re", "Ga", "Ma#", "Pa", "Dha", "Ni", "Sa"),
		Avaroha:    labels("Sa", "Ni", "Dha", "Pa", "Ma#", "Ga", "♭Re", "Sa"),
		Pakad:      labels("Ma#", "Pa", "Dha", "Pa", "Ma#", "Ga", "♭Re", "Sa"),
		Vadi:       "Ma#",
		Samvadi:    "Sa",
		Time:       Afternoon,
		Mood:       "Romantic, Melancholic",
		Thaat:      "Marwa",
	},
	{
		ID:         "todi",
		Name:       "Todi",
		NativeName: "राग तोड़ी",
		Aroha:      labels("Sa", "♭Re", "♭Ga", "Ma#", "Pa", "♭Dha", "Ni", "Sa"),
		Avaroha:    labels("Sa", "Ni", "♭Dha", "Pa", "Ma#", "♭Ga", "♭Re", "Sa"),
		Pakad:      labels("Ma#", "Pa", "♭Dha", "Pa", "Ma#", "♭Ga", "♭Re", "Sa"),
		Vadi:       "Ma#",
		Samvadi:    "Sa",
		Time:       Morning,
		Mood:       "Serious, Mysterious",
		Thaat:      "Todi",
	},
	{
		ID:         "miyan-ki-todi",
		Name:       "Miyan Ki Todi",
		NativeName: "राग मियां की तोड़ी",
		Aroha:      labels("Sa", "♭Re", "♭Ga", "Ma#", "Pa", "♭Dha", "Ni", "Sa"),
		Avaroha:    labels("Sa", "Ni", "♭Dha", "Pa", "Ma#", "♭Ga", "♭Re", "Sa"),
		Pakad:      labels("Ma#", "Pa", "♭Dha", "Pa", "Ma#", "♭Ga", "♭Re", "Sa"),
		Vadi:       "Ma#",
		Samvadi:    "Sa",
		Time:       Morning,
		Mood:       "Serious, Devotional",
		Thaat:      "Todi",
	},
}

var defaultCatalog = MustCatalog(builtin...)

// Default returns the compiled-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

func labels(ls ...swara.Label) []swara.Label {
	return ls
}
