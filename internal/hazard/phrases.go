package hazard

import (
	"regexp"
	"sort"
)

// noHazardStatements holds the fixed per-language boilerplate spoken when the
// report contains no finding. Keyed by language id, english is the canonical form.
var noHazardStatements = map[string]string{
	"english":   "No hazardous objects detected.",
	"hindi":     "कोई खतरनाक वस्तु नहीं मिली।",
	"bengali":   "কোনো বিপজ্জনক বস্তু পাওয়া যায়নি।",
	"telugu":    "ప్రమాదకరమైన వస్తువులు కనుగొనబడలేదు.",
	"tamil":     "அபாயகரமான பொருட்கள் எதுவும் கண்டறியப்படவில்லை.",
	"malayalam": "അപകടകരമായ വസ്തുക്കളൊന്നും കണ്ടെത്തിയില്ല.",
}

// vocabulary maps canonical English detection phrases to their localized form,
// per language id. English is the identity translation and has no table.
// Coverage is deliberately partial: object classes, positions and distances the
// detector emits. Anything else passes through untranslated.
var vocabulary = map[string]map[string]string{
	"hindi": {
		"Safety alert":                            "सुरक्षा चेतावनी",
		"hazardous objects detected in the image": "छवि में खतरनाक वस्तुएं पाई गईं",
		"Knife":           "चाकू",
		"Scissors":        "कैंची",
		"Gun":             "बंदूक",
		"Fire":            "आग",
		"Glass":           "कांच",
		"very close":      "बहुत पास",
		"close":           "पास",
		"medium distance": "मध्यम दूरी",
		"far":             "दूर",
		"left":            "बाएं",
		"center":          "बीच में",
		"right":           "दाएं",
	},
	"bengali": {
		"Safety alert":                            "নিরাপত্তা সতর্কতা",
		"hazardous objects detected in the image": "ছবিতে বিপজ্জনক বস্তু শনাক্ত হয়েছে",
		"Knife":           "ছুরি",
		"Scissors":        "কাঁচি",
		"Gun":             "বন্দুক",
		"Fire":            "আগুন",
		"Glass":           "কাচ",
		"very close":      "খুব কাছে",
		"close":           "কাছে",
		"medium distance": "মাঝারি দূরত্ব",
		"far":             "দূরে",
		"left":            "বামে",
		"center":          "মাঝখানে",
		"right":           "ডানে",
	},
	"telugu": {
		"Safety alert":                            "భద్రతా హెచ్చరిక",
		"hazardous objects detected in the image": "చిత్రంలో ప్రమాదకరమైన వస్తువులు గుర్తించబడ్డాయి",
		"Knife":           "కత్తి",
		"Scissors":        "కత్తెర",
		"Gun":             "తుపాకీ",
		"Fire":            "మంట",
		"Glass":           "గాజు",
		"very close":      "చాలా దగ్గర",
		"close":           "దగ్గర",
		"medium distance": "మధ్యస్థ దూరం",
		"far":             "దూరం",
		"left":            "ఎడమ",
		"center":          "మధ్యలో",
		"right":           "కుడి",
	},
	"tamil": {
		"Safety alert":                            "பாதுகாப்பு எச்சரிக்கை",
		"hazardous objects detected in the image": "படத்தில் அபாயகரமான பொருட்கள் கண்டறியப்பட்டன",
		"Knife":           "கத்தி",
		"Scissors":        "கத்தரிக்கோல்",
		"Gun":             "துப்பாக்கி",
		"Fire":            "தீ",
		"Glass":           "கண்ணாடி",
		"very close":      "மிக அருகில்",
		"close":           "அருகில்",
		"medium distance": "நடுத்தர தூரம்",
		"far":             "தொலைவில்",
		"left":            "இடது",
		"center":          "நடுவில்",
		"right":           "வலது",
	},
	"malayalam": {
		"Safety alert":                            "സുരക്ഷാ മുന്നറിയിപ്പ്",
		"hazardous objects detected in the image": "ചിത്രത്തിൽ അപകടകരമായ വസ്തുക്കൾ കണ്ടെത്തി",
		"Knife":           "കത്തി",
		"Scissors":        "കത്രിക",
		"Gun":             "തോക്ക്",
		"Fire":            "തീ",
		"Glass":           "ഗ്ലാസ്",
		"very close":      "വളരെ അടുത്ത്",
		"close":           "അടുത്ത്",
		"medium distance": "ഇടത്തരം ദൂരം",
		"far":             "ദൂരെ",
		"left":            "ഇടത്",
		"center":          "നടുവിൽ",
		"right":           "വലത്",
	},
}

type phrase struct {
	re  *regexp.Regexp
	out string
}

// tables holds the compiled per-language substitution lists, longest phrase
// first so "very close" wins over "close".
var tables = compileTables()

func compileTables() map[string][]phrase {
	out := make(map[string][]phrase, len(vocabulary))
	for langID, entries := range vocabulary {
		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if len(keys[i]) != len(keys[j]) {
				return len(keys[i]) > len(keys[j])
			}
			return keys[i] < keys[j]
		})

		compiled := make([]phrase, 0, len(keys))
		for _, k := range keys {
			re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(k) + `\b`)
			compiled = append(compiled, phrase{re: re, out: entries[k]})
		}
		out[langID] = compiled
	}
	return out
}
