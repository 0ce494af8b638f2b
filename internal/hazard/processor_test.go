package hazard

import (
	"testing"

	"github.com/akangshyya/image-descriptor/internal/language"
	"github.com/akangshyya/image-descriptor/internal/models"
)

func lang(t *testing.T, id string) models.Language {
	t.Helper()
	l, ok := language.NewCatalog(nil).ByID(id)
	if !ok {
		t.Fatalf("unknown language %s", id)
	}
	return l
}

const detectionReport = "Detected 2 objects:\n1. Knife - 0.91 (close, left)\n2. Scissors - 0.77 (far, right)"

func TestNormalizeDetectionSummary(t *testing.T) {
	got := Normalize(detectionReport)
	want := "Safety alert: Knife close, left Scissors far, right"
	if got != want {
		t.Fatalf("normalize mismatch:\n got:  %q\n want: %q", got, want)
	}
}

func TestProcessTranslatesToHindi(t *testing.T) {
	got := Process(detectionReport, lang(t, "hindi"))
	want := "सुरक्षा चेतावनी: चाकू पास, बाएं कैंची दूर, दाएं"
	if got != want {
		t.Fatalf("hindi statement mismatch:\n got:  %q\n want: %q", got, want)
	}
}

func TestProcessEnglishIsIdentity(t *testing.T) {
	got := Process(detectionReport, lang(t, "english"))
	want := "Safety alert: Knife close, left Scissors far, right"
	if got != want {
		t.Fatalf("english statement mismatch:\n got:  %q\n want: %q", got, want)
	}
}

func TestProcessIsIdempotent(t *testing.T) {
	for _, id := range []string{"english", "hindi", "bengali", "telugu", "tamil", "malayalam"} {
		l := lang(t, id)
		once := Process(detectionReport, l)
		twice := Process(once, l)
		if once != twice {
			t.Fatalf("%s: re-processing changed output:\n once:  %q\n twice: %q", id, once, twice)
		}
	}
}

func TestProcessNoHazardReturnsBoilerplate(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"No objects detected.",
		"no objects detected.",
		"Detected 0 objects:",
	}
	for _, raw := range cases {
		if got := Process(raw, lang(t, "english")); got != "No hazardous objects detected." {
			t.Fatalf("raw %q: expected english boilerplate, got %q", raw, got)
		}
		if got := Process(raw, lang(t, "hindi")); got != noHazardStatements["hindi"] {
			t.Fatalf("raw %q: expected hindi boilerplate, got %q", raw, got)
		}
	}
}

func TestNormalizeEmptyReportFallsBack(t *testing.T) {
	// Numbering, confidence and parentheses only; nothing speakable remains.
	got := Normalize("1. - 0.91 ()")
	if got != FallbackAlert {
		t.Fatalf("expected fallback alert, got %q", got)
	}
}

func TestProcessFallbackIsTranslated(t *testing.T) {
	got := Process("1. - 0.91 ()", lang(t, "hindi"))
	want := "सुरक्षा चेतावनी: छवि में खतरनाक वस्तुएं पाई गईं"
	if got != want {
		t.Fatalf("translated fallback mismatch:\n got:  %q\n want: %q", got, want)
	}
}

func TestTranslateLeavesUnknownPhrasesAlone(t *testing.T) {
	got := Translate("Safety alert: Umbrella close, left", lang(t, "hindi"))
	want := "सुरक्षा चेतावनी: Umbrella पास, बाएं"
	if got != want {
		t.Fatalf("pass-through mismatch:\n got:  %q\n want: %q", got, want)
	}
}

func TestTranslatePrefersLongestPhrase(t *testing.T) {
	got := Translate("Knife very close", lang(t, "hindi"))
	want := "चाकू बहुत पास"
	if got != want {
		t.Fatalf("longest-match mismatch:\n got:  %q\n want: %q", got, want)
	}
}

func TestTranslateIsCaseInsensitive(t *testing.T) {
	got := Translate("KNIFE far RIGHT", lang(t, "hindi"))
	want := "चाकू दूर दाएं"
	if got != want {
		t.Fatalf("case-insensitive mismatch:\n got:  %q\n want: %q", got, want)
	}
}
