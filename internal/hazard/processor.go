package hazard

import (
	"regexp"
	"strings"

	"github.com/akangshyya/image-descriptor/internal/models"
)

const (
	// NoObjectsSentinel is what the detector reports when nothing was found.
	NoObjectsSentinel = "No objects detected."

	// FallbackAlert is spoken when a positive report normalizes to nothing.
	FallbackAlert = "Safety alert: hazardous objects detected in the image"
)

var (
	headerRe     = regexp.MustCompile(`(?i)^\s*Detected\s+(\d+)\s+objects?:?\s*`)
	numberingRe  = regexp.MustCompile(`(?m)^\s*\d+\.\s*`)
	confidenceRe = regexp.MustCompile(`\s*-\s*\d+(?:\.\d+)?`)
	parensRe     = regexp.MustCompile(`\(([^)]*)\)`)
	spaceRe      = regexp.MustCompile(`\s+`)
)

// Process derives the speakable safety statement for a raw hazard report in
// the given language. Pure and synchronous; never fails. An empty report, the
// detector's no-objects sentinel or a zero-count header all yield the fixed
// per-language "no hazardous objects" boilerplate.
func Process(raw string, lang models.Language) string {
	if isNoHazard(raw) {
		return NoHazardStatement(lang)
	}
	return Translate(Normalize(raw), lang)
}

// NoHazardStatement returns the fixed "no hazardous objects" boilerplate for a
// language, falling back to the English form for unmapped languages.
func NoHazardStatement(lang models.Language) string {
	if s, ok := noHazardStatements[lang.ID]; ok {
		return s
	}
	return noHazardStatements["english"]
}

// Normalize turns a raw detection summary into one speakable sentence: the
// enumeration header becomes "Safety alert:", per-item numbering and
// confidence scores are dropped, parenthetical qualifiers are unwrapped and
// whitespace is collapsed. A report that cleans down to nothing yields
// FallbackAlert.
func Normalize(raw string) string {
	text := strings.TrimSpace(raw)

	hadHeader := headerRe.MatchString(text)
	text = headerRe.ReplaceAllString(text, "")
	text = numberingRe.ReplaceAllString(text, "")
	text = confidenceRe.ReplaceAllString(text, "")
	text = parensRe.ReplaceAllString(text, "$1")
	text = spaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	if text == "" {
		return FallbackAlert
	}
	if hadHeader {
		text = "Safety alert: " + text
	}
	return text
}

// Translate substitutes every canonical English phrase the language's table
// covers, case-insensitive and whole-phrase. Fragments absent from the table
// pass through untouched; English (or any unmapped language) is the identity.
func Translate(text string, lang models.Language) string {
	table, ok := tables[lang.ID]
	if !ok {
		return text
	}
	for _, p := range table {
		text = p.re.ReplaceAllString(text, p.out)
	}
	return text
}

func isNoHazard(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, NoObjectsSentinel) {
		return true
	}
	if m := headerRe.FindStringSubmatch(trimmed); m != nil && m[1] == "0" {
		return true
	}
	return false
}
