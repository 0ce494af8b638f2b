package models

// Caption is the per-language scene description produced by the analysis
// service. RenderedAudio carries the pre-rendered speech clip when the service
// generated one, nil otherwise. Serialized as base64 on the wire.
type Caption struct {
	Text          string `json:"text"`
	RenderedAudio []byte `json:"renderedAudio,omitempty"`
}

// AnalysisResult is one processed image as delivered by the analysis backend:
// a caption per language plus the raw hazard detection summary.
type AnalysisResult struct {
	ID           string             `json:"id"`
	Captions     map[string]Caption `json:"captions"`
	HazardReport string             `json:"hazardReport,omitempty"`
}

// CaptionFor returns the caption for a language id, if the analysis has one.
func (a *AnalysisResult) CaptionFor(langID string) (Caption, bool) {
	c, ok := a.Captions[langID]
	return c, ok
}
