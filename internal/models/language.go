package models

// Language is one narration language supported by the catalog.
// VoiceTag is the voice code handed to the speech synthesizer.
type Language struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	VoiceTag    string `json:"voiceTag"`
}
