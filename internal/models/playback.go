package models

// Playback sources
const (
	SourceRendered    = "rendered"
	SourceSynthesized = "synthesized"
)

// PlaybackUnit is one utterance handed to the audio engine. Transient; built
// per playback and discarded afterwards. Audio is set only for rendered units.
type PlaybackUnit struct {
	Source   string
	Text     string
	VoiceTag string
	Audio    []byte
}
