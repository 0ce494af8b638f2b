package models

import "errors"

var (
	// ErrNoAnalysis means narration was started before any analysis arrived.
	ErrNoAnalysis = errors.New("no analysis result available")

	// ErrCaptionMissing means the analysis has no caption for the active language.
	ErrCaptionMissing = errors.New("no description available for language")

	// ErrPlayback means rendered-audio playback failed (resource, codec, player).
	ErrPlayback = errors.New("rendered audio playback failed")

	// ErrSynthesis means speech synthesis failed.
	ErrSynthesis = errors.New("speech synthesis failed")
)
