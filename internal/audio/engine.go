package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akangshyya/image-descriptor/internal/models"
)

// Engine plays a single PlaybackUnit to completion.
type Engine interface {
	Play(ctx context.Context, unit models.PlaybackUnit) error
	Stop()
}

// PlaybackEngine plays rendered clips through a Player and synthesized speech
// through a Synthesizer. Exactly one unit is active at a time; the narration
// controller serializes Play calls. The engine carries no fallback logic.
type PlaybackEngine struct {
	tempDir     string
	player      Player
	synthesizer Synthesizer
	logger      *zap.SugaredLogger
}

// NewPlaybackEngine wires the two playback strategies together.
func NewPlaybackEngine(tempDir string, player Player, synth Synthesizer, logger *zap.SugaredLogger) *PlaybackEngine {
	return &PlaybackEngine{
		tempDir:     tempDir,
		player:      player,
		synthesizer: synth,
		logger:      logger,
	}
}

// Play dispatches the unit to its strategy and blocks until audio finishes.
// Failures are wrapped as ErrPlayback (rendered) or ErrSynthesis (synthesis);
// cancellation passes through unwrapped.
func (e *PlaybackEngine) Play(ctx context.Context, unit models.PlaybackUnit) error {
	switch unit.Source {
	case models.SourceRendered:
		return e.playRendered(ctx, unit)
	case models.SourceSynthesized:
		req := SpeechRequest{
			Text:   unit.Text,
			Voice:  unit.VoiceTag,
			Rate:   1.0,
			Pitch:  1.0,
			Volume: 1.0,
		}
		if err := e.synthesizer.Speak(ctx, req); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			return fmt.Errorf("%w: %v", models.ErrSynthesis, err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported playback source: %s", unit.Source)
	}
}

// playRendered materializes the blob to a scoped temp file and plays it. The
// file is removed on every path: success, failure or cancellation.
func (e *PlaybackEngine) playRendered(ctx context.Context, unit models.PlaybackUnit) error {
	if len(unit.Audio) == 0 {
		return fmt.Errorf("%w: empty rendered audio", models.ErrPlayback)
	}

	path, err := writeClip(e.tempDir, unit.VoiceTag, unit.Audio)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrPlayback, err)
	}
	defer os.Remove(path)

	e.logger.Infow("playing rendered clip", "voice", unit.VoiceTag, "bytes", len(unit.Audio))
	if err := e.player.Play(ctx, path); err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", models.ErrPlayback, err)
	}
	return nil
}

// Stop silences both strategies; safe to call with nothing playing.
func (e *PlaybackEngine) Stop() {
	e.player.Stop()
	e.synthesizer.Stop()
}

// writeClip materializes audio bytes to a temp clip file and returns its path.
func writeClip(dir, voice string, audio []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create audio dir: %v", err)
	}
	name := fmt.Sprintf("%s_%s.mp3", voice, uuid.NewString()[:8])
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, audio, 0644); err != nil {
		return "", fmt.Errorf("failed to write audio clip: %v", err)
	}
	return path, nil
}
