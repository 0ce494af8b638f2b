package audio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"
)

// SpeechRequest carries one utterance to the synthesis backend.
type SpeechRequest struct {
	Text   string  `json:"text"`
	Voice  string  `json:"voice"`
	Rate   float64 `json:"rate"`
	Pitch  float64 `json:"pitch"`
	Volume float64 `json:"volume"`
}

// Synthesizer converts text to speech and plays it to completion.
type Synthesizer interface {
	Speak(ctx context.Context, req SpeechRequest) error
	Stop()
}

// HTTPSynthesizer fetches speech audio from a remote TTS endpoint and plays it
// through a local Player. The fetched clip lives in a scoped temp file that is
// removed after playback regardless of outcome.
type HTTPSynthesizer struct {
	url     string
	apiKey  string
	tempDir string
	player  Player
	client  *http.Client
	logger  *zap.SugaredLogger
}

// NewHTTPSynthesizer builds a synthesizer against the given TTS endpoint.
func NewHTTPSynthesizer(url, apiKey, tempDir string, player Player, logger *zap.SugaredLogger) *HTTPSynthesizer {
	return &HTTPSynthesizer{
		url:     url,
		apiKey:  apiKey,
		tempDir: tempDir,
		player:  player,
		client:  &http.Client{},
		logger:  logger,
	}
}

// Speak synthesizes the utterance and blocks until playback finishes.
func (s *HTTPSynthesizer) Speak(ctx context.Context, req SpeechRequest) error {
	if strings.TrimSpace(req.Text) == "" {
		return errors.New("empty text")
	}
	if s.url == "" {
		return errors.New("tts endpoint not configured")
	}

	audio, err := s.fetch(ctx, req)
	if err != nil {
		return err
	}

	path, err := writeClip(s.tempDir, req.Voice, audio)
	if err != nil {
		return err
	}
	defer os.Remove(path)

	s.logger.Infow("speaking synthesized clip", "voice", req.Voice, "bytes", len(audio))
	return s.player.Play(ctx, path)
}

// Stop silences any clip the synthesizer is currently playing.
func (s *HTTPSynthesizer) Stop() {
	s.player.Stop()
}

func (s *HTTPSynthesizer) fetch(ctx context.Context, req SpeechRequest) ([]byte, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		httpReq.Header.Set("Authorization", "Token "+s.apiKey)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("tts error: %s - %s", resp.Status, string(body))
	}

	return io.ReadAll(resp.Body)
}
