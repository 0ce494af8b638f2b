package narrate

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akangshyya/image-descriptor/internal/audio"
	"github.com/akangshyya/image-descriptor/internal/hazard"
	"github.com/akangshyya/image-descriptor/internal/language"
	"github.com/akangshyya/image-descriptor/internal/models"
)

// Phase is one discrete state of the narration session.
type Phase string

const (
	PhaseIdle               Phase = "idle"
	PhasePlayingDescription Phase = "playing_description"
	PhaseIntermission       Phase = "intermission"
	PhasePlayingSafety      Phase = "playing_safety"
)

// DefaultIntermission keeps the description and safety segments acoustically
// distinct.
const DefaultIntermission = 500 * time.Millisecond

// Controller owns the narration session lifecycle: it sequences description
// and safety playback, applies the rendered-vs-synthesis fallback policy and
// reacts to user commands. It is the sole owner of the audio engine; at most
// one session is live at a time.
type Controller struct {
	catalog      *language.Catalog
	engine       audio.Engine
	logger       *zap.SugaredLogger
	intermission time.Duration

	// cmdMu serializes Start/Stop so a new session can never spawn while the
	// previous one's teardown is still in flight.
	cmdMu sync.Mutex

	mu             sync.Mutex
	phase          Phase
	preferRendered bool
	analysis       *models.AnalysisResult
	active         *session
	lastNotice     *models.Notice
}

// session is the live state of one narration cycle. done closes once the
// session goroutine has finished teardown.
type session struct {
	id     string
	lang   models.Language
	cancel context.CancelFunc
	done   chan struct{}
}

// NewController builds an idle controller.
func NewController(catalog *language.Catalog, engine audio.Engine, intermission time.Duration, preferRendered bool, logger *zap.SugaredLogger) *Controller {
	if intermission <= 0 {
		intermission = DefaultIntermission
	}
	return &Controller{
		catalog:        catalog,
		engine:         engine,
		logger:         logger,
		intermission:   intermission,
		phase:          PhaseIdle,
		preferRendered: preferRendered,
	}
}

// Start begins narrating the stored analysis in the active language. Any live
// session is torn down first; the new one only spawns after teardown finished.
// With no analysis, or no caption for the language, nothing plays and the user
// is informed.
func (c *Controller) Start() error {
	c.cmdMu.Lock()
	defer c.cmdMu.Unlock()
	c.stopActive()

	c.mu.Lock()
	analysis := c.analysis
	prefer := c.preferRendered
	c.mu.Unlock()

	if analysis == nil {
		c.notify(models.NoticeWarning, "no analysis result to narrate yet")
		return models.ErrNoAnalysis
	}

	lang := c.catalog.Current()
	caption, ok := analysis.CaptionFor(lang.ID)
	if !ok || strings.TrimSpace(caption.Text) == "" {
		c.notify(models.NoticeWarning, fmt.Sprintf("no description available for %s", lang.DisplayName))
		return fmt.Errorf("%w: %s", models.ErrCaptionMissing, lang.ID)
	}

	ctx, cancel := context.WithCancel(context.Background())
	sess := &session{
		id:     uuid.NewString(),
		lang:   lang,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	c.mu.Lock()
	c.active = sess
	c.phase = PhasePlayingDescription
	c.mu.Unlock()

	c.logger.Infow("narration started", "session", sess.id, "language", lang.ID)
	go c.run(ctx, sess, analysis, caption, prefer)
	return nil
}

// Stop cancels the live session, silences the engine and waits for teardown.
// Idempotent when idle.
func (c *Controller) Stop() {
	c.cmdMu.Lock()
	defer c.cmdMu.Unlock()
	c.stopActive()
}

// SetAnalysis replaces the narrated analysis. A live session restarts with the
// new result; when idle the result is held until narration is started.
func (c *Controller) SetAnalysis(a *models.AnalysisResult) {
	c.mu.Lock()
	wasActive := c.active != nil
	c.analysis = a
	c.mu.Unlock()

	c.logger.Infow("analysis received", "id", a.ID, "captions", len(a.Captions))
	if wasActive {
		if err := c.Start(); err != nil {
			c.logger.Warnw("restart after new analysis failed", "error", err)
		}
	}
}

// AdvanceLanguage cycles to the next language. A live session restarts under
// the new language; when idle only the selection moves.
func (c *Controller) AdvanceLanguage() models.Language {
	c.mu.Lock()
	wasActive := c.active != nil
	c.mu.Unlock()

	lang := c.catalog.Advance()
	c.logger.Infow("language advanced", "language", lang.ID)

	if wasActive {
		if err := c.Start(); err != nil {
			c.logger.Warnw("restart after language change failed", "error", err)
		}
	}
	return lang
}

// ToggleSourcePreference flips the rendered-audio preference. It only affects
// the next session; an in-flight one is never interrupted.
func (c *Controller) ToggleSourcePreference() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.preferRendered = !c.preferRendered
	return c.preferRendered
}

// Status is a snapshot of the controller state.
type Status struct {
	Phase          Phase           `json:"phase"`
	Language       models.Language `json:"language"`
	PreferRendered bool            `json:"preferRendered"`
	HasAnalysis    bool            `json:"hasAnalysis"`
	LastNotice     *models.Notice  `json:"lastNotice,omitempty"`
}

// Status reports the current phase, language, preference and last notice.
// With a session live, the language is the session's snapshot, not the
// catalog's, which may already have moved during a restart.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	lang := c.catalog.Current()
	if c.active != nil {
		lang = c.active.lang
	}
	return Status{
		Phase:          c.phase,
		Language:       lang,
		PreferRendered: c.preferRendered,
		HasAnalysis:    c.analysis != nil,
		LastNotice:     c.lastNotice,
	}
}

// run drives one narration cycle: description, intermission, safety. It always
// settles the controller back to Idle and closes done on exit.
func (c *Controller) run(ctx context.Context, sess *session, analysis *models.AnalysisResult, caption models.Caption, preferRendered bool) {
	defer func() {
		c.mu.Lock()
		if c.active == sess {
			c.active = nil
			c.phase = PhaseIdle
		}
		c.mu.Unlock()
		close(sess.done)
	}()

	c.playWithFallback(ctx, descriptionUnit(caption, sess.lang, preferRendered))
	if ctx.Err() != nil {
		return
	}

	c.setPhase(sess, PhaseIntermission)
	timer := time.NewTimer(c.intermission)
	select {
	case <-ctx.Done():
		timer.Stop()
		return
	case <-timer.C:
	}

	c.setPhase(sess, PhasePlayingSafety)
	statement := hazard.Process(analysis.HazardReport, sess.lang)
	c.playWithFallback(ctx, models.PlaybackUnit{
		Source:   models.SourceSynthesized,
		Text:     statement,
		VoiceTag: sess.lang.VoiceTag,
	})
	if ctx.Err() == nil {
		c.logger.Infow("narration finished", "session", sess.id)
	}
}

// playWithFallback plays one unit to completion. A failed rendered clip is
// retried via synthesis exactly once; a second failure (or a synthesis-first
// failure) skips the unit and surfaces a notice. Cancellation is silent.
func (c *Controller) playWithFallback(ctx context.Context, unit models.PlaybackUnit) {
	err := c.engine.Play(ctx, unit)
	if err == nil || ctx.Err() != nil {
		return
	}

	if unit.Source == models.SourceRendered {
		c.logger.Warnw("rendered audio failed, retrying via synthesis", "error", err)
		retry := models.PlaybackUnit{
			Source:   models.SourceSynthesized,
			Text:     unit.Text,
			VoiceTag: unit.VoiceTag,
		}
		if retryErr := c.engine.Play(ctx, retry); retryErr != nil && ctx.Err() == nil {
			c.logger.Errorw("synthesis fallback failed", "error", retryErr)
			c.notify(models.NoticeWarning, "audio playback unavailable, segment skipped")
		}
		return
	}

	c.logger.Errorw("speech synthesis failed", "error", err)
	c.notify(models.NoticeWarning, "speech synthesis failed, segment skipped")
}

// descriptionUnit picks the audio source for the description segment.
func descriptionUnit(caption models.Caption, lang models.Language, preferRendered bool) models.PlaybackUnit {
	if preferRendered && len(caption.RenderedAudio) > 0 {
		return models.PlaybackUnit{
			Source:   models.SourceRendered,
			Text:     caption.Text,
			VoiceTag: lang.VoiceTag,
			Audio:    caption.RenderedAudio,
		}
	}
	return models.PlaybackUnit{
		Source:   models.SourceSynthesized,
		Text:     caption.Text,
		VoiceTag: lang.VoiceTag,
	}
}

// stopActive cancels the live session and blocks until its teardown completed.
func (c *Controller) stopActive() {
	c.mu.Lock()
	sess := c.active
	c.mu.Unlock()
	if sess == nil {
		return
	}

	sess.cancel()
	c.engine.Stop()
	<-sess.done
	c.logger.Infow("narration stopped", "session", sess.id)
}

func (c *Controller) setPhase(sess *session, phase Phase) {
	c.mu.Lock()
	if c.active == sess {
		c.phase = phase
	}
	c.mu.Unlock()
}

func (c *Controller) notify(level, message string) {
	c.mu.Lock()
	c.lastNotice = &models.Notice{Level: level, Message: message}
	c.mu.Unlock()

	if level == models.NoticeWarning {
		c.logger.Warnw(message)
	} else {
		c.logger.Infow(message)
	}
}
