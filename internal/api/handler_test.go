package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/akangshyya/image-descriptor/internal/language"
	"github.com/akangshyya/image-descriptor/internal/models"
	"github.com/akangshyya/image-descriptor/internal/narrate"
)

type noopEngine struct{}

func (noopEngine) Play(ctx context.Context, unit models.PlaybackUnit) error { return ctx.Err() }
func (noopEngine) Stop()                                                    {}

func newTestHandler() *Handler {
	catalog := language.NewCatalog(nil)
	controller := narrate.NewController(catalog, noopEngine{}, time.Millisecond, true, zap.NewNop().Sugar())
	return NewHandler(controller, catalog, zap.NewNop().Sugar())
}

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestReceiveAnalysis(t *testing.T) {
	h := newTestHandler()
	router := h.Router()

	rec := postJSON(t, router, "/analysis", models.AnalysisResult{
		ID:           "a1",
		Captions:     map[string]models.Caption{"english": {Text: "a quiet street"}},
		HazardReport: "No objects detected.",
	})
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}

	status := httptest.NewRecorder()
	router.ServeHTTP(status, httptest.NewRequest(http.MethodGet, "/narration/status", nil))
	var snap narrate.Status
	if err := json.Unmarshal(status.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if !snap.HasAnalysis {
		t.Fatal("expected stored analysis to show in status")
	}
}

func TestReceiveAnalysisRejectsBadInput(t *testing.T) {
	h := newTestHandler()
	router := h.Router()

	req := httptest.NewRequest(http.MethodPost, "/analysis", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed JSON, got %d", rec.Code)
	}

	rec = postJSON(t, router, "/analysis", models.AnalysisResult{
		ID:       "a2",
		Captions: map[string]models.Caption{"french": {Text: "une rue"}},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unsupported language, got %d", rec.Code)
	}
}

func TestStartWithoutAnalysisConflicts(t *testing.T) {
	h := newTestHandler()
	rec := postJSON(t, h.Router(), "/narration/start", nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestStartStopRoundTrip(t *testing.T) {
	h := newTestHandler()
	router := h.Router()

	postJSON(t, router, "/analysis", models.AnalysisResult{
		ID:       "a3",
		Captions: map[string]models.Caption{"english": {Text: "a quiet street"}},
	})

	if rec := postJSON(t, router, "/narration/start", nil); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on start, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec := postJSON(t, router, "/narration/stop", nil); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on stop, got %d", rec.Code)
	}

	status := httptest.NewRecorder()
	router.ServeHTTP(status, httptest.NewRequest(http.MethodGet, "/narration/status", nil))
	var snap narrate.Status
	if err := json.Unmarshal(status.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if snap.Phase != narrate.PhaseIdle {
		t.Fatalf("expected idle after stop, got %s", snap.Phase)
	}
}

func TestAdvanceLanguage(t *testing.T) {
	h := newTestHandler()
	rec := postJSON(t, h.Router(), "/narration/language/advance", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Language models.Language `json:"language"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Language.ID != "hindi" {
		t.Fatalf("expected hindi, got %s", body.Language.ID)
	}
}

func TestTogglePreference(t *testing.T) {
	h := newTestHandler()
	rec := postJSON(t, h.Router(), "/narration/preference/toggle", nil)
	var body struct {
		PreferRendered bool `json:"preferRendered"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.PreferRendered {
		t.Fatal("expected preference to flip off")
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler()
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Status    string            `json:"status"`
		Languages []models.Language `json:"languages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "healthy" || len(body.Languages) != 6 {
		t.Fatalf("unexpected health payload: %+v", body)
	}
}
