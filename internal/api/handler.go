package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/akangshyya/image-descriptor/internal/language"
	"github.com/akangshyya/image-descriptor/internal/models"
	"github.com/akangshyya/image-descriptor/internal/narrate"
	"github.com/akangshyya/image-descriptor/internal/validate"
)

// Handler exposes the narration command surface over HTTP.
type Handler struct {
	controller *narrate.Controller
	catalog    *language.Catalog
	logger     *zap.SugaredLogger
}

// NewHandler builds the HTTP handler around a controller.
func NewHandler(controller *narrate.Controller, catalog *language.Catalog, logger *zap.SugaredLogger) *Handler {
	return &Handler{controller: controller, catalog: catalog, logger: logger}
}

// Router builds the route table.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/analysis", h.ReceiveAnalysis).Methods(http.MethodPost)
	r.HandleFunc("/narration/start", h.StartNarration).Methods(http.MethodPost)
	r.HandleFunc("/narration/stop", h.StopNarration).Methods(http.MethodPost)
	r.HandleFunc("/narration/language/advance", h.AdvanceLanguage).Methods(http.MethodPost)
	r.HandleFunc("/narration/preference/toggle", h.TogglePreference).Methods(http.MethodPost)
	r.HandleFunc("/narration/status", h.NarrationStatus).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	return r
}

// ReceiveAnalysis ingests an analysis result from the upstream service.
func (h *Handler) ReceiveAnalysis(w http.ResponseWriter, r *http.Request) {
	var result models.AnalysisResult
	if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
		http.Error(w, "invalid JSON structure", http.StatusBadRequest)
		return
	}

	if err := validate.ValidateAnalysis(&result, h.catalog.Languages()); err != nil {
		h.logger.Warnw("rejected analysis payload", "id", result.ID, "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.controller.SetAnalysis(&result)
	writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"status": "accepted",
		"id":     result.ID,
	})
}

// StartNarration begins narrating the stored analysis.
func (h *Handler) StartNarration(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.Start(); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, models.ErrNoAnalysis) || errors.Is(err, models.ErrCaptionMissing) {
			status = http.StatusConflict
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, http.StatusOK, h.controller.Status())
}

// StopNarration cancels any narration in flight.
func (h *Handler) StopNarration(w http.ResponseWriter, r *http.Request) {
	h.controller.Stop()
	writeJSON(w, http.StatusOK, h.controller.Status())
}

// AdvanceLanguage cycles to the next narration language.
func (h *Handler) AdvanceLanguage(w http.ResponseWriter, r *http.Request) {
	lang := h.controller.AdvanceLanguage()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"language": lang,
	})
}

// TogglePreference flips the rendered-audio preference.
func (h *Handler) TogglePreference(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"preferRendered": h.controller.ToggleSourcePreference(),
	})
}

// NarrationStatus reports the controller snapshot.
func (h *Handler) NarrationStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.controller.Status())
}

// Health reports service liveness and the supported languages.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"languages": h.catalog.Languages(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
