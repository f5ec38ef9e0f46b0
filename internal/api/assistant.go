package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/govassist/ml-service/internal/latency"
	"github.com/govassist/ml-service/internal/metrics"
	"github.com/govassist/ml-service/internal/nlp"
	"github.com/rs/zerolog"
)

// AssistantHandler serves the keyword-model endpoints: chat intent and
// task duration prediction.
type AssistantHandler struct {
	model *nlp.Model
	delay time.Duration
	log   zerolog.Logger
}

// NewAssistantHandler creates the handler. delay is the simulated thinking
// time applied to chat queries.
func NewAssistantHandler(model *nlp.Model, delay time.Duration, log zerolog.Logger) *AssistantHandler {
	return &AssistantHandler{
		model: model,
		delay: delay,
		log:   log.With().Str("handler", "assistant").Logger(),
	}
}

// Routes registers the assistant endpoints.
func (h *AssistantHandler) Routes(r chi.Router) {
	r.Post("/assistant", h.Chat)
	r.Post("/predict-duration", h.PredictDuration)
}

type chatRequest struct {
	Query string `json:"query"`
}

type durationRequest struct {
	Description string `json:"description"`
}

// Chat handles POST /api/assistant.
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		WriteErrorDetail(w, http.StatusBadRequest, "invalid JSON body", err.Error())
		return
	}

	catalog, ok := h.catalog(w, r)
	if !ok {
		return
	}
	if err := latency.Simulate(r.Context(), h.delay); err != nil {
		h.log.Debug().Err(err).Msg("client went away while thinking")
		return
	}

	result := catalog.Classify(req.Query)
	metrics.IntentsTotal.WithLabelValues(result.Intent).Inc()
	h.log.Debug().Str("intent", result.Intent).Msg("classified query")
	WriteJSON(w, http.StatusOK, result)
}

// PredictDuration handles POST /api/predict-duration.
func (h *AssistantHandler) PredictDuration(w http.ResponseWriter, r *http.Request) {
	var req durationRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		WriteErrorDetail(w, http.StatusBadRequest, "invalid JSON body", err.Error())
		return
	}

	catalog, ok := h.catalog(w, r)
	if !ok {
		return
	}

	p := catalog.PredictDuration(req.Description)
	metrics.DurationPredictionsTotal.WithLabelValues(p.PredictedDuration).Inc()
	WriteJSON(w, http.StatusOK, p)
}

// catalog waits for the model and writes a 503 when it is unavailable.
func (h *AssistantHandler) catalog(w http.ResponseWriter, r *http.Request) (*nlp.Catalog, bool) {
	c, err := h.model.Load(r.Context())
	if err == nil {
		return c, true
	}
	if errors.Is(err, context.Canceled) {
		return nil, false
	}
	h.log.Error().Err(err).Str("model", h.model.Name()).Msg("model unavailable")
	WriteError(w, http.StatusServiceUnavailable, "model unavailable")
	return nil, false
}
