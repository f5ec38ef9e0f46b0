package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/govassist/ml-service/internal/analyze"
	"github.com/rs/zerolog"
)

type DocumentsHandler struct {
	log zerolog.Logger
}

func NewDocumentsHandler(log zerolog.Logger) *DocumentsHandler {
	return &DocumentsHandler{log: log.With().Str("handler", "documents").Logger()}
}

// Routes registers document endpoints.
func (h *DocumentsHandler) Routes(r chi.Router) {
	r.Post("/analyze-document", h.Analyze)
}

// Analyze handles POST /api/analyze-document.
func (h *DocumentsHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyze.Request
	if err := DecodeJSON(w, r, &req); err != nil {
		WriteErrorDetail(w, http.StatusBadRequest, "invalid JSON body", err.Error())
		return
	}
	h.log.Debug().Str("url", req.URL).Str("title", req.Title).Msg("analyzing document")
	WriteJSON(w, http.StatusOK, analyze.Analyze(req))
}
