package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/govassist/ml-service/internal/metrics"
	"github.com/govassist/ml-service/internal/transcribe"
	"github.com/rs/zerolog"
)

// maxAudioBytes caps the whole upload body.
const maxAudioBytes = 32 << 20

// maxAudioMemory is how much of a multipart form is held in memory before
// parts spill to disk.
const maxAudioMemory = 8 << 20

// TranscribeHandler accepts audio uploads and hands them to a provider.
type TranscribeHandler struct {
	provider  transcribe.Provider
	maxUpload int64
	log       zerolog.Logger
}

func NewTranscribeHandler(provider transcribe.Provider, log zerolog.Logger) *TranscribeHandler {
	return &TranscribeHandler{
		provider:  provider,
		maxUpload: maxAudioBytes,
		log:       log.With().Str("handler", "transcribe").Logger(),
	}
}

// Routes registers the transcription endpoint.
func (h *TranscribeHandler) Routes(r chi.Router) {
	r.Post("/transcribe", h.Transcribe)
}

// Transcribe handles POST /api/transcribe.
// The "audio" multipart field is optional; requests without it are still
// transcribed. Bodies over the upload cap get 413.
func (h *TranscribeHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	audio, err := h.readAudio(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.log.Warn().Int64("limit", tooLarge.Limit).Msg("audio upload too large")
			WriteError(w, http.StatusRequestEntityTooLarge, "audio upload too large")
			return
		}
		h.log.Warn().Err(err).Msg("ignoring unreadable audio upload")
	}

	resp, err := h.provider.Transcribe(r.Context(), audio)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			metrics.TranscriptionsTotal.WithLabelValues(h.provider.Name(), "cancelled").Inc()
			return
		}
		metrics.TranscriptionsTotal.WithLabelValues(h.provider.Name(), "error").Inc()
		h.log.Error().Err(err).Str("provider", h.provider.Name()).Msg("transcription failed")
		WriteError(w, http.StatusInternalServerError, "transcription failed")
		return
	}

	metrics.TranscriptionsTotal.WithLabelValues(h.provider.Name(), "ok").Inc()
	WriteJSON(w, http.StatusOK, resp)
}

// readAudio returns the "audio" part if there is one. A missing part or a
// non-multipart body is not an error.
func (h *TranscribeHandler) readAudio(r *http.Request) (transcribe.Audio, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if !strings.HasPrefix(mediaType, "multipart/") {
		return transcribe.Audio{}, nil
	}
	if err := r.ParseMultipartForm(maxAudioMemory); err != nil {
		return transcribe.Audio{}, err
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("audio")
	if err != nil {
		return transcribe.Audio{}, nil
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return transcribe.Audio{}, fmt.Errorf("read %s: %w", header.Filename, err)
	}
	h.log.Debug().Str("filename", header.Filename).Int("bytes", len(data)).Msg("received audio")
	return transcribe.Audio{Filename: header.Filename, Data: data}, nil
}
