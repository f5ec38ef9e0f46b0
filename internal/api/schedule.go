package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/govassist/ml-service/internal/metrics"
	"github.com/govassist/ml-service/internal/schedule"
	"github.com/rs/zerolog"
)

type ScheduleHandler struct {
	log zerolog.Logger
}

func NewScheduleHandler(log zerolog.Logger) *ScheduleHandler {
	return &ScheduleHandler{log: log.With().Str("handler", "schedule").Logger()}
}

// Routes registers scheduling endpoints.
func (h *ScheduleHandler) Routes(r chi.Router) {
	r.Post("/schedule-assistant", h.Suggest)
}

type scheduleRequest struct {
	Meetings json.RawMessage `json:"meetings"`
}

type scheduleResponse struct {
	Suggestions []schedule.Suggestion `json:"suggestions"`
}

// Suggest handles POST /api/schedule-assistant.
// Malformed meetings are skipped, never rejected.
func (h *ScheduleHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		WriteErrorDetail(w, http.StatusBadRequest, "invalid JSON body", err.Error())
		return
	}

	busy, failed := schedule.BusyHours(decodeMeetings(req.Meetings))
	for _, f := range failed {
		metrics.MeetingParseFailuresTotal.Inc()
		h.log.Debug().Err(f.Err).Int("index", f.Index).Msg("skipping meeting with unparseable time")
	}

	suggestions := schedule.SuggestFree(busy)
	for _, s := range suggestions {
		metrics.SuggestionsTotal.WithLabelValues(s.Date).Inc()
	}
	WriteJSON(w, http.StatusOK, scheduleResponse{Suggestions: suggestions})
}

// decodeMeetings keeps whatever entries it can read. Entries that are not
// objects, and time values that are not strings, become meetings without
// a time.
func decodeMeetings(raw json.RawMessage) []schedule.Meeting {
	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return nil
	}
	meetings := make([]schedule.Meeting, 0, len(items))
	for _, item := range items {
		var fields map[string]json.RawMessage
		if json.Unmarshal(item, &fields) != nil {
			meetings = append(meetings, schedule.Meeting{})
			continue
		}
		var m schedule.Meeting
		if t, ok := fields["time"]; ok {
			if json.Unmarshal(t, &m.Time) != nil {
				m.Time = "" // non-string time counts as missing
			}
		}
		meetings = append(meetings, m)
	}
	return meetings
}
