package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/amandzaa/TiketQ-preVI/internal/domain"
)

const maxBodyBytes = 1 << 20

// TicketCollectionService is the minimal interface needed by the /tickets
// collection endpoints.
type TicketCollectionService interface {
	List(ctx context.Context, filter domain.TicketFilter) ([]domain.Ticket, error)
	Create(ctx context.Context, payload map[string]any) (domain.Ticket, error)
}

// HandleTickets returns an HTTP handler for listing and creating tickets.
func HandleTickets(svc TicketCollectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			filter := parseIsUsedFilter(r.URL.Query().Get("isUsed"))

			tickets, err := svc.List(r.Context(), filter)
			if err != nil {
				writeError(w, http.StatusInternalServerError, msgInternalError)
				return
			}

			resp := make([]ticketResponse, 0, len(tickets))
			for _, t := range tickets {
				resp = append(resp, toTicketResponse(t))
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(resp)
			return
		case http.MethodPost:
			payload, ok := decodePayload(w, r)
			if !ok {
				return
			}

			ticket, err := svc.Create(r.Context(), payload)
			if err != nil {
				var verr domain.ValidationError
				if errors.As(err, &verr) {
					writeValidationError(w, verr.Fields())
					return
				}
				writeError(w, http.StatusInternalServerError, msgInternalError)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(toTicketResponse(ticket))
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
	}
}

// parseIsUsedFilter maps the isUsed query value to a filter. Only the
// literal strings "true" and "false" (case-insensitively) engage the
// filter; anything else is ignored.
func parseIsUsedFilter(raw string) domain.TicketFilter {
	switch strings.ToLower(raw) {
	case "true":
		v := true
		return domain.TicketFilter{IsUsed: &v}
	case "false":
		v := false
		return domain.TicketFilter{IsUsed: &v}
	default:
		return domain.TicketFilter{}
	}
}

// decodePayload reads the request body into a raw map, writing the
// appropriate 400 and returning false on absent, empty, or malformed input.
func decodePayload(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	if r.Body == nil {
		writeError(w, http.StatusBadRequest, msgNoInput)
		return nil, false
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return nil, false
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		writeError(w, http.StatusBadRequest, msgNoInput)
		return nil, false
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return nil, false
	}
	if payload == nil {
		writeError(w, http.StatusBadRequest, msgNoInput)
		return nil, false
	}
	return payload, true
}

// decodeOptionalPayload is decodePayload for endpoints where an absent body
// means an empty payload (so field-level validation owns the error message)
// rather than a transport-level rejection.
func decodeOptionalPayload(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	if r.Body == nil {
		return map[string]any{}, true
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return nil, false
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return map[string]any{}, true
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return nil, false
	}
	if payload == nil {
		return map[string]any{}, true
	}
	return payload, true
}

type ticketResponse struct {
	ID        int64     `json:"id"`
	EventName string    `json:"eventName"`
	Location  string    `json:"location"`
	Time      time.Time `json:"time"`
	IsUsed    bool      `json:"isUsed"`
}

func toTicketResponse(t domain.Ticket) ticketResponse {
	return ticketResponse{
		ID:        t.ID,
		EventName: t.EventName,
		Location:  t.Location,
		Time:      t.Time,
		IsUsed:    t.IsUsed,
	}
}
