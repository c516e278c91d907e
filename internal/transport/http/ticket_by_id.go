package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/amandzaa/TiketQ-preVI/internal/domain"
)

// TicketItemService is the minimal interface needed by the /tickets/{id}
// endpoints.
type TicketItemService interface {
	Get(ctx context.Context, id int64) (domain.Ticket, error)
	SetUsed(ctx context.Context, id int64, payload map[string]any) (domain.Ticket, error)
	Delete(ctx context.Context, id int64) error
}

// HandleTicketByID returns an HTTP handler for get/update/delete on a
// single ticket.
func HandleTicketByID(svc TicketItemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseTicketPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, "not found")
			return
		}

		switch r.Method {
		case http.MethodGet:
			ticket, err := svc.Get(r.Context(), id)
			if err != nil {
				writeTicketError(w, id, err)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(toTicketResponse(ticket))
			return
		case http.MethodPatch:
			payload, ok := decodeOptionalPayload(w, r)
			if !ok {
				return
			}

			ticket, err := svc.SetUsed(r.Context(), id, payload)
			if err != nil {
				var verr domain.ValidationError
				if errors.As(err, &verr) {
					writeError(w, http.StatusBadRequest, verr[0].Message)
					return
				}
				writeTicketError(w, id, err)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(toTicketResponse(ticket))
			return
		case http.MethodDelete:
			if err := svc.Delete(r.Context(), id); err != nil {
				writeTicketError(w, id, err)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"message": "Ticket " + strconv.FormatInt(id, 10) + " deleted",
			})
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
	}
}

// parseTicketPath extracts the integer id from /tickets/{id}. Non-integer
// ids fall through to the 404 envelope, matching the routing contract.
func parseTicketPath(path string) (int64, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 || parts[0] != "tickets" {
		return 0, false
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

func writeTicketError(w http.ResponseWriter, id int64, err error) {
	if errors.Is(err, domain.ErrTicketNotFound) {
		writeError(w, http.StatusNotFound, "Ticket with id "+strconv.FormatInt(id, 10)+" not found")
		return
	}
	writeError(w, http.StatusInternalServerError, msgInternalError)
}
