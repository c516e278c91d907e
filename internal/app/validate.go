package app

import (
	"time"
	"unicode/utf8"

	"github.com/amandzaa/TiketQ-preVI/internal/domain"
)

const (
	minFieldLen = 1
	maxFieldLen = 200

	msgInvalidDatetime = "Invalid datetime format. Use ISO format (YYYY-MM-DDTHH:MM:SS)"
	msgTimeInFuture    = "Time must be in the future."
	msgMissingIsUsed   = "Missing isUsed field"
)

// isoLayout matches zone-less ISO-8601 input; zone-less values are
// interpreted as UTC.
const isoLayout = "2006-01-02T15:04:05"

// CreateTicketInput is a validated, normalized creation payload.
type CreateTicketInput struct {
	EventName string
	Location  string
	Time      time.Time
	IsUsed    bool
}

// ValidateCreate checks a raw creation payload against the ticket field
// contract, collecting every field error rather than stopping at the first.
// The future-time rule is evaluated against now once, here; a ticket's time
// lapsing into the past later never invalidates it.
func ValidateCreate(payload map[string]any, now time.Time) (CreateTicketInput, domain.ValidationError) {
	var in CreateTicketInput
	var errs domain.ValidationError

	in.EventName, errs = validateText(payload, "eventName", errs)
	in.Location, errs = validateText(payload, "location", errs)

	if raw, ok := payload["time"]; !ok {
		errs = append(errs, domain.FieldError{Field: "time", Message: "Missing required field: time"})
	} else if t, ok := parseTime(raw); !ok {
		errs = append(errs, domain.FieldError{Field: "time", Message: msgInvalidDatetime})
	} else if !t.After(now) {
		errs = append(errs, domain.FieldError{Field: "time", Message: msgTimeInFuture})
	} else {
		in.Time = t
	}

	if raw, ok := payload["isUsed"]; ok {
		in.IsUsed = coerceBool(raw)
	}

	if len(errs) > 0 {
		return CreateTicketInput{}, errs
	}
	return in, nil
}

// ValidateUpdate extracts isUsed from an update payload. Only isUsed is
// read; any other fields are ignored, not merged.
func ValidateUpdate(payload map[string]any) (bool, domain.ValidationError) {
	raw, ok := payload["isUsed"]
	if !ok {
		return false, domain.ValidationError{{Field: "isUsed", Message: msgMissingIsUsed}}
	}
	return coerceBool(raw), nil
}

func validateText(payload map[string]any, field string, errs domain.ValidationError) (string, domain.ValidationError) {
	raw, ok := payload[field]
	if !ok {
		return "", append(errs, domain.FieldError{Field: field, Message: "Missing required field: " + field})
	}
	s, ok := raw.(string)
	if !ok || utf8.RuneCountInString(s) < minFieldLen || utf8.RuneCountInString(s) > maxFieldLen {
		return "", append(errs, domain.FieldError{Field: field, Message: field + " must be between 1 and 200 characters"})
	}
	return s, errs
}

func parseTime(raw any) (time.Time, bool) {
	s, ok := raw.(string)
	if !ok {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(isoLayout, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// coerceBool applies JSON truthiness to non-boolean values, matching the
// API's historical acceptance of any JSON type for isUsed.
func coerceBool(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	case nil:
		return false
	default:
		// Arrays and objects decode as non-nil composites.
		return true
	}
}
