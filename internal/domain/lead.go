package domain

import (
	"context"
	"fmt"
	"strconv"
)

// Lead represents one lead-capture form submission. It exists only for
// the duration of a request and is never persisted.
type Lead struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Username string `json:"username"`
	Company  string `json:"company,omitempty"`
	Message  string `json:"message"`
}

// LeadUsecase defines the interface for lead submission operations
type LeadUsecase interface {
	// Submit validates a lead and delivers the chat notification
	Submit(ctx context.Context, lead *Lead) error
}

// LeadFromPayload builds a Lead from an untrusted JSON object. Fields may
// be missing or carry non-string values; everything is coerced to text
// before validation, the way the form client stringified them.
func LeadFromPayload(payload map[string]any) Lead {
	return Lead{
		Name:     coerceString(payload["name"]),
		Phone:    coerceString(payload["phone"]),
		Username: coerceString(payload["username"]),
		Company:  coerceString(payload["company"]),
		Message:  coerceString(payload["message"]),
	}
}

func coerceString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
