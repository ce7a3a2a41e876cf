package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/identifiers/internal/adapters/http/dto"
	"github.com/jsamuelsen11/identifiers/internal/domain"
)

// maxJSONBodyBytes caps any JSON request body. Per-text limits are enforced
// by the services.
const maxJSONBodyBytes = 16 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// decodeJSONBody decodes the request body into dst and writes a problem
// response on failure: 413 past maxJSONBodyBytes, 400 for anything else.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		dto.WriteErrorResponse(w, r, fmt.Errorf("request body exceeds %d bytes: %w", tooLarge.Limit, domain.ErrTooLarge))
		return false
	}
	dto.WriteErrorResponse(w, r, &domain.ValidationError{
		Fields: map[string]string{"body": "invalid JSON"},
	})
	return false
}

type validatable interface {
	Validate() error
}

// decodeAndValidate is decodeJSONBody followed by dst.Validate.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
