// Package handler holds response helpers shared by the HTTP handlers.
package handler

import (
	"encoding/json"
	"net/http"

	"bewear/internal/domain"
	"bewear/internal/middleware"
)

// RespondJSON writes v as a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// RespondError maps a domain error to an HTTP response. Validation
// errors carry the field map; other coded errors carry code and message.
// Internal errors are logged with the underlying cause and answered with
// a generic message.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	if domain.IsValidationError(err) {
		RespondJSON(w, http.StatusBadRequest, map[string]any{
			"error": map[string]any{
				"code":   domain.EINVALID,
				"fields": domain.GetValidationFields(err),
			},
		})
		return
	}

	code := domain.ErrorCode(err)
	status := statusForCode(code)

	if status >= 500 {
		middleware.GetLogger(r.Context()).Error("request failed",
			"error", err.Error(),
			"code", code,
			"path", r.URL.Path,
		)
	}

	RespondJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": domain.ErrorMessage(err),
		},
	})
}

func statusForCode(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	case domain.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON decodes the request body into dst. Malformed bodies come
// back as an EINVALID domain error ready for RespondError.
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.Invalid("", "Corpo da requisição inválido")
	}
	return nil
}
