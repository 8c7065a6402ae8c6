package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/osse101/SlotReveal_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// A body that is not JSON gets ErrMsgInvalidRequest; a field of the wrong type
// or a failed validation tag gets invalidMsg with per-field details.
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, invalidMsg string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			log.Warn(LogMsgValidationFailed, "field", typeErr.Field, "value", typeErr.Value)
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  invalidMsg,
				Fields: map[string]string{typeErr.Field: ValidationMsgNumber},
			})
			return err
		}

		log.Warn(LogMsgDecodeFailed, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		fields := FormatValidationError(err)
		log.Warn(LogMsgValidationFailed, "fields", fields)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  invalidMsg,
			Fields: fields,
		})
		return err
	}

	return nil
}
