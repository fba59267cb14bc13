package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/forgo/users/api/internal/model"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteData writes a successful {data, timestamp} response
func WriteData(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, model.NewDataResponse(data, time.Now()))
}

// WriteError maps err to its status and writes the {error} body
func WriteError(w http.ResponseWriter, err error) {
	apiErr := MapError(err)
	WriteJSON(w, apiErr.Status, model.NewErrorResponse(apiErr.Code, apiErr.Message, time.Now()))
}

// DecodeJSON decodes a JSON request body into v. Any decoding problem is
// reported as invalid input.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return model.InvalidInput(fmt.Sprintf("Request body exceeds %d bytes", maxErr.Limit))
		}
		return model.InvalidInput("Invalid JSON body: " + err.Error())
	}
	return nil
}

// WriteNoContent writes a 204 No Content response
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
