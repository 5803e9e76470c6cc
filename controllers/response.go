package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dcode-github/estate-envision/models"
	"github.com/dcode-github/estate-envision/services"
)

const maxBodyBytes = 1 << 20

var errInvalidPayload = errors.New("invalid request payload")

func writeJSON(w http.ResponseWriter, status int, resp models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, models.APIResponse{Success: true, Message: message, Data: data})
}

// writeError answers with the status matching the error kind. Only the
// user-facing message is sent; the cause was logged by the service.
func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, errInvalidPayload) {
		writeJSON(w, http.StatusBadRequest, models.APIResponse{Message: "Invalid request payload"})
		return
	}
	writeJSON(w, statusFor(services.KindOf(err)), models.APIResponse{Message: services.MessageOf(err)})
}

func statusFor(kind services.Kind) int {
	switch kind {
	case services.KindValidation:
		return http.StatusBadRequest
	case services.KindUnauthenticated:
		return http.StatusUnauthorized
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindConflict:
		return http.StatusConflict
	case services.KindRateLimited:
		return http.StatusTooManyRequests
	case services.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		return errInvalidPayload
	}
	return nil
}
