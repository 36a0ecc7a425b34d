package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"cheongyak-calculator/logger"
	"cheongyak-calculator/service"
)

type errorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written 200 behind.
func writeJSON(w http.ResponseWriter, log logger.Logger, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.WithError(err).Error("encode response failed", nil)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.WithError(err).Warn("write response failed", nil)
	}
}

func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	if ve, ok := service.AsValidationError(err); ok {
		writeJSON(w, log, http.StatusBadRequest, errorResponse{
			Code:    string(ve.Code),
			Message: ve.Message,
			Fields:  ve.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrShareUnavailable):
		writeJSON(w, log, http.StatusServiceUnavailable, errorResponse{
			Code:    "SHARE_UNAVAILABLE",
			Message: service.MessageShareUnavailable,
		})
	case errors.Is(err, service.ErrPostNotFound):
		writeJSON(w, log, http.StatusNotFound, errorResponse{
			Code:    "POST_NOT_FOUND",
			Message: "post not found",
		})
	default:
		log.WithError(err).Error("request failed", nil)
		writeJSON(w, log, http.StatusInternalServerError, errorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		})
	}
}

func writeStatus(w http.ResponseWriter, log logger.Logger, status int, code, message string) {
	writeJSON(w, log, status, errorResponse{Code: code, Message: message})
}
