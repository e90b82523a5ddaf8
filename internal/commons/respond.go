package commons

import (
	"encoding/json"
	"net/http"

	"dishpatch/internal/dto"
	apperrors "dishpatch/internal/errors"

	"go.uber.org/zap"
)

func WriteJSON(logger *zap.Logger, w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// header already on the wire; log is all we can do
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func WriteData(logger *zap.Logger, w http.ResponseWriter, status int, payload interface{}) {
	WriteJSON(logger, w, status, dto.DataResponse{Data: payload})
}

func WriteError(logger *zap.Logger, w http.ResponseWriter, err error) {
	status := apperrors.Status(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		logger.Error("unexpected error", zap.Error(err))
		message = "an unexpected error occurred"
	}

	WriteJSON(logger, w, status, dto.ErrorResponse{Error: message})
}
