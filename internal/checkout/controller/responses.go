package controller

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apperrors "themesjet/internal/errors"
)

type errorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		writeJSON(w, logger, http.StatusBadRequest, errorResponse{
			Error:   "VALIDATION_ERROR",
			Message: ve.Message,
			Details: ve.Details,
		})
		return
	}

	if ec, ok := apperrors.IsEmptyCartError(err); ok {
		writeJSON(w, logger, http.StatusBadRequest, errorResponse{
			Error:   "EMPTY_CART",
			Message: ec.Message,
		})
		return
	}

	if ue, ok := apperrors.IsUnauthorizedError(err); ok {
		writeJSON(w, logger, http.StatusUnauthorized, errorResponse{
			Error:   "UNAUTHORIZED",
			Message: ue.Message,
		})
		return
	}

	if nf, ok := apperrors.IsNotFoundError(err); ok {
		writeJSON(w, logger, http.StatusNotFound, errorResponse{
			Error:   "NOT_FOUND",
			Message: nf.Message,
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	writeJSON(w, logger, http.StatusInternalServerError, errorResponse{
		Error:   "INTERNAL_ERROR",
		Message: "an unexpected error occurred",
	})
}

func writeValidationError(w http.ResponseWriter, logger *zap.Logger, message string, details ...apperrors.ValidationDetail) {
	writeJSON(w, logger, http.StatusBadRequest, errorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}
