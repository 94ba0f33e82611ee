package admin

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"themesjet/internal/auth"
	apperrors "themesjet/internal/errors"
)

type Controller struct {
	service *Service
	logger  *zap.Logger
}

func NewController(service *Service, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleRevenueStats(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())

	stats, err := c.service.RevenueStats(r.Context(), identity)
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, stats)
}

func (c *Controller) HandleNotifications(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())

	notifications, err := c.service.Notifications(r.Context(), identity)
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, notifications)
}

func (c *Controller) writeError(w http.ResponseWriter, err error) {
	if ue, ok := apperrors.IsUnauthorizedError(err); ok {
		c.writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":   "UNAUTHORIZED",
			"message": ue.Message,
		})
		return
	}

	c.logger.Error("dashboard aggregation failed", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
