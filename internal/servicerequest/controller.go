package servicerequest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"themesjet/internal/auth"
	"themesjet/internal/domain"
	apperrors "themesjet/internal/errors"
)

type ServiceRequestDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Handled   bool      `json:"handled"`
	CreatedAt time.Time `json:"createdAt"`
}

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

func (c *Controller) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": "request body must be valid JSON",
		})
		return
	}

	request, err := c.service.Submit(r.Context(), req)
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.writeJSON(w, http.StatusCreated, toDTO(*request))
}

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	requests, err := c.service.List(r.Context(), auth.FromContext(r.Context()))
	if err != nil {
		c.writeError(w, err)
		return
	}

	dtos := make([]ServiceRequestDTO, 0, len(requests))
	for _, request := range requests {
		dtos = append(dtos, toDTO(request))
	}

	c.writeJSON(w, http.StatusOK, dtos)
}

func (c *Controller) HandleMarkHandled(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "requestId")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": "requestId must be a positive integer",
		})
		return
	}

	if err := c.service.MarkHandled(r.Context(), auth.FromContext(r.Context()), uint(id)); err != nil {
		c.writeError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]bool{"handled": true})
}

func (c *Controller) writeError(w http.ResponseWriter, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   "VALIDATION_ERROR",
			"message": ve.Message,
			"details": ve.Details,
		})
		return
	}

	if ue, ok := apperrors.IsUnauthorizedError(err); ok {
		c.writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":   "UNAUTHORIZED",
			"message": ue.Message,
		})
		return
	}

	if nf, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": nf.Message,
		})
		return
	}

	c.logger.Error("service request operation failed", zap.Error(err))
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

func toDTO(request domain.ServiceRequest) ServiceRequestDTO {
	return ServiceRequestDTO{
		ID:        request.ID,
		Name:      request.Name,
		Email:     request.Email,
		Subject:   request.Subject,
		Body:      request.Body,
		Handled:   request.Handled,
		CreatedAt: request.CreatedAt,
	}
}
