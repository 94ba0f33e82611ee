package review

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

type ReviewDTO struct {
	ID        uint      `json:"id"`
	ProductID uint      `json:"productId"`
	UserID    uint      `json:"userId"`
	Rating    int       `json:"rating"`
	Body      string    `json:"body"`
	Approved  bool      `json:"approved"`
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

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	productID, ok := c.parseID(w, r, "productId")
	if !ok {
		return
	}

	var req CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": "request body must be valid JSON",
		})
		return
	}

	review, err := c.service.Create(r.Context(), auth.FromContext(r.Context()), productID, req)
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.writeJSON(w, http.StatusCreated, toDTO(*review))
}

func (c *Controller) HandleListApproved(w http.ResponseWriter, r *http.Request) {
	productID, ok := c.parseID(w, r, "productId")
	if !ok {
		return
	}

	reviews, err := c.service.ListApproved(r.Context(), productID)
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toDTOs(reviews))
}

func (c *Controller) HandleListAll(w http.ResponseWriter, r *http.Request) {
	reviews, err := c.service.ListAll(r.Context(), auth.FromContext(r.Context()))
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toDTOs(reviews))
}

func (c *Controller) HandleApprove(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r, "reviewId")
	if !ok {
		return
	}

	if err := c.service.Approve(r.Context(), auth.FromContext(r.Context()), id); err != nil {
		c.writeError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]bool{"approved": true})
}

func (c *Controller) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r, "reviewId")
	if !ok {
		return
	}

	if err := c.service.Delete(r.Context(), auth.FromContext(r.Context()), id); err != nil {
		c.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) parseID(w http.ResponseWriter, r *http.Request, param string) (uint, bool) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": param + " must be a positive integer",
		})
		return 0, false
	}
	return uint(id), true
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

	c.logger.Error("review operation failed", zap.Error(err))
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

func toDTO(review domain.Review) ReviewDTO {
	return ReviewDTO{
		ID:        review.ID,
		ProductID: review.ProductID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Body:      review.Body,
		Approved:  review.Approved,
		CreatedAt: review.CreatedAt,
	}
}

func toDTOs(reviews []domain.Review) []ReviewDTO {
	dtos := make([]ReviewDTO, 0, len(reviews))
	for _, review := range reviews {
		dtos = append(dtos, toDTO(review))
	}
	return dtos
}
