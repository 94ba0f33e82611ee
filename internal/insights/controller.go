package insights

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

type PostDTO struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Body      string    `json:"body"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
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

func (c *Controller) HandleListPublished(w http.ResponseWriter, r *http.Request) {
	posts, err := c.service.ListPublished(r.Context())
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toDTOs(posts))
}

func (c *Controller) HandleGetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := c.service.GetBySlug(r.Context(), slug)
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toDTO(*post))
}

func (c *Controller) HandleListAll(w http.ResponseWriter, r *http.Request) {
	posts, err := c.service.ListAll(r.Context(), auth.FromContext(r.Context()))
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toDTOs(posts))
}

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	req, ok := c.decodeSaveRequest(w, r)
	if !ok {
		return
	}

	post, err := c.service.Create(r.Context(), auth.FromContext(r.Context()), req)
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.writeJSON(w, http.StatusCreated, toDTO(*post))
}

func (c *Controller) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	req, ok := c.decodeSaveRequest(w, r)
	if !ok {
		return
	}

	post, err := c.service.Update(r.Context(), auth.FromContext(r.Context()), id, req)
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toDTO(*post))
}

func (c *Controller) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	if err := c.service.Delete(r.Context(), auth.FromContext(r.Context()), id); err != nil {
		c.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) decodeSaveRequest(w http.ResponseWriter, r *http.Request) (SavePostRequest, bool) {
	var req SavePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": "request body must be valid JSON",
		})
		return SavePostRequest{}, false
	}
	return req, true
}

func (c *Controller) parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "postId")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": "postId must be a positive integer",
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

	c.logger.Error("insights operation failed", zap.Error(err))
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

func toDTO(post domain.Post) PostDTO {
	return PostDTO{
		ID:        post.ID,
		Title:     post.Title,
		Slug:      post.Slug,
		Body:      post.Body,
		Published: post.Published,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func toDTOs(posts []domain.Post) []PostDTO {
	dtos := make([]PostDTO, 0, len(posts))
	for _, post := range posts {
		dtos = append(dtos, toDTO(post))
	}
	return dtos
}
