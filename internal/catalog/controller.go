package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"themesjet/internal/auth"
	"themesjet/internal/domain"
	apperrors "themesjet/internal/errors"
)

type Controller struct {
	service Service
	logger  *zap.Logger
}

func NewController(service Service, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleSearch(w http.ResponseWriter, r *http.Request) {
	filter := SearchFilter{
		Query:    r.URL.Query().Get("query"),
		Category: r.URL.Query().Get("category"),
		Tag:      r.URL.Query().Get("tag"),
	}

	products, err := c.service.Search(r.Context(), filter)
	if err != nil {
		c.writeError(w, err)
		return
	}

	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toDTO(p))
	}

	c.writeJSON(w, http.StatusOK, dtos)
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	product, err := c.service.Get(r.Context(), id)
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toDTO(*product))
}

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req SaveProductRequest
	if !c.decode(w, r, &req) {
		return
	}

	product, err := c.service.Create(r.Context(), auth.FromContext(r.Context()), req)
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.writeJSON(w, http.StatusCreated, toDTO(*product))
}

func (c *Controller) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	var req SaveProductRequest
	if !c.decode(w, r, &req) {
		return
	}

	product, err := c.service.Update(r.Context(), auth.FromContext(r.Context()), id, req)
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toDTO(*product))
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

func (c *Controller) parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "productId")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": "productId must be a positive integer",
		})
		return 0, false
	}
	return uint(id), true
}

func (c *Controller) decode(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": "request body must be valid JSON",
		})
		return false
	}
	return true
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

	c.logger.Error("catalog operation failed", zap.Error(err))
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

func toDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Tags:        p.Tags,
		FileURL:     p.FileURL,
		ImageURL:    p.ImageURL,
	}
}
