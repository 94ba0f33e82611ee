package catalog

import (
	"context"
	"strings"

	"themesjet/internal/auth"
	"themesjet/internal/domain"
	apperrors "themesjet/internal/errors"
)

type productService struct {
	repo       Repository
	authorizer auth.Authorizer
}

func NewService(repo Repository, authorizer auth.Authorizer) Service {
	return &productService{
		repo:       repo,
		authorizer: authorizer,
	}
}

// Search filters in memory over the full listing. The catalog is small
// (hundreds of templates, not millions) and this mirrors how the storefront
// composes query, category and tag filters.
func (s *productService) Search(ctx context.Context, filter SearchFilter) ([]domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))

	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}

		if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
			continue
		}

		if filter.Tag != "" && !p.HasTag(filter.Tag) {
			continue
		}

		matched = append(matched, p)
	}

	return matched, nil
}

func (s *productService) Get(ctx context.Context, id uint) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *productService) Create(ctx context.Context, identity auth.Identity, req SaveProductRequest) (*domain.Product, error) {
	if err := s.authorizer.Require(identity, auth.CapManageProducts); err != nil {
		return nil, err
	}

	if err := validateSaveRequest(req); err != nil {
		return nil, err
	}

	product := fromSaveRequest(req)

	id, err := s.repo.Insert(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = id

	return &product, nil
}

// Update changes the live product only. Past order items keep the price
// snapshot taken at purchase time.
func (s *productService) Update(ctx context.Context, identity auth.Identity, id uint, req SaveProductRequest) (*domain.Product, error) {
	if err := s.authorizer.Require(identity, auth.CapManageProducts); err != nil {
		return nil, err
	}

	if err := validateSaveRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	product := fromSaveRequest(req)
	product.ID = id

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *productService) Delete(ctx context.Context, identity auth.Identity, id uint) error {
	if err := s.authorizer.Require(identity, auth.CapManageProducts); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

func validateSaveRequest(req SaveProductRequest) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(req.Name) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	}

	if req.Price < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "price",
			Message: "price must be non-negative",
		})
	}

	if strings.TrimSpace(req.Category) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "category",
			Message: "category is required",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func fromSaveRequest(req SaveProductRequest) domain.Product {
	return domain.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Tags:        req.Tags,
		FileURL:     req.FileURL,
		ImageURL:    req.ImageURL,
	}
}
