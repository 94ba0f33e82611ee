package review

import (
	"context"
	"strings"

	"themesjet/internal/auth"
	"themesjet/internal/domain"
	apperrors "themesjet/internal/errors"
)

type CreateReviewRequest struct {
	Rating int    `json:"rating"`
	Body   string `json:"body"`
}

// ProductFinder confirms the reviewed product exists.
type ProductFinder interface {
	FindByID(ctx context.Context, id uint) (*domain.Product, error)
}

type Service struct {
	repo       Repository
	products   ProductFinder
	authorizer auth.Authorizer
}

func NewService(repo Repository, products ProductFinder, authorizer auth.Authorizer) *Service {
	return &Service{
		repo:       repo,
		products:   products,
		authorizer: authorizer,
	}
}

// Create stores an unapproved review; it only becomes publicly visible once
// an admin approves it.
func (s *Service) Create(ctx context.Context, identity auth.Identity, productID uint, req CreateReviewRequest) (*domain.Review, error) {
	if !identity.Authenticated() {
		return nil, apperrors.NewUnauthorizedError("sign in to leave a review")
	}

	var details []apperrors.ValidationDetail
	if req.Rating < 1 || req.Rating > 5 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "rating",
			Message: "rating must be between 1 and 5",
		})
	}
	if strings.TrimSpace(req.Body) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "body",
			Message: "body is required",
		})
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("validation failed", details...)
	}

	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	review := domain.Review{
		ProductID: productID,
		UserID:    identity.UserID,
		Rating:    req.Rating,
		Body:      strings.TrimSpace(req.Body),
	}

	id, err := s.repo.Insert(ctx, review)
	if err != nil {
		return nil, err
	}
	review.ID = id

	return &review, nil
}

func (s *Service) ListApproved(ctx context.Context, productID uint) ([]domain.Review, error) {
	return s.repo.FindApprovedByProduct(ctx, productID)
}

func (s *Service) ListAll(ctx context.Context, identity auth.Identity) ([]domain.Review, error) {
	if err := s.authorizer.Require(identity, auth.CapManageReviews); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx)
}

func (s *Service) Approve(ctx context.Context, identity auth.Identity, id uint) error {
	if err := s.authorizer.Require(identity, auth.CapManageReviews); err != nil {
		return err
	}
	return s.repo.SetApproved(ctx, id, true)
}

func (s *Service) Delete(ctx context.Context, identity auth.Identity, id uint) error {
	if err := s.authorizer.Require(identity, auth.CapManageReviews); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
