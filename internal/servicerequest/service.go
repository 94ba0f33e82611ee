package servicerequest

import (
	"context"
	"strings"

	"themesjet/internal/auth"
	"themesjet/internal/domain"
	apperrors "themesjet/internal/errors"
)

type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type Service struct {
	repo       Repository
	authorizer auth.Authorizer
}

func NewService(repo Repository, authorizer auth.Authorizer) *Service {
	return &Service{
		repo:       repo,
		authorizer: authorizer,
	}
}

// Submit accepts a customization enquiry from any visitor, signed in or not.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*domain.ServiceRequest, error) {
	if err := validateSubmitRequest(req); err != nil {
		return nil, err
	}

	request := domain.ServiceRequest{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Subject: strings.TrimSpace(req.Subject),
		Body:    strings.TrimSpace(req.Body),
	}

	id, err := s.repo.Insert(ctx, request)
	if err != nil {
		return nil, err
	}
	request.ID = id

	return &request, nil
}

func (s *Service) List(ctx context.Context, identity auth.Identity) ([]domain.ServiceRequest, error) {
	if err := s.authorizer.Require(identity, auth.CapManageRequests); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx)
}

func (s *Service) MarkHandled(ctx context.Context, identity auth.Identity, id uint) error {
	if err := s.authorizer.Require(identity, auth.CapManageRequests); err != nil {
		return err
	}
	return s.repo.MarkHandled(ctx, id)
}

func validateSubmitRequest(req SubmitRequest) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(req.Name) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		details = append(details, apperrors.ValidationDetail{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if strings.TrimSpace(req.Subject) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "subject",
			Message: "subject is required",
		})
	}

	if strings.TrimSpace(req.Body) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "body",
			Message: "body is required",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}
