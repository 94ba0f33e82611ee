package user

import (
	"context"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"

	"themesjet/internal/domain"
	apperrors "themesjet/internal/errors"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a USER-role account with a bcrypt password hash.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewInternalError("hashing password", err)
	}

	user := domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}

	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		if isDuplicateEntry(err) {
			return nil, apperrors.NewValidationError("email already registered", apperrors.ValidationDetail{
				Field:   "email",
				Message: "email already registered",
			})
		}
		return nil, err
	}
	user.ID = id

	return &user, nil
}

func validateRegisterRequest(req RegisterRequest) error {
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

	if len(req.Password) < 8 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}
