package insights

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/go-sql-driver/mysql"

	"themesjet/internal/auth"
	"themesjet/internal/domain"
	apperrors "themesjet/internal/errors"
)

type SavePostRequest struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
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

// ListPublished returns posts visible to visitors, newest first.
func (s *Service) ListPublished(ctx context.Context) ([]domain.Post, error) {
	return s.repo.FindPublished(ctx)
}

// GetBySlug serves the public post page. Unpublished posts are reported as
// missing so drafts stay invisible regardless of who asks.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	post, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if !post.Published {
		return nil, apperrors.NewNotFoundError("post " + slug + " not found")
	}

	return post, nil
}

func (s *Service) ListAll(ctx context.Context, identity auth.Identity) ([]domain.Post, error) {
	if err := s.authorizer.Require(identity, auth.CapManagePosts); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx)
}

func (s *Service) Create(ctx context.Context, identity auth.Identity, req SavePostRequest) (*domain.Post, error) {
	if err := s.authorizer.Require(identity, auth.CapManagePosts); err != nil {
		return nil, err
	}

	post, err := buildPost(req)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Insert(ctx, *post)
	if err != nil {
		if isDuplicateEntry(err) {
			return nil, duplicateSlugError(post.Slug)
		}
		return nil, err
	}
	post.ID = id

	return post, nil
}

func (s *Service) Update(ctx context.Context, identity auth.Identity, id uint, req SavePostRequest) (*domain.Post, error) {
	if err := s.authorizer.Require(identity, auth.CapManagePosts); err != nil {
		return nil, err
	}

	post, err := buildPost(req)
	if err != nil {
		return nil, err
	}
	post.ID = id

	if err := s.repo.Update(ctx, *post); err != nil {
		if isDuplicateEntry(err) {
			return nil, duplicateSlugError(post.Slug)
		}
		return nil, err
	}

	return post, nil
}

func (s *Service) Delete(ctx context.Context, identity auth.Identity, id uint) error {
	if err := s.authorizer.Require(identity, auth.CapManagePosts); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func buildPost(req SavePostRequest) (*domain.Post, error) {
	title := strings.TrimSpace(req.Title)
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = Slugify(title)
	}

	var details []apperrors.ValidationDetail
	if title == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "title",
			Message: "title is required",
		})
	}
	if slug == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "slug",
			Message: "slug is required",
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

	return &domain.Post{
		Title:     title,
		Slug:      slug,
		Body:      req.Body,
		Published: req.Published,
	}, nil
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the title and collapses runs of non-alphanumerics into
// single hyphens.
func Slugify(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

func duplicateSlugError(slug string) error {
	return apperrors.NewValidationError("slug already in use", apperrors.ValidationDetail{
		Field:   "slug",
		Message: "slug " + slug + " already in use",
	})
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}
