package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themesjet/internal/auth"
	"themesjet/internal/domain"
	apperrors "themesjet/internal/errors"
)

type mockRepository struct {
	inserted  []domain.Review
	approved  []uint
	deleted   []uint
	allResult []domain.Review
}

func (m *mockRepository) Insert(ctx context.Context, review domain.Review) (uint, error) {
	m.inserted = append(m.inserted, review)
	return uint(len(m.inserted)), nil
}

func (m *mockRepository) FindApprovedByProduct(ctx context.Context, productID uint) ([]domain.Review, error) {
	var approved []domain.Review
	for _, review := range m.allResult {
		if review.ProductID == productID && review.Approved {
			approved = append(approved, review)
		}
	}
	return approved, nil
}

func (m *mockRepository) FindAll(ctx context.Context) ([]domain.Review, error) {
	return m.allResult, nil
}

func (m *mockRepository) SetApproved(ctx context.Context, id uint, approved bool) error {
	m.approved = append(m.approved, id)
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, id uint) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type mockProductFinder struct {
	exists bool
}

func (m *mockProductFinder) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	if !m.exists {
		return nil, apperrors.NewNotFoundError("product not found")
	}
	return &domain.Product{ID: id}, nil
}

var buyer = auth.Identity{UserID: 7, Role: domain.RoleUser}

func newTestReviewService(repo *mockRepository, productExists bool) *Service {
	return NewService(repo, &mockProductFinder{exists: productExists}, auth.NewRoleAuthorizer())
}

func TestCreate_RequiresAuthentication(t *testing.T) {
	repo := &mockRepository{}
	svc := newTestReviewService(repo, true)

	_, err := svc.Create(context.Background(), auth.Identity{}, 1, CreateReviewRequest{Rating: 5, Body: "great"})

	require.Error(t, err)
	_, ok := apperrors.IsUnauthorizedError(err)
	assert.True(t, ok)
	assert.Empty(t, repo.inserted)
}

func TestCreate_ValidatesRatingAndBody(t *testing.T) {
	repo := &mockRepository{}
	svc := newTestReviewService(repo, true)

	_, err := svc.Create(context.Background(), buyer, 1, CreateReviewRequest{Rating: 6, Body: "  "})

	require.Error(t, err)
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Len(t, ve.Details, 2)
}

func TestCreate_MissingProduct(t *testing.T) {
	repo := &mockRepository{}
	svc := newTestReviewService(repo, false)

	_, err := svc.Create(context.Background(), buyer, 99, CreateReviewRequest{Rating: 4, Body: "nice"})

	require.Error(t, err)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.Empty(t, repo.inserted)
}

func TestCreate_StoresUnapprovedReview(t *testing.T) {
	repo := &mockRepository{}
	svc := newTestReviewService(repo, true)

	review, err := svc.Create(context.Background(), buyer, 3, CreateReviewRequest{Rating: 4, Body: "  solid theme  "})

	require.NoError(t, err)
	assert.Equal(t, uint(1), review.ID)
	assert.False(t, review.Approved, "new reviews start unapproved")
	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "solid theme", repo.inserted[0].Body)
	assert.Equal(t, uint(7), repo.inserted[0].UserID)
}

func TestApprove_RequiresManageReviews(t *testing.T) {
	repo := &mockRepository{}
	svc := newTestReviewService(repo, true)

	err := svc.Approve(context.Background(), buyer, 1)

	require.Error(t, err)
	assert.Empty(t, repo.approved)

	err = svc.Approve(context.Background(), auth.Identity{UserID: 1, Role: domain.RoleAdmin}, 1)

	require.NoError(t, err)
	assert.Equal(t, []uint{1}, repo.approved)
}
