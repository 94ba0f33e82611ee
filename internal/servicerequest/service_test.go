package servicerequest

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
	inserted []domain.ServiceRequest
	handled  []uint
	all      []domain.ServiceRequest
}

func (m *mockRepository) Insert(ctx context.Context, request domain.ServiceRequest) (uint, error) {
	m.inserted = append(m.inserted, request)
	return uint(len(m.inserted)), nil
}

func (m *mockRepository) FindAll(ctx context.Context) ([]domain.ServiceRequest, error) {
	return m.all, nil
}

func (m *mockRepository) MarkHandled(ctx context.Context, id uint) error {
	m.handled = append(m.handled, id)
	return nil
}

func TestSubmit_AcceptsAnonymousVisitors(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo, auth.NewRoleAuthorizer())

	request, err := svc.Submit(context.Background(), SubmitRequest{
		Name:    "  Dana  ",
		Email:   "Dana@Example.COM",
		Subject: "Custom landing page",
		Body:    "Can you adapt the Nova theme?",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), request.ID)
	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "Dana", repo.inserted[0].Name)
	assert.Equal(t, "dana@example.com", repo.inserted[0].Email)
	assert.False(t, repo.inserted[0].Handled)
}

func TestSubmit_ValidatesAllFields(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo, auth.NewRoleAuthorizer())

	_, err := svc.Submit(context.Background(), SubmitRequest{Email: "not-an-email"})

	require.Error(t, err)
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Len(t, ve.Details, 4)
	assert.Empty(t, repo.inserted)
}

func TestList_RequiresManageRequests(t *testing.T) {
	repo := &mockRepository{all: []domain.ServiceRequest{{ID: 1}}}
	svc := NewService(repo, auth.NewRoleAuthorizer())

	_, err := svc.List(context.Background(), auth.Identity{UserID: 3, Role: domain.RoleUser})

	require.Error(t, err)
	_, ok := apperrors.IsUnauthorizedError(err)
	assert.True(t, ok)

	requests, err := svc.List(context.Background(), auth.Identity{UserID: 1, Role: domain.RoleAdmin})

	require.NoError(t, err)
	assert.Len(t, requests, 1)
}

func TestMarkHandled_RequiresManageRequests(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo, auth.NewRoleAuthorizer())

	err := svc.MarkHandled(context.Background(), auth.Identity{UserID: 3, Role: domain.RoleUser}, 9)

	require.Error(t, err)
	assert.Empty(t, repo.handled)

	err = svc.MarkHandled(context.Background(), auth.Identity{UserID: 1, Role: domain.RoleAdmin}, 9)

	require.NoError(t, err)
	assert.Equal(t, []uint{9}, repo.handled)
}
