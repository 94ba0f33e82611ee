package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"themesjet/internal/auth"
	"themesjet/internal/domain"
	apperrors "themesjet/internal/errors"
	"themesjet/internal/payment"
)

type mockOrderReader struct {
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Order, error)

	statusUpdates []string
}

func (m *mockOrderReader) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockOrderReader) UpdateStatus(ctx context.Context, id uint, status string) error {
	m.statusUpdates = append(m.statusUpdates, status)
	return nil
}

func strPtr(s string) *string {
	return &s
}

func pendingOrder(id, userID uint) *domain.Order {
	return &domain.Order{
		ID:          id,
		UserID:      userID,
		Total:       49,
		Status:      domain.OrderStatusPending,
		ExternalRef: strPtr("cs_test"),
	}
}

func TestViewSuccess_Unauthenticated(t *testing.T) {
	repo := &mockOrderReader{}
	uc := NewCompleteOrderUseCase(repo, zap.NewNop())

	_, err := uc.ViewSuccess(context.Background(), auth.Identity{}, 1)

	require.Error(t, err)
	_, ok := apperrors.IsUnauthorizedError(err)
	assert.True(t, ok)
}

func TestViewSuccess_OrderMissing(t *testing.T) {
	repo := &mockOrderReader{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError("order not found")
		},
	}
	uc := NewCompleteOrderUseCase(repo, zap.NewNop())

	_, err := uc.ViewSuccess(context.Background(), auth.Identity{UserID: 7}, 99)

	require.Error(t, err)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestViewSuccess_OtherUsersOrderReportsNotFound(t *testing.T) {
	repo := &mockOrderReader{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return pendingOrder(id, 3), nil
		},
	}
	uc := NewCompleteOrderUseCase(repo, zap.NewNop())

	_, err := uc.ViewSuccess(context.Background(), auth.Identity{UserID: 7}, 1)

	require.Error(t, err)
	// Deliberately NotFound rather than Forbidden so order ids are not
	// probeable.
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.Empty(t, repo.statusUpdates, "status must not change for a non-owner")
}

func TestViewSuccess_TransitionsPendingToCompleted(t *testing.T) {
	repo := &mockOrderReader{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return pendingOrder(id, 7), nil
		},
	}
	uc := NewCompleteOrderUseCase(repo, zap.NewNop())

	order, err := uc.ViewSuccess(context.Background(), auth.Identity{UserID: 7}, 1)

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, order.Status)
	assert.Equal(t, []string{domain.OrderStatusCompleted}, repo.statusUpdates)
}

func TestViewSuccess_SecondViewIsNoOp(t *testing.T) {
	repo := &mockOrderReader{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			order := pendingOrder(id, 7)
			order.Status = domain.OrderStatusCompleted
			return order, nil
		},
	}
	uc := NewCompleteOrderUseCase(repo, zap.NewNop())

	order, err := uc.ViewSuccess(context.Background(), auth.Identity{UserID: 7}, 1)

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, order.Status)
	assert.Empty(t, repo.statusUpdates, "already completed order must not be updated again")
}

func TestHandleEvent_IgnoresOtherEventTypes(t *testing.T) {
	repo := &mockOrderReader{}
	uc := NewCompleteOrderUseCase(repo, zap.NewNop())

	err := uc.HandleEvent(context.Background(), payment.Event{Type: "checkout.session.expired"})

	require.NoError(t, err)
	assert.Empty(t, repo.statusUpdates)
}

func TestHandleEvent_InvalidOrderReference(t *testing.T) {
	repo := &mockOrderReader{}
	uc := NewCompleteOrderUseCase(repo, zap.NewNop())

	err := uc.HandleEvent(context.Background(), payment.Event{
		Type:      payment.EventCheckoutCompleted,
		SessionID: "cs_test",
		Metadata:  map[string]string{"orderId": "abc"},
	})

	require.Error(t, err)
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestHandleEvent_SessionReferenceMismatch(t *testing.T) {
	repo := &mockOrderReader{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return pendingOrder(id, 7), nil
		},
	}
	uc := NewCompleteOrderUseCase(repo, zap.NewNop())

	err := uc.HandleEvent(context.Background(), payment.Event{
		Type:      payment.EventCheckoutCompleted,
		SessionID: "cs_other",
		Metadata:  map[string]string{"orderId": "1"},
	})

	require.Error(t, err)
	_, ok := apperrors.IsUnauthorizedError(err)
	assert.True(t, ok)
	assert.Empty(t, repo.statusUpdates)
}

func TestHandleEvent_CompletesPendingOrder(t *testing.T) {
	repo := &mockOrderReader{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return pendingOrder(id, 7), nil
		},
	}
	uc := NewCompleteOrderUseCase(repo, zap.NewNop())

	err := uc.HandleEvent(context.Background(), payment.Event{
		Type:      payment.EventCheckoutCompleted,
		SessionID: "cs_test",
		Metadata:  map[string]string{"orderId": "1"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{domain.OrderStatusCompleted}, repo.statusUpdates)
}

func TestHandleEvent_AlreadyCompletedIsNoOp(t *testing.T) {
	repo := &mockOrderReader{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			order := pendingOrder(id, 7)
			order.Status = domain.OrderStatusCompleted
			return order, nil
		},
	}
	uc := NewCompleteOrderUseCase(repo, zap.NewNop())

	err := uc.HandleEvent(context.Background(), payment.Event{
		Type:      payment.EventCheckoutCompleted,
		SessionID: "cs_test",
		Metadata:  map[string]string{"orderId": "1"},
	})

	require.NoError(t, err)
	assert.Empty(t, repo.statusUpdates)
}
