package usecase

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"themesjet/internal/auth"
	"themesjet/internal/domain"
	apperrors "themesjet/internal/errors"
	"themesjet/internal/payment"
)

type OrderReader interface {
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type CompleteOrderUseCase struct {
	orderRepo OrderReader
	logger    *zap.Logger
}

func NewCompleteOrderUseCase(orderRepo OrderReader, logger *zap.Logger) *CompleteOrderUseCase {
	return &CompleteOrderUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// ViewSuccess resolves the order behind the success redirect and, if it is
// still PENDING, marks it COMPLETED. Repeat views are no-ops. An order owned
// by someone else reports not-found rather than forbidden so the id space is
// not probeable.
func (uc *CompleteOrderUseCase) ViewSuccess(ctx context.Context, identity auth.Identity, orderID uint) (*domain.Order, error) {
	if !identity.Authenticated() {
		return nil, apperrors.NewUnauthorizedError("sign in to view your order")
	}

	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != identity.UserID {
		return nil, apperrors.NewNotFoundError("order not found")
	}

	if order.Status == domain.OrderStatusPending {
		if err := uc.orderRepo.UpdateStatus(ctx, orderID, domain.OrderStatusCompleted); err != nil {
			return nil, err
		}
		order.Status = domain.OrderStatusCompleted
		uc.logger.Info("order completed via success view", zap.Uint("orderId", orderID))
	}

	return order, nil
}

// HandleEvent applies a verified processor event. The transition is guarded
// by the session reference stored at checkout initiation, not by who is
// looking at the page.
func (uc *CompleteOrderUseCase) HandleEvent(ctx context.Context, event payment.Event) error {
	if event.Type != payment.EventCheckoutCompleted {
		uc.logger.Debug("ignoring webhook event", zap.String("type", event.Type))
		return nil
	}

	rawOrderID := event.Metadata["orderId"]
	orderID, err := strconv.ParseUint(rawOrderID, 10, 64)
	if err != nil || orderID == 0 {
		return apperrors.NewValidationError("invalid order reference in event metadata")
	}

	order, err := uc.orderRepo.FindByID(ctx, uint(orderID))
	if err != nil {
		return err
	}

	if order.ExternalRef == nil || *order.ExternalRef != event.SessionID {
		uc.logger.Warn("webhook session reference mismatch",
			zap.Uint("orderId", order.ID),
			zap.String("sessionId", event.SessionID),
		)
		return apperrors.NewUnauthorizedError("session reference mismatch")
	}

	if order.Status != domain.OrderStatusPending {
		return nil
	}

	if err := uc.orderRepo.UpdateStatus(ctx, order.ID, domain.OrderStatusCompleted); err != nil {
		return err
	}

	uc.logger.Info("order completed via webhook",
		zap.Uint("orderId", order.ID),
		zap.String("sessionId", event.SessionID),
	)

	return nil
}
