package usecase

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"themesjet/internal/auth"
	"themesjet/internal/checkout/dto"
	"themesjet/internal/config"
	"themesjet/internal/domain"
	apperrors "themesjet/internal/errors"
	"themesjet/internal/payment"
)

type OrderWriter interface {
	CreateWithItems(ctx context.Context, order domain.Order) (uint, error)
	SetExternalRef(ctx context.Context, id uint, ref string) error
}

type SessionCreator interface {
	CreateSession(ctx context.Context, req payment.SessionRequest) (*payment.Session, error)
}

type CheckoutResult struct {
	OrderID     uint
	RedirectURL string
}

type CreateCheckoutUseCase struct {
	orderRepo OrderWriter
	payments  SessionCreator
	cfg       config.PaymentConfig
	logger    *zap.Logger
}

func NewCreateCheckoutUseCase(
	orderRepo OrderWriter,
	payments SessionCreator,
	cfg config.PaymentConfig,
	logger *zap.Logger,
) *CreateCheckoutUseCase {
	return &CreateCheckoutUseCase{
		orderRepo: orderRepo,
		payments:  payments,
		cfg:       cfg,
		logger:    logger,
	}
}

// Checkout persists a PENDING order with price snapshots, then requests a
// hosted session from the payment processor. The order is written before the
// processor is contacted, so a paid-but-missing order cannot occur; a
// processor failure leaves the PENDING order behind with no compensation.
func (uc *CreateCheckoutUseCase) Checkout(ctx context.Context, identity auth.Identity, items []dto.CartItem) (*CheckoutResult, error) {
	if !identity.Authenticated() {
		return nil, apperrors.NewUnauthorizedError("sign in to check out")
	}

	if len(items) == 0 {
		return nil, apperrors.NewEmptyCartError("cart is empty")
	}

	uc.logger.Info("checkout started",
		zap.Uint("userId", identity.UserID),
		zap.Int("itemCount", len(items)),
	)

	order := domain.Order{
		UserID: identity.UserID,
		Status: domain.OrderStatusPending,
	}
	for _, item := range items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Image:     item.Image,
		})
	}
	order.Total = order.ComputedTotal()

	orderID, err := uc.orderRepo.CreateWithItems(ctx, order)
	if err != nil {
		uc.logger.Error("failed to persist order", zap.Uint("userId", identity.UserID), zap.Error(err))
		return nil, apperrors.NewInternalError("checkout failed", err)
	}

	session, err := uc.payments.CreateSession(ctx, uc.buildSessionRequest(orderID, identity.UserID, items))
	if err != nil {
		// The PENDING order stays behind; there is no compensating cleanup.
		uc.logger.Error("payment session creation failed",
			zap.Uint("orderId", orderID),
			zap.Error(err),
		)
		return nil, apperrors.NewInternalError("checkout failed", err)
	}

	if err := uc.orderRepo.SetExternalRef(ctx, orderID, session.ID); err != nil {
		uc.logger.Warn("failed to store session reference",
			zap.Uint("orderId", orderID),
			zap.String("sessionId", session.ID),
			zap.Error(err),
		)
	}

	uc.logger.Info("checkout session created",
		zap.Uint("orderId", orderID),
		zap.Float64("total", order.Total),
		zap.String("sessionId", session.ID),
	)

	return &CheckoutResult{
		OrderID:     orderID,
		RedirectURL: session.URL,
	}, nil
}

func (uc *CreateCheckoutUseCase) buildSessionRequest(orderID, userID uint, items []dto.CartItem) payment.SessionRequest {
	lineItems := make([]payment.LineItem, len(items))
	for i, item := range items {
		lineItems[i] = payment.LineItem{
			Name:       item.Name,
			Image:      item.Image,
			UnitAmount: payment.MinorUnits(item.Price),
			Quantity:   1,
		}
	}

	return payment.SessionRequest{
		LineItems:  lineItems,
		Mode:       "payment",
		SuccessURL: uc.cfg.SuccessURL,
		CancelURL:  uc.cfg.CancelURL,
		Metadata: map[string]string{
			"orderId": strconv.FormatUint(uint64(orderID), 10),
			"userId":  strconv.FormatUint(uint64(userID), 10),
		},
	}
}
