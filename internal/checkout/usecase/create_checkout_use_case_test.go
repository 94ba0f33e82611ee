package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"themesjet/internal/auth"
	"themesjet/internal/checkout/dto"
	"themesjet/internal/config"
	"themesjet/internal/domain"
	apperrors "themesjet/internal/errors"
	"themesjet/internal/payment"
)

// Mock implementations

type mockOrderWriter struct {
	CreateWithItemsFunc func(ctx context.Context, order domain.Order) (uint, error)
	SetExternalRefFunc  func(ctx context.Context, id uint, ref string) error

	created      []domain.Order
	externalRefs map[uint]string
}

func (m *mockOrderWriter) CreateWithItems(ctx context.Context, order domain.Order) (uint, error) {
	m.created = append(m.created, order)
	if m.CreateWithItemsFunc != nil {
		return m.CreateWithItemsFunc(ctx, order)
	}
	return uint(len(m.created)), nil
}

func (m *mockOrderWriter) SetExternalRef(ctx context.Context, id uint, ref string) error {
	if m.externalRefs == nil {
		m.externalRefs = map[uint]string{}
	}
	m.externalRefs[id] = ref
	if m.SetExternalRefFunc != nil {
		return m.SetExternalRefFunc(ctx, id, ref)
	}
	return nil
}

type mockSessionCreator struct {
	CreateSessionFunc func(ctx context.Context, req payment.SessionRequest) (*payment.Session, error)

	requests []payment.SessionRequest
}

func (m *mockSessionCreator) CreateSession(ctx context.Context, req payment.SessionRequest) (*payment.Session, error) {
	m.requests = append(m.requests, req)
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, req)
	}
	return &payment.Session{ID: "cs_test", URL: "https://pay.example.com/cs_test"}, nil
}

func newTestCreateCheckoutUseCase(orderRepo *mockOrderWriter, payments *mockSessionCreator) *CreateCheckoutUseCase {
	return NewCreateCheckoutUseCase(
		orderRepo,
		payments,
		config.PaymentConfig{
			SuccessURL: "http://localhost:8080/checkout/success",
			CancelURL:  "http://localhost:8080/cart",
		},
		zap.NewNop(),
	)
}

var testCart = []dto.CartItem{
	{ProductID: 1, Name: "Portfolio Theme", Price: 10, Image: "portfolio.png"},
	{ProductID: 2, Name: "Agency Theme", Price: 20, Image: "agency.png"},
	{ProductID: 3, Name: "Shop Theme", Price: 30, Image: "shop.png"},
}

func TestCheckout_Unauthenticated(t *testing.T) {
	ctx := context.Background()
	orderRepo := &mockOrderWriter{}
	payments := &mockSessionCreator{}

	uc := newTestCreateCheckoutUseCase(orderRepo, payments)

	_, err := uc.Checkout(ctx, auth.Identity{}, testCart)

	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := apperrors.IsUnauthorizedError(err); !ok {
		t.Errorf("expected UnauthorizedError, got %T", err)
	}
	if len(orderRepo.created) != 0 {
		t.Errorf("expected no order to be created, got %d", len(orderRepo.created))
	}
	if len(payments.requests) != 0 {
		t.Errorf("expected no processor call, got %d", len(payments.requests))
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	ctx := context.Background()
	orderRepo := &mockOrderWriter{}
	payments := &mockSessionCreator{}

	uc := newTestCreateCheckoutUseCase(orderRepo, payments)

	_, err := uc.Checkout(ctx, auth.Identity{UserID: 7, Role: domain.RoleUser}, nil)

	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := apperrors.IsEmptyCartError(err); !ok {
		t.Errorf("expected EmptyCartError, got %T", err)
	}
	if len(orderRepo.created) != 0 {
		t.Errorf("expected no order to be created, got %d", len(orderRepo.created))
	}
	if len(payments.requests) != 0 {
		t.Errorf("expected no processor call, got %d", len(payments.requests))
	}
}

func TestCheckout_TotalIsSumOfItemPrices(t *testing.T) {
	ctx := context.Background()
	orderRepo := &mockOrderWriter{}
	payments := &mockSessionCreator{}

	uc := newTestCreateCheckoutUseCase(orderRepo, payments)

	result, err := uc.Checkout(ctx, auth.Identity{UserID: 7, Role: domain.RoleUser}, testCart)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RedirectURL != "https://pay.example.com/cs_test" {
		t.Errorf("unexpected redirect url %q", result.RedirectURL)
	}

	if len(orderRepo.created) != 1 {
		t.Fatalf("expected one order, got %d", len(orderRepo.created))
	}
	order := orderRepo.created[0]

	if order.Total != 60 {
		t.Errorf("expected total 60, got %v", order.Total)
	}
	if order.Status != domain.OrderStatusPending {
		t.Errorf("expected PENDING order, got %s", order.Status)
	}
	if order.UserID != 7 {
		t.Errorf("expected owner 7, got %d", order.UserID)
	}

	if len(order.Items) != len(testCart) {
		t.Fatalf("expected %d items, got %d", len(testCart), len(order.Items))
	}
	for i, item := range order.Items {
		if item.Price != testCart[i].Price {
			t.Errorf("item %d: expected snapshot price %v, got %v", i, testCart[i].Price, item.Price)
		}
		if item.ProductID != testCart[i].ProductID {
			t.Errorf("item %d: expected product %d, got %d", i, testCart[i].ProductID, item.ProductID)
		}
	}
}

func TestCheckout_SessionRequestShape(t *testing.T) {
	ctx := context.Background()
	orderRepo := &mockOrderWriter{}
	payments := &mockSessionCreator{}

	uc := newTestCreateCheckoutUseCase(orderRepo, payments)

	_, err := uc.Checkout(ctx, auth.Identity{UserID: 7, Role: domain.RoleUser}, testCart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(payments.requests) != 1 {
		t.Fatalf("expected one processor call, got %d", len(payments.requests))
	}
	req := payments.requests[0]

	if req.Mode != "payment" {
		t.Errorf("expected mode payment, got %q", req.Mode)
	}
	if req.Metadata["orderId"] != "1" || req.Metadata["userId"] != "7" {
		t.Errorf("unexpected metadata %v", req.Metadata)
	}
	if req.SuccessURL == "" || req.CancelURL == "" {
		t.Errorf("expected redirect urls to be set")
	}
	if len(req.LineItems) != 3 {
		t.Fatalf("expected 3 line items, got %d", len(req.LineItems))
	}
	if req.LineItems[1].UnitAmount != 2000 {
		t.Errorf("expected minor units 2000, got %d", req.LineItems[1].UnitAmount)
	}
	if req.LineItems[1].Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", req.LineItems[1].Quantity)
	}

	if orderRepo.externalRefs[1] != "cs_test" {
		t.Errorf("expected session id stored as external ref, got %v", orderRepo.externalRefs)
	}
}

func TestCheckout_ProcessorFailureLeavesOrphanedOrder(t *testing.T) {
	ctx := context.Background()
	orderRepo := &mockOrderWriter{}
	payments := &mockSessionCreator{
		CreateSessionFunc: func(ctx context.Context, req payment.SessionRequest) (*payment.Session, error) {
			return nil, errors.New("processor unavailable")
		},
	}

	uc := newTestCreateCheckoutUseCase(orderRepo, payments)

	_, err := uc.Checkout(ctx, auth.Identity{UserID: 7, Role: domain.RoleUser}, testCart)

	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := apperrors.IsInternalError(err); !ok {
		t.Errorf("expected InternalError, got %T", err)
	}

	// The PENDING order was persisted before the processor call and is not
	// rolled back.
	if len(orderRepo.created) != 1 {
		t.Errorf("expected orphaned order to remain, got %d orders", len(orderRepo.created))
	}
	if len(orderRepo.externalRefs) != 0 {
		t.Errorf("expected no external ref after failure, got %v", orderRepo.externalRefs)
	}
}

func TestCheckout_StoreFailureSkipsProcessor(t *testing.T) {
	ctx := context.Background()
	orderRepo := &mockOrderWriter{
		CreateWithItemsFunc: func(ctx context.Context, order domain.Order) (uint, error) {
			return 0, errors.New("connection reset")
		},
	}
	payments := &mockSessionCreator{}

	uc := newTestCreateCheckoutUseCase(orderRepo, payments)

	_, err := uc.Checkout(ctx, auth.Identity{UserID: 7, Role: domain.RoleUser}, testCart)

	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := apperrors.IsInternalError(err); !ok {
		t.Errorf("expected InternalError, got %T", err)
	}
	if len(payments.requests) != 0 {
		t.Errorf("expected no processor call after store failure, got %d", len(payments.requests))
	}
}
