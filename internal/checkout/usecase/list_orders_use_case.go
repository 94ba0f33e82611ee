package usecase

import (
	"context"

	"themesjet/internal/auth"
	"themesjet/internal/domain"
)

type OrderLister interface {
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
}

type ListOrdersUseCase struct {
	orderRepo  OrderLister
	authorizer auth.Authorizer
}

func NewListOrdersUseCase(orderRepo OrderLister, authorizer auth.Authorizer) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo:  orderRepo,
		authorizer: authorizer,
	}
}

func (uc *ListOrdersUseCase) ListOrders(ctx context.Context, identity auth.Identity) ([]domain.Order, error) {
	if err := uc.authorizer.Require(identity, auth.CapManageOrders); err != nil {
		return nil, err
	}

	return uc.orderRepo.FindAll(ctx)
}

func (uc *ListOrdersUseCase) GetOrder(ctx context.Context, identity auth.Identity, id uint) (*domain.Order, error) {
	if err := uc.authorizer.Require(identity, auth.CapManageOrders); err != nil {
		return nil, err
	}

	return uc.orderRepo.FindByID(ctx, id)
}
