package catalog

import (
	"context"

	"themesjet/internal/auth"
	"themesjet/internal/domain"
)

type Service interface {
	Search(ctx context.Context, filter SearchFilter) ([]domain.Product, error)
	Get(ctx context.Context, id uint) (*domain.Product, error)
	Create(ctx context.Context, identity auth.Identity, req SaveProductRequest) (*domain.Product, error)
	Update(ctx context.Context, identity auth.Identity, id uint, req SaveProductRequest) (*domain.Product, error)
	Delete(ctx context.Context, identity auth.Identity, id uint) error
}

type Repository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id uint) (*domain.Product, error)
	Insert(ctx context.Context, product domain.Product) (uint, error)
	Update(ctx context.Context, product domain.Product) error
	Delete(ctx context.Context, id uint) error
}
