package review

import (
	"database/sql"

	"go.uber.org/zap"

	"themesjet/internal/auth"
	catalogrepo "themesjet/internal/catalog/repository"
)

func NewModule(db *sql.DB, authorizer auth.Authorizer, logger *zap.Logger) *Controller {
	repo := NewMySQLRepository(db)
	products := catalogrepo.NewMySQLRepository(db)
	svc := NewService(repo, products, authorizer)
	return NewController(svc, logger)
}
