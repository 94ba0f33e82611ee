package catalog

import (
	"database/sql"

	"go.uber.org/zap"

	"themesjet/internal/auth"
	"themesjet/internal/catalog/repository"
)

func NewModule(db *sql.DB, authorizer auth.Authorizer, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLRepository(db)
	svc := NewService(repo, authorizer)
	return NewController(svc, logger)
}
