package admin

import (
	"database/sql"

	"go.uber.org/zap"

	"themesjet/internal/auth"
	"themesjet/internal/config"
)

func NewModule(db *sql.DB, cfg *config.Config, authorizer auth.Authorizer, logger *zap.Logger) *Controller {
	repo := NewMySQLRepository(db)
	service := NewService(repo, authorizer, cfg.Dashboard)
	return NewController(service, logger)
}
