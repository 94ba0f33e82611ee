package insights

import (
	"database/sql"

	"go.uber.org/zap"

	"themesjet/internal/auth"
)

func NewModule(db *sql.DB, authorizer auth.Authorizer, logger *zap.Logger) *Controller {
	repo := NewMySQLRepository(db)
	svc := NewService(repo, authorizer)
	return NewController(svc, logger)
}
