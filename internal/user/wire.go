package user

import (
	"database/sql"

	"go.uber.org/zap"

	"foodcourt/internal/auth"
)

type Module struct {
	Controller *Controller
	Service    Service
}

func NewModule(db *sql.DB, tokens *auth.TokenManager, logger *zap.Logger) *Module {
	repo := NewMySQLRepository(db)
	svc := NewService(repo, logger)
	return &Module{
		Controller: NewController(svc, tokens, logger),
		Service:    svc,
	}
}
