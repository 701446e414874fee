package restaurant

import (
	"database/sql"

	"go.uber.org/zap"

	"foodcourt/internal/cache"
)

type Module struct {
	Controller *Controller
	Service    Service
}

func NewModule(db *sql.DB, c *cache.Cache, logger *zap.Logger) *Module {
	repo := NewMySQLRepository(db)
	svc := NewService(repo, c, logger)
	return &Module{
		Controller: NewController(svc, logger),
		Service:    svc,
	}
}
