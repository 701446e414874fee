package menu

import (
	"database/sql"

	"go.uber.org/zap"

	"foodcourt/internal/cache"
)

type Module struct {
	Controller *Controller
	Service    Service
}

func NewModule(db *sql.DB, restaurants RestaurantReader, c *cache.Cache, logger *zap.Logger) *Module {
	repo := NewMySQLRepository(db)
	svc := NewService(repo, restaurants, c, logger)
	return &Module{
		Controller: NewController(svc, logger),
		Service:    svc,
	}
}
