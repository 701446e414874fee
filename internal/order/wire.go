package order

import (
	"database/sql"
	"time"

	"go.uber.org/zap"

	"foodcourt/internal/cache"
)

type Module struct {
	Controller *Controller
	Service    Service
	Sweeper    *Sweeper
}

func NewModule(db *sql.DB, menus MenuReader, restaurants RestaurantReader, users UserReader,
	c *cache.Cache, notifier Notifier, sweepPeriod, stallThreshold time.Duration, logger *zap.Logger) *Module {
	repo := NewMySQLRepository(db)
	svc := NewService(repo, menus, restaurants, users, c, notifier, logger)
	return &Module{
		Controller: NewController(svc, logger),
		Service:    svc,
		Sweeper:    NewSweeper(repo, svc, sweepPeriod, stallThreshold, logger),
	}
}
