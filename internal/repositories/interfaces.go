package repositories

import (
	"context"

	"github.com/duskmantle/tavernsim/internal/models"
)

type CatalogRepository interface {
	MenuItems(ctx context.Context) ([]models.MenuItem, error)
	Upgrades(ctx context.Context) ([]models.Upgrade, error)
}
