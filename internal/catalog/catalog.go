package catalog

import (
	"context"
	"fmt"

	"github.com/duskmantle/tavernsim/internal/models"
	"github.com/duskmantle/tavernsim/internal/repositories"
)

// Catalog bundles the static read-only data the simulation consumes: the
// menu, upgrade definitions, hero name pools, the random event list and
// market price ranges. It is loaded once at startup and never mutated.
type Catalog struct {
	MenuItems   []models.MenuItem
	Upgrades    []models.Upgrade
	HeroNames   map[models.HeroClass][]string
	Events      []models.GameEvent
	PriceRanges map[models.ResourceType]models.PriceRange
}

// Load builds the catalog from the repository when one is configured,
// falling back to the built-in defaults for anything the repository does
// not provide (name pools, events and price ranges are code-defined).
func Load(ctx context.Context, repo repositories.CatalogRepository) (*Catalog, error) {
	cat := Default()
	if repo == nil {
		return cat, nil
	}

	items, err := repo.MenuItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading menu items: %w", err)
	}
	if len(items) > 0 {
		cat.MenuItems = items
	}

	upgrades, err := repo.Upgrades(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading upgrades: %w", err)
	}
	if len(upgrades) > 0 {
		cat.Upgrades = upgrades
	}

	return cat, nil
}

// ItemsByCategory filters the menu to one category. The returned slice
// shares backing items with the catalog; callers must not modify them.
func (c *Catalog) ItemsByCategory(category models.ItemCategory) []models.MenuItem {
	var out []models.MenuItem
	for _, item := range c.MenuItems {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// UpgradeByID looks up a static upgrade definition.
func (c *Catalog) UpgradeByID(id string) (models.Upgrade, bool) {
	for _, u := range c.Upgrades {
		if u.ID == id {
			return u, true
		}
	}
	return models.Upgrade{}, false
}
