package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/duskmantle/tavernsim/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogRepository reads the static menu and upgrade catalogs from
// Postgres. Recipe costs are stored as a jsonb resource->count object.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	return pool, nil
}

func (r *CatalogRepository) MenuItems(ctx context.Context) ([]models.MenuItem, error) {
	query := `
        SELECT id, name, category, price, cost, fame_requirement
        FROM menu_items
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying menu items: %w", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		var costJSON []byte
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Price, &costJSON, &item.FameRequirement); err != nil {
			return nil, fmt.Errorf("error scanning menu item: %w", err)
		}
		item.Cost = make(map[models.ResourceType]int)
		if len(costJSON) > 0 {
			if err := json.Unmarshal(costJSON, &item.Cost); err != nil {
				return nil, fmt.Errorf("error decoding cost for menu item %s: %w", item.ID, err)
			}
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *CatalogRepository) Upgrades(ctx context.Context) ([]models.Upgrade, error) {
	query := `
        SELECT id, name, description, cost, max_level, type
        FROM upgrades
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying upgrades: %w", err)
	}
	defer rows.Close()

	var upgrades []models.Upgrade
	for rows.Next() {
		var u models.Upgrade
		if err := rows.Scan(&u.ID, &u.Name, &u.Description, &u.Cost, &u.MaxLevel, &u.Type); err != nil {
			return nil, fmt.Errorf("error scanning upgrade: %w", err)
		}
		upgrades = append(upgrades, u)
	}
	return upgrades, rows.Err()
}
