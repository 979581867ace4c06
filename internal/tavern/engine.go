package tavern

import (
	"github.com/duskmantle/tavernsim/internal/catalog"
	"github.com/duskmantle/tavernsim/internal/models"
)

// Rand is the single random source the engine consumes. Spawn rolls, event
// rolls, recipe picks and market prices all draw from it, so a seeded
// *rand.Rand makes a whole run reproducible.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// CustomerSource produces new customers for the spawn step.
// *factories.CustomerFactory is the production implementation.
type CustomerSource interface {
	NextID(day int) string
	CreateCustomer(id string) models.Customer
}

// Engine holds the pure state-transition logic of the simulation. Every
// method takes the previous snapshot and returns a new one; rejected
// commands return the previous snapshot unchanged with applied=false.
type Engine struct {
	rng       Rand
	customers CustomerSource
	catalog   *catalog.Catalog
}

func NewEngine(rng Rand, customers CustomerSource, cat *catalog.Catalog) *Engine {
	return &Engine{rng: rng, customers: customers, catalog: cat}
}

// NewGame builds the day-one starting snapshot.
func (e *Engine) NewGame(cfg *models.Config) models.GameState {
	inv := make(models.Inventory, len(models.AllResources))
	for _, res := range models.AllResources {
		if res == models.ResourceMagicEssence {
			inv[res] = 0
			continue
		}
		inv[res] = cfg.InitialStock
	}

	return models.GameState{
		Day:           1,
		Phase:         models.PhaseStart,
		Gold:          cfg.InitialGold,
		Fame:          cfg.InitialFame,
		Inventory:     inv,
		Capacity:      cfg.InitialCapacity,
		Customers:     []models.Customer{},
		UpgradeLevels: map[string]int{},
		DailyLog:      []string{},
		MarketPrices:  map[models.ResourceType]int{},
	}
}
