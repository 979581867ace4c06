package tavern

import (
	"time"

	"github.com/duskmantle/tavernsim/internal/models"
)

// Keeper is a simple autoplay policy standing in for the presentation
// layer: it issues the same intents a player would (buy stock, pick a
// customer, add ingredients, confirm or cancel, buy upgrades) against the
// controller's public command surface.
type Keeper struct {
	RestockTarget  int
	UpgradeReserve float64
}

func NewKeeper(cfg *models.Config) *Keeper {
	return &Keeper{
		RestockTarget:  cfg.RestockTarget,
		UpgradeReserve: cfg.UpgradeReserve,
	}
}

// Restock tops every resource up to the target level at the morning
// market, most expensive goods last, stopping before gold would go
// negative (the engine itself would let it).
func (k *Keeper) Restock(t *Tavern) {
	s := t.Snapshot()
	gold := s.Gold
	for _, res := range models.AllResources {
		want := k.RestockTarget - s.Inventory[res]
		if want <= 0 {
			continue
		}
		price := s.MarketPrices[res]
		if price <= 0 {
			continue
		}
		if affordable := gold / price; affordable < want {
			want = affordable
		}
		if want <= 0 {
			continue
		}
		cost := want * price
		t.PurchaseResource(res, want, cost)
		gold -= cost
	}
}

// ServeDay runs the day-phase service loop until the schedule ends,
// acting at the tick cadence so every intent lands between ticks.
func (k *Keeper) ServeDay(t *Tavern, handle *ScheduleHandle) {
	ticker := time.NewTicker(t.Config.TickRate)
	defer ticker.Stop()
	for {
		select {
		case <-handle.Done():
			return
		case <-ticker.C:
			k.serveOnce(t)
		}
	}
}

func (k *Keeper) serveOnce(t *Tavern) {
	s := t.Snapshot()
	if s.Phase != models.PhaseDay {
		return
	}

	if s.CookingSession == nil {
		for i := range s.Customers {
			if s.Customers[i].Status == models.CustomerSeatedReady {
				t.SelectCustomer(s.Customers[i].ID)
				return
			}
		}
		return
	}

	session := s.CookingSession
	if session.Ready() {
		t.ConfirmCookingComplete()
		return
	}
	for _, res := range models.AllResources {
		need := session.TargetItem.Cost[res]
		if session.AddedIngredients[res] >= need {
			continue
		}
		if s.Inventory[res] > 0 {
			t.AddCookingIngredient(res)
		} else {
			// Out of stock for the recipe; give the ingredients back
			// and move on.
			t.CancelCooking()
		}
		return
	}
}

// SpendEvening buys the cheapest affordable upgrade below its max level,
// keeping a reserve of gold for the next market.
func (k *Keeper) SpendEvening(t *Tavern) {
	for {
		s := t.Snapshot()
		budget := int(float64(s.Gold) * (1 - k.UpgradeReserve))

		bestID := ""
		bestCost := 0
		for _, u := range t.Catalog.Upgrades {
			level := s.UpgradeLevels[u.ID]
			if level >= u.MaxLevel {
				continue
			}
			cost := UpgradeCost(u.Cost, level)
			if cost > budget {
				continue
			}
			if bestID == "" || cost < bestCost {
				bestID = u.ID
				bestCost = cost
			}
		}
		if bestID == "" {
			return
		}
		if !t.PurchaseUpgrade(bestID) {
			return
		}
	}
}
