package tavern

import (
	"fmt"
	"math"

	"github.com/duskmantle/tavernsim/internal/models"
)

// StartMorning moves the game into the MORNING phase: the day-state is
// wiped (clock, customers, log, any open session), market prices are
// re-rolled, and with fixed probability a random event fires once against
// the fresh snapshot.
func (e *Engine) StartMorning(prev models.GameState) models.GameState {
	s := prev.Clone()
	s.Phase = models.PhaseMorning
	s.DayTime = 0
	s.Customers = s.Customers[:0]
	s.DailyLog = []string{}
	s.CookingSession = nil
	s.ActiveEvent = nil

	for _, res := range models.AllResources {
		r := e.catalog.PriceRanges[res]
		s.MarketPrices[res] = r.Min + e.rng.Intn(r.Max-r.Min+1)
	}

	if len(e.catalog.Events) > 0 && e.rng.Float64() < models.EventChance {
		event := e.catalog.Events[e.rng.Intn(len(e.catalog.Events))]
		s.ActiveEvent = &event
		event.Apply(&s)
	}

	return s
}

// BeginDay flips MORNING into DAY. The caller is responsible for starting
// the tick schedule.
func (e *Engine) BeginDay(prev models.GameState) models.GameState {
	s := prev.Clone()
	s.Phase = models.PhaseDay
	return s
}

// AdvanceDay leaves the EVENING: the day counter increments, the phase
// resets to the pre-morning state, and the next morning starts
// immediately.
func (e *Engine) AdvanceDay(prev models.GameState) models.GameState {
	s := prev.Clone()
	s.Day++
	s.Phase = models.PhaseStart
	return e.StartMorning(s)
}

// PurchaseResource deducts the precomputed cost and adds the goods. There
// is no affordability re-check here; the caller gates the action on the
// quoted price, and gold may go negative if it does not.
func (e *Engine) PurchaseResource(prev models.GameState, res models.ResourceType, qty, cost int) models.GameState {
	s := prev.Clone()
	s.Gold -= cost
	s.Inventory.Add(res, qty)
	return s
}

// UpgradeCost quotes the price of the next level: base cost scaled by
// 1.5 per level already owned, floored.
func UpgradeCost(base, currentLevel int) int {
	return int(math.Floor(float64(base) * math.Pow(models.UpgradeCostGrowth, float64(currentLevel))))
}

// PurchaseUpgrade charges the level-scaled cost and raises the stored
// level. Capacity upgrades add two seats; speed and marketing levels are
// recorded but have no mechanical hook (see the upgrade catalog).
func (e *Engine) PurchaseUpgrade(prev models.GameState, upgradeID string) (models.GameState, bool) {
	upgrade, ok := e.catalog.UpgradeByID(upgradeID)
	if !ok {
		return prev, false
	}
	s := prev.Clone()
	level := s.UpgradeLevels[upgradeID]
	s.Gold -= UpgradeCost(upgrade.Cost, level)
	s.UpgradeLevels[upgradeID] = level + 1
	if upgrade.Type == models.UpgradeCapacity {
		s.Capacity += models.CapacityPerLevel
	}
	s.DailyLog = append(s.DailyLog, fmt.Sprintf("Upgrade purchased: %s", upgrade.Name))
	return s, true
}
