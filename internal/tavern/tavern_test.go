package tavern

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/duskmantle/tavernsim/internal/catalog"
	"github.com/duskmantle/tavernsim/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTavern(rng Rand, output OutputDestination) *Tavern {
	cat := catalog.Default()
	engine := NewEngine(rng, &stubCustomers{}, cat)
	return New(testConfig(), engine, cat, output)
}

func TestSnapshotIsIsolatedFromLiveState(t *testing.T) {
	tav := newTestTavern(&scriptedRand{}, nil)

	snap := tav.Snapshot()
	snap.Gold = 0
	snap.Inventory[models.ResourceGrain] = 999
	snap.UpgradeLevels["tables"] = 9

	again := tav.Snapshot()
	assert.Equal(t, models.InitialGold, again.Gold)
	assert.Equal(t, models.InitialStock, again.Inventory[models.ResourceGrain])
	assert.Zero(t, again.UpgradeLevels["tables"])
}

func TestCommandsRejectedWithoutSession(t *testing.T) {
	tav := newTestTavern(&scriptedRand{}, nil)

	assert.False(t, tav.SelectCustomer("nobody"))
	assert.False(t, tav.AddCookingIngredient(models.ResourceGrain))
	assert.False(t, tav.ConfirmCookingComplete())
	assert.False(t, tav.CancelCooking())
}

func TestBeginMorningRollsPrices(t *testing.T) {
	tav := newTestTavern(&scriptedRand{floats: []float64{0.9}}, nil)

	tav.BeginMorning()

	s := tav.Snapshot()
	assert.Equal(t, models.PhaseMorning, s.Phase)
	for res := range tav.Catalog.PriceRanges {
		assert.Positive(t, s.MarketPrices[res], "price for %s", res)
	}
}

func TestConfirmCookingEmitsDishServed(t *testing.T) {
	out := &memoryOutput{}
	tav := newTestTavern(&scriptedRand{}, out)

	target := menuItemByID("m1")
	tav.state.Phase = models.PhaseDay
	tav.state.Customers = append(tav.state.Customers, seated("c1", "Grog", models.ClassWarrior, 0, 60))
	tav.state.CookingSession = &models.CookingSession{
		CustomerID: "c1",
		TargetItem: target,
		AddedIngredients: map[models.ResourceType]int{
			models.ResourceMeat:       1,
			models.ResourceVegetables: 1,
		},
	}

	require.True(t, tav.ConfirmCookingComplete())

	msgs := out.byTopic(TopicServiceEvents)
	require.Len(t, msgs, 1)
	var event ServiceEvent
	require.NoError(t, json.Unmarshal(msgs[0].Message, &event))
	assert.Equal(t, EventDishServed, event.EventType)
	assert.Equal(t, "c1", event.CustomerID)
	assert.Equal(t, "Rat Stew", event.ItemName)
	assert.Equal(t, target.Price, event.Price)

	s := tav.Snapshot()
	row := tav.DaySummary(&s)
	assert.Equal(t, int32(1), row.CustomersServed)
	assert.Equal(t, int64(target.Price), row.Revenue)
}

func TestConfirmCookingForVanishedCustomerEmitsNothing(t *testing.T) {
	out := &memoryOutput{}
	tav := newTestTavern(&scriptedRand{}, out)

	tav.state.Phase = models.PhaseDay
	tav.state.CookingSession = &models.CookingSession{
		CustomerID:       "ghost",
		TargetItem:       menuItemByID("m1"),
		AddedIngredients: map[models.ResourceType]int{},
	}

	require.True(t, tav.ConfirmCookingComplete())
	assert.Empty(t, out.byTopic(TopicServiceEvents))

	s := tav.Snapshot()
	row := tav.DaySummary(&s)
	assert.Zero(t, row.CustomersServed)
	assert.Zero(t, row.Revenue)
}

func TestPurchaseResourceEmitsEconomyEvent(t *testing.T) {
	out := &memoryOutput{}
	tav := newTestTavern(&scriptedRand{}, out)

	tav.PurchaseResource(models.ResourceMeat, 3, 21)

	msgs := out.byTopic(TopicEconomyEvents)
	require.Len(t, msgs, 1)
	var event EconomyEvent
	require.NoError(t, json.Unmarshal(msgs[0].Message, &event))
	assert.Equal(t, EventResourceBought, event.EventType)
	assert.Equal(t, "meat", event.Resource)
	assert.Equal(t, 3, event.Quantity)
	assert.Equal(t, 21, event.Cost)
	assert.Equal(t, models.InitialGold-21, event.Gold)
}

func TestBeginDaySimulationRunsToEvening(t *testing.T) {
	tav := newTestTavern(&scriptedRand{}, nil)
	tav.state.Phase = models.PhaseMorning
	tav.state.DayTime = models.DayEnd - 5*models.TickStep

	handle := tav.BeginDaySimulation()
	select {
	case <-handle.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("schedule did not stop at closing time")
	}

	s := tav.Snapshot()
	assert.Equal(t, models.PhaseEvening, s.Phase)
	assert.Equal(t, models.DayEnd, s.DayTime)
}

func TestStopSimulationIsIdempotent(t *testing.T) {
	tav := newTestTavern(&scriptedRand{}, nil)

	tav.StopSimulation() // nothing running yet

	tav.state.Phase = models.PhaseMorning
	handle := tav.BeginDaySimulation()
	tav.StopSimulation()
	tav.StopSimulation()

	select {
	case <-handle.Done():
	default:
		t.Fatal("handle should be done after StopSimulation")
	}
	require.NoError(t, tav.Close())
}
