package tavern

import (
	"fmt"
	"testing"

	"github.com/duskmantle/tavernsim/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnChance(t *testing.T) {
	assert.InDelta(t, 0.03, SpawnChance(10), 1e-9)
	assert.InDelta(t, 0.02, SpawnChance(0), 1e-9)
	assert.InDelta(t, 0.12, SpawnChance(100), 1e-9)
	assert.Equal(t, 1.0, SpawnChance(100000))
}

func TestTickSpawnsAndSeatsCustomer(t *testing.T) {
	e := newTestEngine(&scriptedRand{floats: []float64{0.0}})
	prev := dayState(e)

	next := e.Tick(prev)

	require.Len(t, next.Customers, 1)
	c := next.Customers[0]
	assert.Equal(t, "cust_1_1", c.ID)
	// A free house seats the newcomer on the same tick, resetting the
	// patience countdown.
	assert.Equal(t, models.CustomerSeatedReady, c.Status)
	assert.Equal(t, 0, c.SeatIndex)
	assert.Equal(t, models.CustomerPatience, c.Patience)
	assert.Equal(t, models.CustomerPatience, c.MaxPatience)

	assert.Empty(t, prev.Customers, "input snapshot must stay untouched")
}

func TestTickNoSpawnAtCapacityLimit(t *testing.T) {
	e := newTestEngine(&scriptedRand{floats: []float64{0.0}})
	prev := dayState(e)
	for i := 0; i < models.MaxActiveCustomers; i++ {
		prev.Customers = append(prev.Customers, seated(
			fmt.Sprintf("s%d", i), "Grog", models.ClassWarrior, i%prev.Capacity, 80))
	}

	next := e.Tick(prev)

	assert.Len(t, next.Customers, models.MaxActiveCustomers)
	assert.Equal(t, -1, next.FindCustomer("cust_1_1"))
}

func TestWaitingCustomerStaysQueuedWhenHouseFull(t *testing.T) {
	e := newTestEngine(&scriptedRand{})
	prev := dayState(e)
	for i := 0; i < prev.Capacity; i++ {
		prev.Customers = append(prev.Customers, seated(
			"s"+string(rune('0'+i)), "Grog", models.ClassWarrior, i, 80))
	}
	waiting := (&stubCustomers{}).CreateCustomer("queued")
	waiting.Patience = 50
	prev.Customers = append(prev.Customers, waiting)

	next := e.Tick(prev)

	idx := next.FindCustomer("queued")
	require.NotEqual(t, -1, idx)
	assert.Equal(t, models.CustomerWaiting, next.Customers[idx].Status)
	assert.Equal(t, -1, next.Customers[idx].SeatIndex)
	assert.InDelta(t, 50-models.DecayWaiting, next.Customers[idx].Patience, 1e-9)
}

func TestCrowdedDepartureIsSilent(t *testing.T) {
	e := newTestEngine(&scriptedRand{})
	prev := dayState(e)
	prev.Capacity = 0
	waiting := (&stubCustomers{}).CreateCustomer("queued")
	waiting.Patience = 0.1
	prev.Customers = append(prev.Customers, waiting)

	next := e.Tick(prev)

	assert.Equal(t, -1, next.FindCustomer("queued"))
	assert.Equal(t, prev.Fame-models.FamePenaltyCrowded, next.Fame)
	assert.Empty(t, next.DailyLog, "queue departures do not log")
}

func TestIgnoredSeatedCustomerLeavesLoudly(t *testing.T) {
	e := newTestEngine(&scriptedRand{})
	prev := dayState(e)
	prev.Customers = append(prev.Customers, seated("c1", "Hilda", models.ClassWarrior, 0, 0.05))
	prev.CookingSession = &models.CookingSession{
		CustomerID:       "c1",
		TargetItem:       menuItemByID("m1"),
		AddedIngredients: map[models.ResourceType]int{},
	}

	next := e.Tick(prev)

	assert.Equal(t, -1, next.FindCustomer("c1"))
	assert.Equal(t, prev.Fame-models.FamePenaltyIgnored, next.Fame)
	require.Len(t, next.DailyLog, 1)
	assert.Equal(t, "Hilda left unserved.", next.DailyLog[0])
	assert.Nil(t, next.CookingSession, "session for the departed customer is discarded")
}

func TestSeatAssignmentIsStableAndExclusive(t *testing.T) {
	e := newTestEngine(&scriptedRand{})
	prev := dayState(e)
	src := &stubCustomers{}
	prev.Customers = append(prev.Customers, src.CreateCustomer("a"), src.CreateCustomer("b"))

	next := e.Tick(prev)

	require.Len(t, next.Customers, 2)
	assert.Equal(t, 0, next.Customers[0].SeatIndex)
	assert.Equal(t, 1, next.Customers[1].SeatIndex)

	// Seats do not shuffle on later ticks.
	again := e.Tick(next)
	assert.Equal(t, 0, again.Customers[0].SeatIndex)
	assert.Equal(t, 1, again.Customers[1].SeatIndex)
}

func TestEatingCustomerFinishesAndLeaves(t *testing.T) {
	e := newTestEngine(&scriptedRand{})
	prev := dayState(e)
	eater := seated("c1", "Merlin", models.ClassMage, 0, 0.5)
	eater.Status = models.CustomerEating
	prev.Customers = append(prev.Customers, eater)

	next := e.Tick(prev)

	assert.Equal(t, -1, next.FindCustomer("c1"))
	assert.Equal(t, prev.Fame, next.Fame, "finishing a meal carries no penalty")
	assert.Empty(t, next.DailyLog)
}

func TestDayEndsAtClosingTime(t *testing.T) {
	e := newTestEngine(&scriptedRand{floats: []float64{0.0}})
	prev := dayState(e)
	prev.DayTime = models.DayEnd - models.TickStep/2
	prev.Customers = append(prev.Customers, seated("c1", "Grog", models.ClassWarrior, 0, 80))
	prev.CookingSession = &models.CookingSession{
		CustomerID:       "c1",
		TargetItem:       menuItemByID("m1"),
		AddedIngredients: map[models.ResourceType]int{},
	}

	next := e.Tick(prev)

	assert.Equal(t, models.PhaseEvening, next.Phase)
	assert.Equal(t, models.DayEnd, next.DayTime)
	assert.Nil(t, next.CookingSession, "ingredients in the pot are lost at closing")
	// Closing skips the spawn and aging steps entirely.
	require.Len(t, next.Customers, 1)
	assert.Equal(t, 80.0, next.Customers[0].Patience)
}
