package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneIsDeep(t *testing.T) {
	s := GameState{
		Gold:      100,
		Inventory: Inventory{ResourceGrain: 5},
		Customers: []Customer{{ID: "c1", Name: "Grog", Patience: 50}},
		UpgradeLevels: map[string]int{
			"tables": 1,
		},
		DailyLog: []string{"opening"},
		CookingSession: &CookingSession{
			CustomerID:       "c1",
			AddedIngredients: map[ResourceType]int{ResourceGrain: 1},
		},
		MarketPrices: map[ResourceType]int{ResourceGrain: 3},
	}

	c := s.Clone()
	c.Inventory[ResourceGrain] = 99
	c.Customers[0].Patience = 0
	c.UpgradeLevels["tables"] = 5
	c.DailyLog = append(c.DailyLog, "later")
	c.CookingSession.AddedIngredients[ResourceGrain] = 9
	c.MarketPrices[ResourceGrain] = 1

	assert.Equal(t, 5, s.Inventory[ResourceGrain])
	assert.Equal(t, 50.0, s.Customers[0].Patience)
	assert.Equal(t, 1, s.UpgradeLevels["tables"])
	assert.Len(t, s.DailyLog, 1)
	assert.Equal(t, 1, s.CookingSession.AddedIngredients[ResourceGrain])
	assert.Equal(t, 3, s.MarketPrices[ResourceGrain])
}

func TestCloneNilSession(t *testing.T) {
	s := GameState{}
	assert.Nil(t, s.Clone().CookingSession)
}

func TestAddFameClamps(t *testing.T) {
	s := GameState{Fame: 5}

	s.AddFame(-10)
	assert.Equal(t, 0, s.Fame)

	s.AddFame(150)
	assert.Equal(t, FameMax, s.Fame)

	s.AddFame(-1)
	assert.Equal(t, FameMax-1, s.Fame)
}

func TestInventoryAddClampsAtZero(t *testing.T) {
	inv := Inventory{ResourceMeat: 3}

	inv.Add(ResourceMeat, -5)
	assert.Equal(t, 0, inv[ResourceMeat])

	inv.Add(ResourceMeat, 2)
	assert.Equal(t, 2, inv[ResourceMeat])
}

func TestFindCustomer(t *testing.T) {
	s := GameState{Customers: []Customer{{ID: "a"}, {ID: "b"}}}

	require.Equal(t, 1, s.FindCustomer("b"))
	assert.Equal(t, -1, s.FindCustomer("z"))
}
