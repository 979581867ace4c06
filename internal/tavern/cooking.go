package tavern

import (
	"fmt"

	"github.com/duskmantle/tavernsim/internal/models"
)

// BeginCooking opens a cooking session for a seated customer. The desired
// menu category follows the customer's class (mages take dessert, rogues
// take drink, everyone else a main); when the catalog has nothing in that
// category the whole menu is fair game. Rejected when a session is already
// open or the customer is missing or not seated_ready.
func (e *Engine) BeginCooking(prev models.GameState, customerID string) (models.GameState, bool) {
	if prev.CookingSession != nil {
		return prev, false
	}
	idx := prev.FindCustomer(customerID)
	if idx == -1 || prev.Customers[idx].Status != models.CustomerSeatedReady {
		return prev, false
	}

	desired := models.CategoryMain
	switch prev.Customers[idx].HeroClass {
	case models.ClassMage:
		desired = models.CategoryDessert
	case models.ClassRogue:
		desired = models.CategoryDrink
	}

	candidates := e.catalog.ItemsByCategory(desired)
	if len(candidates) == 0 {
		candidates = e.catalog.MenuItems
	}
	target := candidates[e.rng.Intn(len(candidates))]

	s := prev.Clone()
	s.CookingSession = &models.CookingSession{
		CustomerID:       customerID,
		TargetItem:       target,
		AddedIngredients: map[models.ResourceType]int{},
	}
	return s, true
}

// AddIngredient moves one unit of a resource from inventory into the open
// session. Over-adding past the recipe is allowed; running out of stock is
// the only rejection besides having no session.
func (e *Engine) AddIngredient(prev models.GameState, res models.ResourceType) (models.GameState, bool) {
	if prev.CookingSession == nil || prev.Inventory[res] <= 0 {
		return prev, false
	}
	s := prev.Clone()
	s.Inventory.Add(res, -1)
	s.CookingSession.AddedIngredients[res]++
	return s, true
}

// CompleteCooking serves the session's dish. Readiness is not enforced
// here; gating the confirm on CookingSession.Ready is the caller's job.
// If the customer has already gone the session is still cleared, but no
// gold or fame is granted and nothing is logged.
func (e *Engine) CompleteCooking(prev models.GameState) (models.GameState, bool) {
	if prev.CookingSession == nil {
		return prev, false
	}
	s := prev.Clone()
	target := s.CookingSession.TargetItem
	idx := s.FindCustomer(s.CookingSession.CustomerID)
	s.CookingSession = nil

	if idx == -1 {
		return s, true
	}

	c := &s.Customers[idx]
	order := target
	c.Order = &order
	c.Status = models.CustomerEating
	c.Patience = models.EatingDuration
	c.MaxPatience = models.EatingDuration
	c.BubbleText = fmt.Sprintf("Eating: %s", target.Name)

	s.Gold += target.Price
	s.AddFame(1)
	s.DailyLog = append(s.DailyLog, fmt.Sprintf("%s served: %s (+%dg)", c.Name, target.Name, target.Price))
	return s, true
}

// CancelCooking refunds every accumulated ingredient and closes the
// session. No penalty; cancelling with no session open is a no-op.
func (e *Engine) CancelCooking(prev models.GameState) (models.GameState, bool) {
	if prev.CookingSession == nil {
		return prev, false
	}
	s := prev.Clone()
	for res, amt := range s.CookingSession.AddedIngredients {
		s.Inventory.Add(res, amt)
	}
	s.CookingSession = nil
	return s, true
}
