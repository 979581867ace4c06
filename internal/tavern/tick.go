package tavern

import (
	"fmt"

	"github.com/duskmantle/tavernsim/internal/models"
)

// Tick advances the simulation by one step during the DAY phase: time
// moves forward, a customer may spawn, every active customer ages and
// transitions, and departed customers are swept out. The input snapshot is
// never modified.
func (e *Engine) Tick(prev models.GameState) models.GameState {
	s := prev.Clone()

	s.DayTime += models.TickStep
	if s.DayTime >= models.DayEnd {
		// Closing time: the day ends mid-service, any open cooking
		// session is thrown away with the ingredients already spent.
		s.DayTime = models.DayEnd
		s.Phase = models.PhaseEvening
		s.CookingSession = nil
		return s
	}

	e.spawnCustomer(&s)

	for i := range s.Customers {
		e.updateCustomer(&s, &s.Customers[i])
	}

	kept := s.Customers[:0]
	for _, c := range s.Customers {
		if c.Status != models.CustomerLeaving {
			kept = append(kept, c)
		}
	}
	s.Customers = kept

	return s
}

// SpawnChance is the per-tick probability of a new customer arriving,
// rising with fame and capped at certainty.
func SpawnChance(fame int) float64 {
	chance := models.SpawnBaseChance + float64(fame)/models.SpawnFameDivisor
	if chance > 1.0 {
		chance = 1.0
	}
	return chance
}

func (e *Engine) spawnCustomer(s *models.GameState) {
	if len(s.Customers) >= models.MaxActiveCustomers {
		return
	}
	if e.rng.Float64() >= SpawnChance(s.Fame) {
		return
	}
	id := e.customers.NextID(s.Day)
	s.Customers = append(s.Customers, e.customers.CreateCustomer(id))
}

func (e *Engine) updateCustomer(s *models.GameState, c *models.Customer) {
	if c.Status != models.CustomerLeaving {
		c.Patience -= patienceDecay(c.Status)
	}

	switch c.Status {
	case models.CustomerWaiting:
		if c.SeatIndex != -1 {
			return
		}
		if seat := firstFreeSeat(s); seat != -1 {
			c.SeatIndex = seat
			c.Status = models.CustomerSeatedReady
			c.BubbleText = "Menu, please!"
			// Getting a table restores goodwill; the countdown restarts.
			c.Patience = models.CustomerPatience
			c.MaxPatience = models.CustomerPatience
		} else if c.Patience <= 0 {
			// Queue departures are silent: a small fame hit, no log entry.
			c.Status = models.CustomerLeaving
			c.BubbleText = "Too crowded!"
			s.AddFame(-models.FamePenaltyCrowded)
		}

	case models.CustomerSeatedReady:
		if c.Patience <= 0 {
			c.Status = models.CustomerLeaving
			c.BubbleText = "Ignored?! I'm leaving!"
			s.AddFame(-models.FamePenaltyIgnored)
			s.DailyLog = append(s.DailyLog, fmt.Sprintf("%s left unserved.", c.Name))
			if s.CookingSession != nil && s.CookingSession.CustomerID == c.ID {
				s.CookingSession = nil
			}
		}

	case models.CustomerEating:
		// Patience doubles as the remaining eating time here; the extra
		// drain makes a serving last ~50 ticks.
		c.Patience -= models.DecayEatingExtra
		if c.Patience <= 0 {
			c.Status = models.CustomerLeaving
			c.BubbleText = "Delicious!"
		}
	}
}

func patienceDecay(status models.CustomerStatus) float64 {
	switch status {
	case models.CustomerWaiting:
		return models.DecayWaiting
	case models.CustomerSeatedReady:
		return models.DecaySeatedReady
	default:
		return models.DecayBaseline
	}
}

// firstFreeSeat scans seats in ascending order and returns the first index
// not held by a non-leaving customer, or -1 when the house is full.
func firstFreeSeat(s *models.GameState) int {
	for seat := 0; seat < s.Capacity; seat++ {
		taken := false
		for i := range s.Customers {
			if s.Customers[i].SeatIndex == seat && s.Customers[i].Status != models.CustomerLeaving {
				taken = true
				break
			}
		}
		if !taken {
			return seat
		}
	}
	return -1
}
