package models

type GamePhase string

const (
	PhaseStart   GamePhase = "START"
	PhaseMorning GamePhase = "MORNING"
	PhaseDay     GamePhase = "DAY"
	PhaseEvening GamePhase = "EVENING"
	// PhaseGameOver is declared for completeness; no transition in the
	// core reaches it, there is no loss condition.
	PhaseGameOver GamePhase = "GAME_OVER"
)

// CookingSession is the single in-flight order-fulfillment transaction.
// At most one exists per snapshot.
type CookingSession struct {
	CustomerID       string               `json:"customer_id"`
	TargetItem       MenuItem             `json:"target_item"`
	AddedIngredients map[ResourceType]int `json:"added_ingredients"`
}

func (cs *CookingSession) Clone() *CookingSession {
	if cs == nil {
		return nil
	}
	out := *cs
	out.AddedIngredients = make(map[ResourceType]int, len(cs.AddedIngredients))
	for res, n := range cs.AddedIngredients {
		out.AddedIngredients[res] = n
	}
	return &out
}

// Ready reports whether every resource the target recipe requires has been
// accumulated in at least the required amount. Completion is not gated on
// this; callers decide when to invoke it.
func (cs *CookingSession) Ready() bool {
	for res, need := range cs.TargetItem.Cost {
		if cs.AddedIngredients[res] < need {
			return false
		}
	}
	return true
}

// GameState is the single root snapshot. All mutation goes through cloning:
// a tick or command clones the current snapshot, edits the clone and
// publishes it, so no snapshot is ever aliased across steps.
type GameState struct {
	Day            int                  `json:"day"`
	Phase          GamePhase            `json:"phase"`
	Gold           int                  `json:"gold"`
	Fame           int                  `json:"fame"` // clamped to [0, 100]
	Inventory      Inventory            `json:"inventory"`
	Capacity       int                  `json:"capacity"`
	Customers      []Customer           `json:"customers"`
	UpgradeLevels  map[string]int       `json:"upgrade_levels"`
	ActiveEvent    *GameEvent           `json:"active_event,omitempty"`
	DayTime        float64              `json:"day_time"` // 0..100 fraction of the day
	DailyLog       []string             `json:"daily_log"`
	CookingSession *CookingSession      `json:"cooking_session,omitempty"`
	MarketPrices   map[ResourceType]int `json:"market_prices"`
}

func (s GameState) Clone() GameState {
	out := s
	out.Inventory = s.Inventory.Clone()
	out.Customers = make([]Customer, len(s.Customers))
	for i, c := range s.Customers {
		out.Customers[i] = c.Clone()
	}
	out.UpgradeLevels = make(map[string]int, len(s.UpgradeLevels))
	for id, lvl := range s.UpgradeLevels {
		out.UpgradeLevels[id] = lvl
	}
	out.DailyLog = append([]string(nil), s.DailyLog...)
	out.CookingSession = s.CookingSession.Clone()
	out.MarketPrices = make(map[ResourceType]int, len(s.MarketPrices))
	for res, p := range s.MarketPrices {
		out.MarketPrices[res] = p
	}
	return out
}

// FindCustomer returns the index of the customer with the given id, or -1.
func (s *GameState) FindCustomer(id string) int {
	for i := range s.Customers {
		if s.Customers[i].ID == id {
			return i
		}
	}
	return -1
}

// AddFame adjusts fame by delta, keeping it within [0, FameMax].
func (s *GameState) AddFame(delta int) {
	s.Fame += delta
	if s.Fame < 0 {
		s.Fame = 0
	}
	if s.Fame > FameMax {
		s.Fame = FameMax
	}
}
