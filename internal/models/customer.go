package models

type HeroClass string

const (
	ClassWarrior HeroClass = "Warrior"
	ClassMage    HeroClass = "Mage"
	ClassRogue   HeroClass = "Rogue"
	ClassCleric  HeroClass = "Cleric"
)

var AllHeroClasses = []HeroClass{ClassWarrior, ClassMage, ClassRogue, ClassCleric}

type CustomerStatus string

const (
	CustomerWaiting     CustomerStatus = "waiting"
	CustomerSeatedReady CustomerStatus = "seated_ready"
	CustomerEating      CustomerStatus = "eating"
	CustomerLeaving     CustomerStatus = "leaving"
)

// Customer is a per-day entity mutated by the tick engine. SeatIndex -1
// means queued and unseated. While eating, Patience doubles as the ticks
// left until the customer is done.
type Customer struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	HeroClass   HeroClass      `json:"hero_class"`
	Order       *MenuItem      `json:"order,omitempty"`
	Status      CustomerStatus `json:"status"`
	Patience    float64        `json:"patience"`
	MaxPatience float64        `json:"max_patience"`
	SeatIndex   int            `json:"seat_index"`
	BubbleText  string         `json:"bubble_text,omitempty"`
}

func (c Customer) Clone() Customer {
	out := c
	if c.Order != nil {
		order := *c.Order
		out.Order = &order
	}
	return out
}
