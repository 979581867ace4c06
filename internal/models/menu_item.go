package models

type ItemCategory string

const (
	CategoryStarter ItemCategory = "starter"
	CategoryMain    ItemCategory = "main"
	CategoryDessert ItemCategory = "dessert"
	CategoryDrink   ItemCategory = "drink"
)

// MenuItem is a static catalog entry; the catalog is loaded once and
// read-only thereafter.
type MenuItem struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Category        ItemCategory         `json:"category"`
	Price           int                  `json:"price"` // selling price in gold
	Cost            map[ResourceType]int `json:"cost"`  // recipe: resource -> required count
	FameRequirement int                  `json:"fame_requirement"`
}
