package models

type ResourceType string

const (
	ResourceGrain        ResourceType = "grain"
	ResourceMeat         ResourceType = "meat"
	ResourceVegetables   ResourceType = "vegetables"
	ResourceFruit        ResourceType = "fruit"
	ResourceHops         ResourceType = "hops"
	ResourceGrapes       ResourceType = "grapes"
	ResourceMagicEssence ResourceType = "magic_essence"
)

// AllResources lists every resource in a stable order, used for iteration
// wherever map ordering would make output or tests nondeterministic.
var AllResources = []ResourceType{
	ResourceGrain,
	ResourceMeat,
	ResourceVegetables,
	ResourceFruit,
	ResourceHops,
	ResourceGrapes,
	ResourceMagicEssence,
}

// Inventory maps each resource to a non-negative stock count.
type Inventory map[ResourceType]int

func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for res, n := range inv {
		out[res] = n
	}
	return out
}

// Add adjusts the stock of res by delta, clamping at zero.
func (inv Inventory) Add(res ResourceType, delta int) {
	n := inv[res] + delta
	if n < 0 {
		n = 0
	}
	inv[res] = n
}

// PriceRange bounds the market price of a resource; the actual price is
// re-rolled uniformly within the range each morning.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}
