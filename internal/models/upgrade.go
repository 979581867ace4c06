package models

type UpgradeType string

// Speed and marketing upgrades are defined in the catalog and their levels
// are tracked on purchase, but neither feeds a tick-engine parameter yet.
const (
	UpgradeCapacity  UpgradeType = "capacity"
	UpgradeSpeed     UpgradeType = "speed"
	UpgradeMarketing UpgradeType = "marketing"
)

// Upgrade is a static definition; the player's level per upgrade lives in
// GameState.UpgradeLevels.
type Upgrade struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Cost        int         `json:"cost"` // base cost, scaled by level on purchase
	MaxLevel    int         `json:"max_level"`
	Type        UpgradeType `json:"type"`
}
