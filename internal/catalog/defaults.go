package catalog

import "github.com/duskmantle/tavernsim/internal/models"

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		MenuItems:   defaultMenuItems(),
		Upgrades:    defaultUpgrades(),
		HeroNames:   defaultHeroNames(),
		Events:      defaultEvents(),
		PriceRanges: defaultPriceRanges(),
	}
}

func defaultMenuItems() []models.MenuItem {
	grain := models.ResourceGrain
	meat := models.ResourceMeat
	veg := models.ResourceVegetables
	fruit := models.ResourceFruit
	hops := models.ResourceHops
	grapes := models.ResourceGrapes
	essence := models.ResourceMagicEssence

	return []models.MenuItem{
		// Starters
		{ID: "s1", Name: "Stale Bread", Category: models.CategoryStarter, Price: 5, Cost: map[models.ResourceType]int{grain: 1}, FameRequirement: 0},
		{ID: "s2", Name: "Onion Soup", Category: models.CategoryStarter, Price: 8, Cost: map[models.ResourceType]int{veg: 2}, FameRequirement: 5},
		{ID: "s3", Name: "Garlic Toast", Category: models.CategoryStarter, Price: 10, Cost: map[models.ResourceType]int{grain: 1, veg: 1}, FameRequirement: 10},
		{ID: "s4", Name: "Boiled Egg", Category: models.CategoryStarter, Price: 6, Cost: map[models.ResourceType]int{meat: 1}, FameRequirement: 0},
		{ID: "s5", Name: "Light Salad", Category: models.CategoryStarter, Price: 9, Cost: map[models.ResourceType]int{veg: 2}, FameRequirement: 5},
		{ID: "s6", Name: "Bone Broth", Category: models.CategoryStarter, Price: 12, Cost: map[models.ResourceType]int{meat: 2}, FameRequirement: 15},
		{ID: "s7", Name: "Cheese Platter", Category: models.CategoryStarter, Price: 15, Cost: map[models.ResourceType]int{meat: 1, fruit: 1}, FameRequirement: 20},

		// Mains
		{ID: "m1", Name: "Rat Stew", Category: models.CategoryMain, Price: 15, Cost: map[models.ResourceType]int{meat: 1, veg: 1}, FameRequirement: 0},
		{ID: "m2", Name: "Roast Chicken", Category: models.CategoryMain, Price: 25, Cost: map[models.ResourceType]int{meat: 2}, FameRequirement: 10},
		{ID: "m3", Name: "Vegetable Pie", Category: models.CategoryMain, Price: 20, Cost: map[models.ResourceType]int{grain: 2, veg: 2}, FameRequirement: 15},
		{ID: "m4", Name: "Boar Steak", Category: models.CategoryMain, Price: 35, Cost: map[models.ResourceType]int{meat: 3}, FameRequirement: 25},
		{ID: "m5", Name: "Fish and Chips", Category: models.CategoryMain, Price: 30, Cost: map[models.ResourceType]int{meat: 2, veg: 1}, FameRequirement: 20},
		{ID: "m6", Name: "Dragon Chili", Category: models.CategoryMain, Price: 50, Cost: map[models.ResourceType]int{meat: 3, essence: 1}, FameRequirement: 40},
		{ID: "m7", Name: "King's Feast", Category: models.CategoryMain, Price: 80, Cost: map[models.ResourceType]int{meat: 4, veg: 2, fruit: 1}, FameRequirement: 60},

		// Desserts
		{ID: "d1", Name: "Apple", Category: models.CategoryDessert, Price: 5, Cost: map[models.ResourceType]int{fruit: 1}, FameRequirement: 0},
		{ID: "d2", Name: "Honey Cake", Category: models.CategoryDessert, Price: 15, Cost: map[models.ResourceType]int{grain: 1, fruit: 1}, FameRequirement: 10},
		{ID: "d3", Name: "Berry Tart", Category: models.CategoryDessert, Price: 18, Cost: map[models.ResourceType]int{grain: 1, fruit: 2}, FameRequirement: 15},
		{ID: "d4", Name: "Sweet Roll", Category: models.CategoryDessert, Price: 12, Cost: map[models.ResourceType]int{grain: 2}, FameRequirement: 5},
		{ID: "d5", Name: "Fruit Salad", Category: models.CategoryDessert, Price: 14, Cost: map[models.ResourceType]int{fruit: 2}, FameRequirement: 10},
		{ID: "d6", Name: "Pudding", Category: models.CategoryDessert, Price: 20, Cost: map[models.ResourceType]int{grain: 1, essence: 1}, FameRequirement: 30},
		{ID: "d7", Name: "Ambrosia", Category: models.CategoryDessert, Price: 45, Cost: map[models.ResourceType]int{fruit: 3, essence: 1}, FameRequirement: 50},

		// Drinks
		{ID: "dr1", Name: "Murky Water", Category: models.CategoryDrink, Price: 2, Cost: map[models.ResourceType]int{}, FameRequirement: 0},
		{ID: "dr2", Name: "Cheap Ale", Category: models.CategoryDrink, Price: 8, Cost: map[models.ResourceType]int{hops: 1}, FameRequirement: 0},
		{ID: "dr3", Name: "House Wine", Category: models.CategoryDrink, Price: 12, Cost: map[models.ResourceType]int{grapes: 1}, FameRequirement: 10},
		{ID: "dr4", Name: "Mead", Category: models.CategoryDrink, Price: 15, Cost: map[models.ResourceType]int{hops: 1, fruit: 1}, FameRequirement: 15},
		{ID: "dr5", Name: "Dwarven Stout", Category: models.CategoryDrink, Price: 20, Cost: map[models.ResourceType]int{hops: 3}, FameRequirement: 25},
		{ID: "dr6", Name: "Elven Wine", Category: models.CategoryDrink, Price: 30, Cost: map[models.ResourceType]int{grapes: 3}, FameRequirement: 40},
		{ID: "dr7", Name: "Mana Potion", Category: models.CategoryDrink, Price: 50, Cost: map[models.ResourceType]int{essence: 2}, FameRequirement: 50},
	}
}

func defaultUpgrades() []models.Upgrade {
	return []models.Upgrade{
		{ID: "tables", Name: "Extra Tables", Description: "Seats two more customers", Cost: 100, MaxLevel: 5, Type: models.UpgradeCapacity},
		{ID: "kitchen", Name: "Kitchenware", Description: "Serves customers faster", Cost: 150, MaxLevel: 3, Type: models.UpgradeSpeed},
		{ID: "bard", Name: "Hire a Bard", Description: "Draws more customers", Cost: 200, MaxLevel: 3, Type: models.UpgradeMarketing},
	}
}

func defaultHeroNames() map[models.HeroClass][]string {
	return map[models.HeroClass][]string{
		models.ClassWarrior: {"Grog", "Bjorn", "Hilda", "Tormund", "Conan"},
		models.ClassMage:    {"Merlin", "Gandalf", "Jaina", "Medivh", "Yennefer"},
		models.ClassRogue:   {"Vax", "Garrett", "Loki", "Sombra", "Altair"},
		models.ClassCleric:  {"Moira", "Anduin", "Mercy", "Tyrande", "Cliff"},
	}
}

func defaultEvents() []models.GameEvent {
	return []models.GameEvent{
		{
			ID:          "bandits",
			Title:       "Bandit Raid!",
			Description: "Bandits intercepted your cart. You lost some meat and grain.",
			Apply: func(s *models.GameState) {
				s.Inventory.Add(models.ResourceMeat, -5)
				s.Inventory.Add(models.ResourceGrain, -5)
				s.DailyLog = append(s.DailyLog, "Bandits stole supplies!")
			},
		},
		{
			ID:          "festival",
			Title:       "Town Festival",
			Description: "The town is celebrating! The tavern's fame grows.",
			Apply: func(s *models.GameState) {
				s.AddFame(10)
				s.DailyLog = append(s.DailyLog, "The festival brought joy and fame.")
			},
		},
		{
			ID:          "rat_infestation",
			Title:       "Rat Infestation",
			Description: "Rats ate the vegetables. Hygiene suffered (fame -5).",
			Apply: func(s *models.GameState) {
				s.AddFame(-5)
				s.Inventory.Add(models.ResourceVegetables, -5)
				s.DailyLog = append(s.DailyLog, "Rats overran the kitchen.")
			},
		},
		{
			ID:          "noble_visit",
			Title:       "A Noble's Visit",
			Description: "A wealthy noble left a generous tip.",
			Apply: func(s *models.GameState) {
				s.Gold += 50
				s.DailyLog = append(s.DailyLog, "A noble donated 50 gold.")
			},
		},
	}
}

func defaultPriceRanges() map[models.ResourceType]models.PriceRange {
	return map[models.ResourceType]models.PriceRange{
		models.ResourceGrain:        {Min: 2, Max: 5},
		models.ResourceMeat:         {Min: 5, Max: 10},
		models.ResourceVegetables:   {Min: 3, Max: 6},
		models.ResourceFruit:        {Min: 4, Max: 8},
		models.ResourceHops:         {Min: 3, Max: 7},
		models.ResourceGrapes:       {Min: 5, Max: 12},
		models.ResourceMagicEssence: {Min: 10, Max: 20},
	}
}
