package models

const (
	InitialGold     = 200
	InitialFame     = 10
	InitialCapacity = 4
	InitialStock    = 5 // starting count of every resource except magic essence

	FameMax = 100

	// Day-phase timing. One tick advances DayTime by TickStep; the day ends
	// when it reaches DayEnd.
	TickStep = 0.1
	DayEnd   = 100.0

	// Spawn chance per tick is SpawnBaseChance + fame/SpawnFameDivisor,
	// capped at 1.0, and only while fewer than MaxActiveCustomers are in.
	SpawnBaseChance    = 0.02
	SpawnFameDivisor   = 1000.0
	MaxActiveCustomers = 10

	// Patience decay per tick by status.
	DecayWaiting     = 0.2
	DecaySeatedReady = 0.3
	DecayBaseline    = 0.1
	DecayEatingExtra = 0.9 // on top of baseline: eating drains 1.0/tick

	CustomerPatience = 100.0
	EatingDuration   = 50.0 // patience value set when served; ~50 ticks to eat

	FamePenaltyCrowded = 1
	FamePenaltyIgnored = 3

	EventChance       = 0.3
	UpgradeCostGrowth = 1.5
	CapacityPerLevel  = 2
)
