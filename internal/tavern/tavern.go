package tavern

import (
	"log"
	"sync"
	"time"

	"github.com/duskmantle/tavernsim/internal/catalog"
	"github.com/duskmantle/tavernsim/internal/models"
)

// Tavern owns the current snapshot and serializes every mutation, ticks
// and player commands alike, through one mutex, so no two steps ever see
// the same snapshot concurrently (the single-writer model the engine
// assumes). Reducers stay pure; this is the only place state is published.
type Tavern struct {
	Config  *models.Config
	Catalog *catalog.Catalog

	engine *Engine
	output OutputDestination

	mu     sync.Mutex
	state  models.GameState
	handle *ScheduleHandle

	servedToday  int
	lostToday    int
	revenueToday int
	writeErrs    int
}

func New(cfg *models.Config, engine *Engine, cat *catalog.Catalog, output OutputDestination) *Tavern {
	return &Tavern{
		Config:  cfg,
		Catalog: cat,
		engine:  engine,
		output:  output,
		state:   engine.NewGame(cfg),
	}
}

// Snapshot returns a read-only copy of the current state. Callers can hold
// it as long as they like; it never aliases live data.
func (t *Tavern) Snapshot() models.GameState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Clone()
}

// ScheduleHandle owns one day's periodic tick schedule. Stop is
// unconditional and idempotent; Done closes when the loop has exited.
type ScheduleHandle struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func (h *ScheduleHandle) Stop() {
	h.once.Do(func() { close(h.stop) })
}

func (h *ScheduleHandle) Done() <-chan struct{} {
	return h.done
}

// BeginMorning enters the MORNING phase, re-rolling market prices and
// possibly a daily event.
func (t *Tavern) BeginMorning() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.servedToday = 0
	t.lostToday = 0
	t.revenueToday = 0
	t.state = t.engine.StartMorning(t.state)
	if t.state.ActiveEvent != nil {
		event := EconomyEvent{
			BaseEvent: t.baseEvent(EventDailyEvent, &t.state),
			EventID:   t.state.ActiveEvent.ID,
			Gold:      t.state.Gold,
			Fame:      t.state.Fame,
		}
		t.emit(TopicEconomyEvents, event)
	}
}

// BeginDaySimulation flips into the DAY phase and starts the periodic tick
// schedule. The returned handle is also stored on the controller, so both
// the caller and Close can stop it.
func (t *Tavern) BeginDaySimulation() *ScheduleHandle {
	t.mu.Lock()
	t.state = t.engine.BeginDay(t.state)
	handle := &ScheduleHandle{stop: make(chan struct{}), done: make(chan struct{})}
	t.handle = handle
	t.mu.Unlock()

	go t.runSchedule(handle)
	return handle
}

func (t *Tavern) runSchedule(h *ScheduleHandle) {
	defer close(h.done)
	ticker := time.NewTicker(t.Config.TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-h.stop:
			return
		case <-ticker.C:
			if !t.stepTick() {
				h.Stop()
				return
			}
		}
	}
}

// stepTick runs one tick against the latest snapshot and streams what
// changed. Returns false once the phase has left DAY.
func (t *Tavern) stepTick() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state.Phase != models.PhaseDay {
		return false
	}

	prev := t.state
	next := t.engine.Tick(prev)
	t.state = next

	t.emitTickDiff(&prev, &next)

	if next.Phase == models.PhaseEvening {
		t.emitDaySummary(&next)
		return false
	}
	return true
}

func (t *Tavern) emitTickDiff(prev, next *models.GameState) {
	for i := range next.Customers {
		c := &next.Customers[i]
		if prev.FindCustomer(c.ID) == -1 {
			t.emit(TopicCustomerEvents, CustomerEvent{
				BaseEvent:  t.baseEvent(EventCustomerArrived, next),
				CustomerID: c.ID,
				Name:       c.Name,
				HeroClass:  string(c.HeroClass),
				Status:     string(c.Status),
				SeatIndex:  c.SeatIndex,
			})
		}
	}
	for i := range prev.Customers {
		c := &prev.Customers[i]
		if next.FindCustomer(c.ID) == -1 {
			if c.Status != models.CustomerEating {
				t.lostToday++
			}
			t.emit(TopicCustomerEvents, CustomerEvent{
				BaseEvent:  t.baseEvent(EventCustomerDeparted, next),
				CustomerID: c.ID,
				Name:       c.Name,
				HeroClass:  string(c.HeroClass),
				Status:     string(c.Status),
				SeatIndex:  c.SeatIndex,
			})
		}
	}
	for _, line := range next.DailyLog[len(prev.DailyLog):] {
		t.emit(TopicServiceEvents, ServiceEvent{
			BaseEvent: t.baseEvent(EventLogLine, next),
			Message:   line,
		})
	}
}

func (t *Tavern) emitDaySummary(s *models.GameState) {
	t.emit(TopicDaySummaries, t.DaySummary(s))
}

// DaySummary snapshots the day's totals in the report row format.
func (t *Tavern) DaySummary(s *models.GameState) DaySummaryEvent {
	return DaySummaryEvent{
		Timestamp:       time.Now().Unix(),
		EventType:       EventDaySummary,
		Tavern:          t.Config.TavernName,
		Day:             int32(s.Day),
		Gold:            int64(s.Gold),
		Fame:            int32(s.Fame),
		CustomersServed: int32(t.servedToday),
		CustomersLost:   int32(t.lostToday),
		Revenue:         int64(t.revenueToday),
	}
}

// AdvanceToNextDay leaves the EVENING and rolls straight into the next
// morning.
func (t *Tavern) AdvanceToNextDay() {
	t.StopSimulation()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.servedToday = 0
	t.lostToday = 0
	t.revenueToday = 0
	t.state = t.engine.AdvanceDay(t.state)
	if event := t.state.ActiveEvent; event != nil {
		t.emit(TopicEconomyEvents, EconomyEvent{
			BaseEvent: t.baseEvent(EventDailyEvent, &t.state),
			EventID:   event.ID,
			Gold:      t.state.Gold,
			Fame:      t.state.Fame,
		})
	}
}

// PurchaseResource buys qty units at the quoted total cost.
func (t *Tavern) PurchaseResource(res models.ResourceType, qty, cost int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = t.engine.PurchaseResource(t.state, res, qty, cost)
	t.emit(TopicEconomyEvents, EconomyEvent{
		BaseEvent: t.baseEvent(EventResourceBought, &t.state),
		Resource:  string(res),
		Quantity:  qty,
		Cost:      cost,
		Gold:      t.state.Gold,
		Fame:      t.state.Fame,
	})
}

// PurchaseUpgrade buys the next level of an upgrade by id.
func (t *Tavern) PurchaseUpgrade(upgradeID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	next, applied := t.engine.PurchaseUpgrade(t.state, upgradeID)
	if !applied {
		return false
	}
	t.state = next
	t.emit(TopicEconomyEvents, EconomyEvent{
		BaseEvent: t.baseEvent(EventUpgradeBought, &t.state),
		UpgradeID: upgradeID,
		Gold:      t.state.Gold,
		Fame:      t.state.Fame,
	})
	return true
}

// SelectCustomer opens a cooking session for a seated customer (the
// "click customer" intent).
func (t *Tavern) SelectCustomer(customerID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	next, applied := t.engine.BeginCooking(t.state, customerID)
	t.state = next
	return applied
}

// AddCookingIngredient moves one unit of stock into the open session.
func (t *Tavern) AddCookingIngredient(res models.ResourceType) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	next, applied := t.engine.AddIngredient(t.state, res)
	t.state = next
	return applied
}

// ConfirmCookingComplete serves the dish of the open session.
func (t *Tavern) ConfirmCookingComplete() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	prev := t.state
	next, applied := t.engine.CompleteCooking(prev)
	if !applied {
		return false
	}
	t.state = next
	if session := prev.CookingSession; session != nil && prev.FindCustomer(session.CustomerID) != -1 {
		t.servedToday++
		t.revenueToday += session.TargetItem.Price
		t.emit(TopicServiceEvents, ServiceEvent{
			BaseEvent:  t.baseEvent(EventDishServed, &next),
			CustomerID: session.CustomerID,
			ItemID:     session.TargetItem.ID,
			ItemName:   session.TargetItem.Name,
			Price:      session.TargetItem.Price,
		})
	}
	return true
}

// CancelCooking abandons the open session, refunding its ingredients.
func (t *Tavern) CancelCooking() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	next, applied := t.engine.CancelCooking(t.state)
	t.state = next
	return applied
}

// StopSimulation stops the current tick schedule if one is running.
// Stopping an already-stopped schedule is a no-op.
func (t *Tavern) StopSimulation() {
	t.mu.Lock()
	handle := t.handle
	t.mu.Unlock()
	if handle == nil {
		return
	}
	handle.Stop()
	<-handle.Done()
}

// Close tears the controller down: the schedule stops and the output sink
// is flushed if it supports closing.
func (t *Tavern) Close() error {
	t.StopSimulation()
	if closer, ok := t.output.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

func (t *Tavern) reportWriteError(topic string, err error) {
	t.writeErrs++
	if t.writeErrs <= 5 {
		log.Printf("Failed to write message to %s: %v", topic, err)
	}
}
