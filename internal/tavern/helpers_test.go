package tavern

import (
	"fmt"
	"sync"
	"time"

	"github.com/duskmantle/tavernsim/internal/catalog"
	"github.com/duskmantle/tavernsim/internal/models"
)

// scriptedRand replays a fixed sequence of draws. Exhausted sequences
// return values that keep the engine quiet: Float64 high enough that no
// spawn or event roll succeeds, Intn zero.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.999
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

// stubCustomers is a deterministic CustomerSource with predictable ids.
type stubCustomers struct {
	class models.HeroClass
	seq   int
}

func (s *stubCustomers) NextID(day int) string {
	s.seq++
	return fmt.Sprintf("cust_%d_%d", day, s.seq)
}

func (s *stubCustomers) CreateCustomer(id string) models.Customer {
	class := s.class
	if class == "" {
		class = models.ClassWarrior
	}
	return models.Customer{
		ID:          id,
		Name:        string(class),
		HeroClass:   class,
		Status:      models.CustomerWaiting,
		Patience:    models.CustomerPatience,
		MaxPatience: models.CustomerPatience,
		SeatIndex:   -1,
	}
}

func testConfig() *models.Config {
	return &models.Config{
		Seed:            1,
		Days:            1,
		TickRate:        time.Millisecond,
		TavernName:      "The Gilded Tankard",
		InitialGold:     models.InitialGold,
		InitialFame:     models.InitialFame,
		InitialCapacity: models.InitialCapacity,
		InitialStock:    models.InitialStock,
		RestockTarget:   10,
		UpgradeReserve:  0.25,
	}
}

func newTestEngine(rng Rand) *Engine {
	return NewEngine(rng, &stubCustomers{}, catalog.Default())
}

// dayState is a fresh day-one snapshot already in the DAY phase.
func dayState(e *Engine) models.GameState {
	s := e.NewGame(testConfig())
	s.Phase = models.PhaseDay
	return s
}

func seated(id, name string, class models.HeroClass, seat int, patience float64) models.Customer {
	return models.Customer{
		ID:          id,
		Name:        name,
		HeroClass:   class,
		Status:      models.CustomerSeatedReady,
		Patience:    patience,
		MaxPatience: models.CustomerPatience,
		SeatIndex:   seat,
	}
}

func menuItemByID(id string) models.MenuItem {
	for _, item := range catalog.Default().MenuItems {
		if item.ID == id {
			return item
		}
	}
	panic("unknown menu item " + id)
}

// memoryOutput captures the event stream for assertions.
type memoryOutput struct {
	mu   sync.Mutex
	msgs []EventMessage
}

func (m *memoryOutput) WriteMessage(topic string, msg []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs = append(m.msgs, EventMessage{Topic: topic, Message: append([]byte(nil), msg...)})
	return nil
}

func (m *memoryOutput) byTopic(topic string) []EventMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []EventMessage
	for _, msg := range m.msgs {
		if msg.Topic == topic {
			out = append(out, msg)
		}
	}
	return out
}
