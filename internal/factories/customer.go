package factories

import (
	"fmt"
	"math/rand"
	"sync/atomic"

	"github.com/duskmantle/tavernsim/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

// CustomerFactory spawns customers with a random hero class and a name
// drawn from that class's pool. All randomness comes from the seeded
// source handed to the constructor, so runs are reproducible per seed.
type CustomerFactory struct {
	fake  faker.Faker
	names map[models.HeroClass][]string
	seq   uint64
}

func NewCustomerFactory(seed int64, names map[models.HeroClass][]string) *CustomerFactory {
	return &CustomerFactory{
		fake:  faker.NewWithSeed(rand.NewSource(seed)),
		names: names,
	}
}

// NextID builds a customer id unique within a run: day number, a
// monotonic counter and a random salt. Timestamp-only ids collide under
// sub-millisecond ticks.
func (cf *CustomerFactory) NextID(day int) string {
	seq := atomic.AddUint64(&cf.seq, 1)
	return fmt.Sprintf("c_%d_%d_%s", day, seq, cuid.Slug())
}

// CreateCustomer returns a new customer in the waiting queue with full
// patience. The caller supplies the id (see NextID).
func (cf *CustomerFactory) CreateCustomer(id string) models.Customer {
	class := models.AllHeroClasses[cf.fake.IntBetween(0, len(models.AllHeroClasses)-1)]
	name := string(class)
	if pool := cf.names[class]; len(pool) > 0 {
		name = cf.fake.RandomStringElement(pool)
	}

	return models.Customer{
		ID:          id,
		Name:        name,
		HeroClass:   class,
		Status:      models.CustomerWaiting,
		Patience:    models.CustomerPatience,
		MaxPatience: models.CustomerPatience,
		SeatIndex:   -1,
	}
}
