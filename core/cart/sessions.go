package cart

import (
	"sync"
	"time"
)

const sweepInterval = 10 * time.Minute

// Sessions keeps the live carts keyed by cart id. Carts live in memory
// only; once the owning session expires the cart is swept away with it.
type Sessions struct {
	lifetime time.Duration
	mu       sync.Mutex
	carts    map[string]*entry
}

type entry struct {
	cart       *Cart
	lastAccess time.Time
}

func NewSessions(lifetime time.Duration) *Sessions {
	s := &Sessions{
		lifetime: lifetime,
		carts:    make(map[string]*entry),
	}
	go s.sweep()
	return s
}

// Get returns the cart with the given id, creating it on first use.
func (s *Sessions) Get(id string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.carts[id]
	if !ok {
		e = &entry{cart: New()}
		s.carts[id] = e
	}
	e.lastAccess = time.Now()
	return e.cart
}

func (s *Sessions) sweep() {
	for {
		time.Sleep(sweepInterval)

		s.mu.Lock()
		for id, e := range s.carts {
			if time.Since(e.lastAccess) > s.lifetime {
				delete(s.carts, id)
			}
		}
		s.mu.Unlock()
	}
}
