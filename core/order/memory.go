package order

import (
	"context"
	"sync"
)

// MemoryStore is an in-process order log. It backs tests and DB-less
// runs; everything is lost when the process exits.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	orders []Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Insert(ctx context.Context, ord Order) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	ord.ID = s.nextID
	s.orders = append(s.orders, ord)

	return ord.ID, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Orders are appended in insertion order, so walking backwards
	// yields them newest first.
	out := make([]Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		out = append(out, s.orders[i])
	}

	return out, nil
}
