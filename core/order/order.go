// Package order accepts checkout submissions, persists them as orders and
// serves the persisted history.
package order

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mobicore/storefront/core/cart"
)

// Order is one durably recorded checkout. Orders are immutable once
// written; ids are assigned by the store and strictly increase.
type Order struct {
	ID           int64     `json:"id" db:"order_id"`
	CustomerName string    `json:"customerName" db:"customer_name"`
	Items        string    `json:"items" db:"items"`
	Total        float64   `json:"total" db:"total"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// OrderNew is the checkout submission as received on the wire. The total
// is taken as the client computed it and stored as-is.
type OrderNew struct {
	CustomerName string      `json:"customerName" validate:"required"`
	Items        []cart.Line `json:"items" validate:"dive"`
	Total        float64     `json:"total" validate:"gte=0"`
}

// Storer is the durable order log. Insert must be atomic: either the
// complete order exists afterwards or nothing does.
type Storer interface {
	Insert(ctx context.Context, ord Order) (int64, error)
	List(ctx context.Context) ([]Order, error)
}

// Core exposes the order operations over an injected store.
type Core struct {
	store Storer
}

func NewCore(store Storer) *Core {
	return &Core{store: store}
}

// Submit records one checkout: the lines are serialized into the items
// snapshot and inserted as a single new order. On any failure no id is
// returned and no partial order is left behind.
func (c *Core) Submit(ctx context.Context, customerName string, lines []cart.Line, total float64) (int64, error) {
	snapshot, err := json.Marshal(lines)
	if err != nil {
		return 0, fmt.Errorf("encoding items snapshot: %w", err)
	}

	ord := Order{
		CustomerName: customerName,
		Items:        string(snapshot),
		Total:        total,
		CreatedAt:    time.Now().UTC(),
	}

	id, err := c.store.Insert(ctx, ord)
	if err != nil {
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	return id, nil
}

// List returns all persisted orders, newest first.
func (c *Core) List(ctx context.Context) ([]Order, error) {
	orders, err := c.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	return orders, nil
}
