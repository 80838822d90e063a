// Package cart maintains the shopping cart of one browsing session and
// the state of its checkout attempt.
package cart

import (
	"errors"
	"sync"

	"github.com/mobicore/storefront/core/catalog"
)

var (
	// ErrCheckoutInFlight is returned when a checkout is started while a
	// previous one for the same cart has not finished yet.
	ErrCheckoutInFlight = errors.New("checkout already in progress")

	// ErrEmpty is returned when a checkout is started on an empty cart.
	ErrEmpty = errors.New("no items to checkout")
)

// Line is one product in the cart together with its quantity.
// Quantity is always at least 1, and a cart never holds two lines
// for the same product.
type Line struct {
	catalog.Product
	Quantity int `json:"quantity" validate:"gte=1"`
}

// Cart is the set of lines selected by one session. All mutations of a
// cart are serialized through its lock, so two operations can never
// interleave mid-update.
type Cart struct {
	mu         sync.Mutex
	lines      []Line
	submitting bool
}

func New() *Cart {
	return &Cart{}
}

// Add appends a line with quantity 1 for the product, or bumps the
// quantity of the existing line for the same product id.
func (c *Cart) Add(p catalog.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}

	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
}

// UpdateQuantity adds delta to the quantity of the line with the given
// product id, clamping the result at 1. Dropping a line takes an explicit
// Remove; decrementing alone never destroys it. Unknown ids are a no-op.
func (c *Cart) UpdateQuantity(productID string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID == productID {
			q := c.lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.lines[i].Quantity = q
			return
		}
	}
}

// Remove deletes the line with the given product id, if present.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the current lines.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Total is the sum of price times quantity over all lines. It is always
// recomputed from the lines, never cached.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total()
}

// ItemCount is the sum of the quantities over all lines.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// BeginCheckout moves the cart into the submitting state and returns the
// snapshot and total to submit. While submitting, further checkouts are
// refused with ErrCheckoutInFlight and the cart stays fully intact until
// EndCheckout reports the outcome.
func (c *Cart) BeginCheckout() ([]Line, float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.submitting {
		return nil, 0, ErrCheckoutInFlight
	}
	if len(c.lines) == 0 {
		return nil, 0, ErrEmpty
	}

	c.submitting = true
	return c.snapshot(), c.total(), nil
}

// EndCheckout finishes the in-flight checkout. On commit the cart is
// emptied; on failure it is left untouched so the user can retry.
func (c *Cart) EndCheckout(committed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.submitting = false
	if committed {
		c.lines = nil
	}
}

// Submitting reports whether a checkout is currently in flight.
func (c *Cart) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

func (c *Cart) snapshot() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) total() float64 {
	var tot float64
	for _, l := range c.lines {
		tot += l.Price * float64(l.Quantity)
	}
	return tot
}
