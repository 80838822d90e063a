package order

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/mobicore/storefront/api/web"
	"github.com/mobicore/storefront/api/weberr"
	"github.com/mobicore/storefront/core/cart"
	"github.com/mobicore/storefront/validate"
)

type created struct {
	ID      int64 `json:"id"`
	Success bool  `json:"success"`
}

// HandleCreate accepts a checkout payload built by the client and records
// it as a new order. The items may be empty and the total is trusted as
// sent, matching the storefront contract.
func HandleCreate(o *Core) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var on OrderNew
		if err := web.Decode(w, r, &on); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding order: %w", err))
		}

		if err := validate.Check(on); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusBadRequest)
		}

		id, err := o.Submit(ctx, on.CustomerName, on.Items, on.Total)
		if err != nil {
			return weberr.NewError(err, "Failed to place order", http.StatusInternalServerError)
		}

		return web.Respond(ctx, w, created{ID: id, Success: true}, http.StatusOK)
	}
}

// HandleList returns the persisted orders, newest first.
func HandleList(o *Core) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		orders, err := o.List(ctx)
		if err != nil {
			return weberr.NewError(err, "Failed to fetch orders", http.StatusInternalServerError)
		}

		return web.Respond(ctx, w, orders, http.StatusOK)
	}
}

type checkoutNew struct {
	CustomerName string `json:"customerName" validate:"required"`
}

// HandleCheckout converts the session cart into an order. The cart is
// cleared only once the store acknowledged the write; on any failure it
// is preserved untouched so the user can retry. A second checkout for the
// same session while one is in flight is refused.
func HandleCheckout(sm *scs.SessionManager, carts *cart.Sessions, o *Core) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var in checkoutNew
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding checkout: %w", err))
		}

		if err := validate.Check(in); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusBadRequest)
		}

		c := cart.FromSession(ctx, sm, carts)

		lines, total, err := c.BeginCheckout()
		if err != nil {
			switch {
			case errors.Is(err, cart.ErrCheckoutInFlight):
				return weberr.NewError(err, err.Error(), http.StatusConflict)
			case errors.Is(err, cart.ErrEmpty):
				return weberr.NewError(err, err.Error(), http.StatusUnprocessableEntity)
			}
			return err
		}

		id, err := o.Submit(ctx, in.CustomerName, lines, total)
		c.EndCheckout(err == nil)
		if err != nil {
			return weberr.NewError(err, "Failed to place order", http.StatusInternalServerError)
		}

		return web.Respond(ctx, w, created{ID: id, Success: true}, http.StatusOK)
	}
}
