package cart

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/mobicore/storefront/api/web"
	"github.com/mobicore/storefront/api/weberr"
	"github.com/mobicore/storefront/core/catalog"
	"github.com/mobicore/storefront/validate"
)

const sessionKey = "cart_id"

// FromSession returns the cart owned by the browsing session behind ctx,
// binding a fresh cart to the session on first use.
func FromSession(ctx context.Context, sm *scs.SessionManager, s *Sessions) *Cart {
	id := sm.GetString(ctx, sessionKey)
	if id == "" {
		id = validate.GenerateID()
		sm.Put(ctx, sessionKey, id)
	}
	return s.Get(id)
}

// View is the cart as rendered to the client, with the derived values
// the badge and the drawer need.
type View struct {
	Items     []Line  `json:"items"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}

func view(c *Cart) View {
	lines := c.Lines()
	if lines == nil {
		lines = []Line{}
	}
	return View{
		Items:     lines,
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	}
}

type itemNew struct {
	ProductID string `json:"productId" validate:"required"`
}

type quantityUp struct {
	Delta int `json:"delta"`
}

func HandleShow(sm *scs.SessionManager, s *Sessions) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		c := FromSession(ctx, sm, s)
		return web.Respond(ctx, w, view(c), http.StatusOK)
	}
}

func HandleAddItem(sm *scs.SessionManager, s *Sessions, cat *catalog.Catalog) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var in itemNew
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding cart item: %w", err))
		}

		if err := validate.Check(in); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusBadRequest)
		}

		p, ok := cat.Find(in.ProductID)
		if !ok {
			return weberr.NotFound(fmt.Errorf("product[%s] not in catalog", in.ProductID))
		}

		c := FromSession(ctx, sm, s)
		c.Add(p)

		return web.Respond(ctx, w, view(c), http.StatusOK)
	}
}

func HandleUpdateItem(sm *scs.SessionManager, s *Sessions) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		productID := web.Param(r, "product_id")

		var in quantityUp
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding quantity update: %w", err))
		}

		c := FromSession(ctx, sm, s)
		c.UpdateQuantity(productID, in.Delta)

		return web.Respond(ctx, w, view(c), http.StatusOK)
	}
}

func HandleRemoveItem(sm *scs.SessionManager, s *Sessions) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		productID := web.Param(r, "product_id")

		c := FromSession(ctx, sm, s)
		c.Remove(productID)

		return web.Respond(ctx, w, view(c), http.StatusOK)
	}
}

func HandleClear(sm *scs.SessionManager, s *Sessions) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		c := FromSession(ctx, sm, s)
		c.Clear()

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}
