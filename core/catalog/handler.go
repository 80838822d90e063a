package catalog

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mobicore/storefront/api/web"
	"github.com/mobicore/storefront/api/weberr"
)

func HandleList(c *Catalog) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		brand := r.URL.Query().Get("brand")
		return web.Respond(ctx, w, c.List(brand), http.StatusOK)
	}
}

func HandleShow(c *Catalog) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")

		p, ok := c.Find(id)
		if !ok {
			return weberr.NotFound(fmt.Errorf("product[%s] not in catalog", id))
		}

		return web.Respond(ctx, w, p, http.StatusOK)
	}
}

func HandleListBrands(c *Catalog) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, c.Brands(), http.StatusOK)
	}
}
