package api

import (
	"context"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/gorilla/mux"
	"github.com/mobicore/storefront/api/middleware"
	"github.com/mobicore/storefront/api/web"
	"github.com/mobicore/storefront/core/assistant"
	"github.com/mobicore/storefront/core/cart"
	"github.com/mobicore/storefront/core/catalog"
	"github.com/mobicore/storefront/core/order"
	"github.com/mobicore/storefront/rate"
	"github.com/sirupsen/logrus"
)

type APIConfig struct {
	CorsOrigin string
	Log        logrus.FieldLogger
	Session    *scs.SessionManager
	Catalog    *catalog.Catalog
	Carts      *cart.Sessions
	Orders     *order.Core
	Assistant  *assistant.Client
	Limiter    *rate.Limiter
}

type api struct {
	*mux.Router
	mw  []web.Middleware
	log logrus.FieldLogger
}

// APIMux builds the storefront route table with the common middleware
// chain applied to every route.
func APIMux(cfg APIConfig) http.Handler {
	a := &api{
		Router: mux.NewRouter(),
		log:    cfg.Log,
	}

	a.mw = append(a.mw, middleware.Session(cfg.Session))
	a.mw = append(a.mw, middleware.RequestID())
	a.mw = append(a.mw, middleware.Logger(cfg.Log))
	a.mw = append(a.mw, middleware.Errors(cfg.Log))
	a.mw = append(a.mw, middleware.Panics())

	if cfg.Limiter != nil {
		a.mw = append(a.mw, middleware.RateLimit(cfg.Limiter))
	}

	if cfg.CorsOrigin != "" {
		a.mw = append(a.mw, middleware.Cors(cfg.CorsOrigin))

		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}

		a.Handle(http.MethodOptions, "/{path:.*}", h)
	}

	a.Handle(http.MethodGet, "/api/health", handleHealth())

	a.Handle(http.MethodGet, "/api/products/brands", catalog.HandleListBrands(cfg.Catalog))
	a.Handle(http.MethodGet, "/api/products/{id}", catalog.HandleShow(cfg.Catalog))
	a.Handle(http.MethodGet, "/api/products", catalog.HandleList(cfg.Catalog))

	a.Handle(http.MethodGet, "/api/cart", cart.HandleShow(cfg.Session, cfg.Carts))
	a.Handle(http.MethodDelete, "/api/cart", cart.HandleClear(cfg.Session, cfg.Carts))
	a.Handle(http.MethodPost, "/api/cart/items", cart.HandleAddItem(cfg.Session, cfg.Carts, cfg.Catalog))
	a.Handle(http.MethodPut, "/api/cart/items/{product_id}", cart.HandleUpdateItem(cfg.Session, cfg.Carts))
	a.Handle(http.MethodDelete, "/api/cart/items/{product_id}", cart.HandleRemoveItem(cfg.Session, cfg.Carts))
	a.Handle(http.MethodPost, "/api/cart/checkout", order.HandleCheckout(cfg.Session, cfg.Carts, cfg.Orders))

	a.Handle(http.MethodPost, "/api/orders", order.HandleCreate(cfg.Orders))
	a.Handle(http.MethodGet, "/api/orders", order.HandleList(cfg.Orders))

	a.Handle(http.MethodPost, "/api/assistant", assistant.HandleChat(cfg.Assistant, cfg.Log))

	return a.Router
}

func handleHealth() web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		status := struct {
			Status string `json:"status"`
		}{Status: "ok"}
		return web.Respond(ctx, w, status, http.StatusOK)
	}
}

func (a *api) Handle(method string, path string, handler web.Handler, mw ...web.Middleware) {

	handler = web.WrapMiddleware(mw, handler)

	handler = web.WrapMiddleware(a.mw, handler)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ctx := r.Context()

		if err := handler(ctx, w, r); err != nil {

			a.log.WithFields(logrus.Fields{
				"req_id":  middleware.ContextRequestID(ctx),
				"message": err,
			}).Error("ERROR")
		}
	})

	a.Router.Handle(path, h).Methods(method)
}
