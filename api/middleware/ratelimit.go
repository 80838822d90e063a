package middleware

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/mobicore/storefront/api/web"
	"github.com/mobicore/storefront/api/weberr"
	"github.com/mobicore/storefront/rate"
)

// RateLimit rejects requests from clients that exceed their token bucket.
// Clients are keyed by remote address.
func RateLimit(lim *rate.Limiter) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

			client, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				client = r.RemoteAddr
			}

			if !lim.Check(client) {
				err := errors.New("rate limit exceeded")
				return weberr.NewError(err, "too many requests", http.StatusTooManyRequests)
			}

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}
