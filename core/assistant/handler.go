package assistant

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mobicore/storefront/api/web"
	"github.com/mobicore/storefront/api/weberr"
	"github.com/mobicore/storefront/validate"
	"github.com/sirupsen/logrus"
)

type question struct {
	Message string `json:"message" validate:"required"`
}

type answer struct {
	Reply string `json:"reply"`
}

// HandleChat answers one widget question. Provider failures are logged
// and replaced with the apology reply; the widget never sees an error.
func HandleChat(c *Client, log logrus.FieldLogger) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var q question
		if err := web.Decode(w, r, &q); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding question: %w", err))
		}

		if err := validate.Check(q); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusBadRequest)
		}

		reply, err := c.Recommend(ctx, q.Message)
		if err != nil {
			log.WithError(err).Warn("assistant recommendation failed")
			reply = Fallback
		}

		return web.Respond(ctx, w, answer{Reply: reply}, http.StatusOK)
	}
}
