package cart

import (
	"errors"
	"net/http"

	"ollacart_server/api/health"
	"ollacart_server/api/middleware"
	"ollacart_server/demo"
	"ollacart_server/handling"
	"ollacart_server/lib"

	"github.com/MonkyMars/gecho"
)

// FetchCartItems handles GET /cart?cart_type=shopping, falling back to the
// demo cart when the store is unreachable.
func (c *CartRoutesManager) FetchCartItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.CallerID(ctx)
	cartType := r.URL.Query().Get("cart_type")

	items, err := c.cartService.GetCartItems(ctx, userID, cartType)
	if err != nil {
		if errors.Is(err, lib.ErrStorageUnavailable) {
			c.logger.Warn("Storage unavailable, serving demo cart", gecho.Field("error", err))
			health.DemoFallbacks.WithLabelValues("cart").Inc()
			gecho.Success(w,
				gecho.WithData(map[string]any{
					"items": demo.CartItems(),
					"demo":  true,
				}),
				gecho.Send(),
			)
			return
		}

		handling.RespondError(w, c.logger, err, "Failed to fetch cart")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"items": items,
			"count": len(items),
		}),
		gecho.Send(),
	)
}
