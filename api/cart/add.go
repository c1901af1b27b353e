package cart

import (
	"net/http"

	"ollacart_server/api/middleware"
	"ollacart_server/handling"
	"ollacart_server/lib"
	"ollacart_server/structs"

	"github.com/MonkyMars/gecho"
)

// AddToCart handles POST /cart. A repeat add of the same product to the
// same lane increments quantity.
func (c *CartRoutesManager) AddToCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.CallerID(ctx)

	req, err := lib.ExtractAndValidateBody[structs.CartAddRequest](r)
	if err != nil {
		c.logger.Warn("Invalid cart payload", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid cart payload"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	item, err := c.cartService.AddToCart(ctx, userID, req)
	if err != nil {
		handling.RespondError(w, c.logger, err, "Failed to add to cart")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"item": item}),
		gecho.Send(),
	)
}
