package cart

import (
	"net/http"

	"ollacart_server/api/middleware"
	"ollacart_server/handling"
	"ollacart_server/lib"
	"ollacart_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// UpdateCartItem handles PUT /cart/{id}
func (c *CartRoutesManager) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.CallerID(ctx)

	itemID := chi.URLParam(r, "id")
	req, err := lib.ExtractAndValidateBody[structs.CartUpdateRequest](r)
	if err != nil {
		c.logger.Warn("Invalid cart update payload", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid cart update payload"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	item, err := c.cartService.UpdateCartItem(ctx, userID, itemID, req.Quantity)
	if err != nil {
		handling.RespondError(w, c.logger, err, "Failed to update cart item")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"item": item}),
		gecho.Send(),
	)
}

// RemoveFromCart handles DELETE /cart/{id}
func (c *CartRoutesManager) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.CallerID(ctx)

	itemID := chi.URLParam(r, "id")
	if err := c.cartService.RemoveFromCart(ctx, userID, itemID); err != nil {
		handling.RespondError(w, c.logger, err, "Failed to remove cart item")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Cart item removed"),
		gecho.Send(),
	)
}

// ClearCart handles DELETE /cart?cart_type=shopping
func (c *CartRoutesManager) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.CallerID(ctx)
	cartType := r.URL.Query().Get("cart_type")

	removed, err := c.cartService.ClearCart(ctx, userID, cartType)
	if err != nil {
		handling.RespondError(w, c.logger, err, "Failed to clear cart")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"removed": removed}),
		gecho.Send(),
	)
}
