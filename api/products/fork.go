package products

import (
	"net/http"

	"ollacart_server/api/middleware"
	"ollacart_server/handling"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// ForkProduct handles POST /products/{id}/fork, copying another user's
// shared product into the caller's catalog.
func (p *ProductRoutesManager) ForkProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.CallerID(ctx)

	sourceID := chi.URLParam(r, "id")
	fork, err := p.productService.Fork(ctx, userID, sourceID)
	if err != nil {
		handling.RespondError(w, p.logger, err, "Failed to fork product")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"product": fork}),
		gecho.Send(),
	)
}

// ToggleLike handles POST /products/{id}/like
func (p *ProductRoutesManager) ToggleLike(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.CallerID(ctx)

	productID := chi.URLParam(r, "id")
	product, err := p.productService.ToggleLike(ctx, userID, productID)
	if err != nil {
		handling.RespondError(w, p.logger, err, "Failed to toggle like")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"product": product}),
		gecho.Send(),
	)
}
