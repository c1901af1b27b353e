package products

import (
	"errors"
	"net/http"

	"ollacart_server/api/health"
	"ollacart_server/api/middleware"
	"ollacart_server/demo"
	"ollacart_server/handling"
	"ollacart_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// SearchProducts handles GET /products. When the store is unreachable the
// demo catalog is served instead so the storefront keeps rendering.
func (p *ProductRoutesManager) SearchProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.CallerID(ctx)

	req := handling.ParseProductSearchRequest(r)

	products, err := p.productService.Search(ctx, userID, req)
	if err != nil {
		if errors.Is(err, lib.ErrStorageUnavailable) {
			p.logger.Warn("Storage unavailable, serving demo catalog", gecho.Field("error", err))
			health.DemoFallbacks.WithLabelValues("products").Inc()
			gecho.Success(w,
				gecho.WithData(map[string]any{
					"products": demo.Products(),
					"demo":     true,
				}),
				gecho.Send(),
			)
			return
		}

		handling.RespondError(w, p.logger, err, "Failed to search products")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": products,
			"count":    len(products),
		}),
		gecho.Send(),
	)
}

// FetchProductByID handles GET /products/{id}
func (p *ProductRoutesManager) FetchProductByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if id == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("Product id is required"),
			gecho.Send(),
		)
		return
	}

	product, err := p.productService.Get(ctx, id)
	if err != nil {
		handling.RespondError(w, p.logger, err, "Failed to fetch product")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"product": product}),
		gecho.Send(),
	)
}
