package products

import (
	"net/http"

	"ollacart_server/handling"
	"ollacart_server/lib"
	"ollacart_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// UpdateProduct handles PUT /products/{id} with a partial update body
func (p *ProductRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	req, err := lib.ExtractAndValidateBody[structs.ProductUpdateRequest](r)
	if err != nil {
		p.logger.Warn("Invalid product update payload", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid product update payload"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	product, err := p.productService.Update(ctx, id, req)
	if err != nil {
		handling.RespondError(w, p.logger, err, "Failed to update product")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"product": product}),
		gecho.Send(),
	)
}

// DeleteProduct handles DELETE /products/{id}
func (p *ProductRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if err := p.productService.Delete(ctx, id); err != nil {
		handling.RespondError(w, p.logger, err, "Failed to delete product")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product deleted"),
		gecho.Send(),
	)
}
