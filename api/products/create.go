package products

import (
	"net/http"

	"ollacart_server/api/middleware"
	"ollacart_server/handling"
	"ollacart_server/lib"
	"ollacart_server/structs"

	"github.com/MonkyMars/gecho"
)

// CreateProduct handles POST /products
func (p *ProductRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.CallerID(ctx)

	req, err := lib.ExtractAndValidateBody[structs.ProductCreateRequest](r)
	if err != nil {
		p.logger.Warn("Invalid product payload", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid product payload"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	product, err := p.productService.Create(ctx, userID, req)
	if err != nil {
		handling.RespondError(w, p.logger, err, "Failed to create product")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"product": product}),
		gecho.Send(),
	)
}
