package products

import (
	"ollacart_server/api/middleware"
	"ollacart_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger         *gecho.Logger
	productService *services.ProductService
	mw             *middleware.Middleware
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	productService *services.ProductService,
	mw *middleware.Middleware,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		productService: productService,
		mw:             mw,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(prm.mw.UserAuthMiddleware)

		r.Get("/products", prm.SearchProducts)
		r.Post("/products", prm.CreateProduct)
		r.Get("/products/{id}", prm.FetchProductByID)
		r.Put("/products/{id}", prm.UpdateProduct)
		r.Delete("/products/{id}", prm.DeleteProduct)
		r.Post("/products/{id}/fork", prm.ForkProduct)
		r.Post("/products/{id}/like", prm.ToggleLike)
	})
}
