package cart

import (
	"ollacart_server/api/middleware"
	"ollacart_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CartRoutesManager struct {
	logger      *gecho.Logger
	cartService *services.CartService
	mw          *middleware.Middleware
}

func NewCartRoutesManager(
	logger *gecho.Logger,
	cartService *services.CartService,
	mw *middleware.Middleware,
) *CartRoutesManager {
	return &CartRoutesManager{
		logger:      logger,
		cartService: cartService,
		mw:          mw,
	}
}

func (crm *CartRoutesManager) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(crm.mw.UserAuthMiddleware)

		r.Get("/cart", crm.FetchCartItems)
		r.Post("/cart", crm.AddToCart)
		r.Put("/cart/{id}", crm.UpdateCartItem)
		r.Delete("/cart/{id}", crm.RemoveFromCart)
		r.Delete("/cart", crm.ClearCart)
	})
}
