package api

import (
	"ollacart_server/api/affiliate"
	"ollacart_server/api/cart"
	"ollacart_server/api/health"
	"ollacart_server/api/middleware"
	"ollacart_server/api/payments"
	"ollacart_server/api/products"
	"ollacart_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	productRoutes   *products.ProductRoutesManager
	cartRoutes      *cart.CartRoutesManager
	affiliateRoutes *affiliate.AffiliateRoutesManager
	paymentRoutes   *payments.PaymentRoutesManager
	healthRoutes    *health.HealthRoutesManager
}

func NewRouterManager(logger *gecho.Logger, sm *services.ServiceManager, mw *middleware.Middleware) *routerManager {
	return &routerManager{
		productRoutes:   products.NewProductRoutesManager(logger, sm.ProductService, mw),
		cartRoutes:      cart.NewCartRoutesManager(logger, sm.CartService, mw),
		affiliateRoutes: affiliate.NewAffiliateRoutesManager(logger, sm.AffiliateService, mw),
		paymentRoutes:   payments.NewPaymentRoutesManager(logger, sm.PaymentService, mw),
		healthRoutes:    health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.cartRoutes.RegisterRoutes(r)
	rm.affiliateRoutes.RegisterRoutes(r)
	rm.paymentRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
