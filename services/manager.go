package services

import (
	"ollacart_server/database"
	"ollacart_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	CacheService     *CacheService
	EmailService     *EmailService
	HealthService    *HealthService
	ProductService   *ProductService
	CartService      *CartService
	AffiliateService *AffiliateService
	PaymentService   *PaymentService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	productStore := database.NewProductStore(db)
	cartStore := database.NewCartStore(db)
	affiliateStore := database.NewAffiliateStore(db)
	paymentStore := database.NewPaymentStore(db)

	cacheService := NewCacheService(logger, cfg)
	emailService := NewEmailService(logger, cfg)
	healthService := NewHealthService(logger, db, cacheService)
	productService := NewProductService(logger, productStore, cacheService)
	affiliateService := NewAffiliateService(logger, cfg, affiliateStore, productStore)
	cartService := NewCartService(logger, cartStore, productStore, affiliateService)
	paymentService := NewPaymentService(
		logger, cfg,
		paymentStore, cartStore, productStore, affiliateStore,
		NewSimulatedConnectProvider(cfg),
		emailService,
	)

	return &ServiceManager{
		CacheService:     cacheService,
		EmailService:     emailService,
		HealthService:    healthService,
		ProductService:   productService,
		CartService:      cartService,
		AffiliateService: affiliateService,
		PaymentService:   paymentService,
	}
}
