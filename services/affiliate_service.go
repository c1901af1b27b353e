package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ollacart_server/lib"
	"ollacart_server/structs"
	"ollacart_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// AffiliateService manages trackable product links and the per-retailer
// daily analytics rollup they feed.
type AffiliateService struct {
	logger   *gecho.Logger
	cfg      *structs.Config
	store    AffiliateStore
	products ProductStore
}

func NewAffiliateService(logger *gecho.Logger, cfg *structs.Config, store AffiliateStore, products ProductStore) *AffiliateService {
	return &AffiliateService{
		logger:   logger,
		cfg:      cfg,
		store:    store,
		products: products,
	}
}

// CreateAffiliateLink issues a new tracking URL for an existing product.
// The commission rate is fixed at creation; it defaults from config when
// the request omits it.
func (as *AffiliateService) CreateAffiliateLink(ctx context.Context, userID string, req *structs.AffiliateLinkRequest) (*tables.AffiliateLink, error) {
	product, err := as.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	rate := as.cfg.Payments.DefaultCommissionRate
	if req.CommissionRate != nil {
		rate = *req.CommissionRate
	}

	code := lib.NewAffiliateCode()
	separator := "?"
	if strings.Contains(product.URL, "?") {
		separator = "&"
	}

	now := time.Now()
	link := &tables.AffiliateLink{
		ID:             lib.NewID("aff"),
		ProductID:      product.ID,
		RetailerID:     req.RetailerID,
		UserID:         userID,
		AffiliateCode:  code,
		AffiliateURL:   fmt.Sprintf("%s%sref=%s", product.URL, separator, code),
		CommissionRate: rate,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := as.store.Insert(ctx, link); err != nil {
		as.logger.Error("Failed to create affiliate link",
			gecho.Field("productId", req.ProductID),
			gecho.Field("error", err))
		return nil, fmt.Errorf("failed to create affiliate link: %w", err)
	}

	as.logger.Info("Affiliate link created",
		gecho.Field("id", link.ID),
		gecho.Field("code", code),
		gecho.Field("rate", rate))

	return link, nil
}

func (as *AffiliateService) GetAffiliateLinks(ctx context.Context, userID string) ([]tables.AffiliateLink, error) {
	links, err := as.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if links == nil {
		links = []tables.AffiliateLink{}
	}
	return links, nil
}

// TrackClick records one click on the link with the given code and bumps
// the retailer's daily product view count. Unknown codes are ignored so
// stale links never error in a user's face.
func (as *AffiliateService) TrackClick(ctx context.Context, code string) error {
	link, err := as.store.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			as.logger.Debug("Click on unknown affiliate code", gecho.Field("code", code))
			return nil
		}
		return err
	}

	link.Clicks++
	link.UpdatedAt = time.Now()
	if err := as.store.Save(ctx, link); err != nil {
		return fmt.Errorf("failed to record click: %w", err)
	}

	as.rollup(ctx, link.RetailerID, &tables.RetailerAnalytics{ProductViews: 1})
	return nil
}

// TrackCartAdd bumps the daily cart add count for the retailer behind the
// given link. Called from the cart service when an add carries affiliate
// provenance.
func (as *AffiliateService) TrackCartAdd(ctx context.Context, linkID string) {
	link, err := as.store.GetByID(ctx, linkID)
	if err != nil {
		if !errors.Is(err, lib.ErrNotFound) {
			as.logger.Warn("Failed to resolve affiliate link for cart add",
				gecho.Field("linkId", linkID),
				gecho.Field("error", err))
		}
		return
	}

	as.rollup(ctx, link.RetailerID, &tables.RetailerAnalytics{CartAdds: 1})
}

// TrackConversion credits a completed sale to the link: the link earns
// gross times its commission rate, the retailer's rollup records the
// gross. Unknown codes are ignored the same way clicks are; the returned
// link is nil in that case.
func (as *AffiliateService) TrackConversion(ctx context.Context, code string, gross float64) (*tables.AffiliateLink, error) {
	link, err := as.store.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			as.logger.Debug("Conversion on unknown affiliate code", gecho.Field("code", code))
			return nil, nil
		}
		return nil, err
	}

	link.Conversions++
	link.Revenue += gross * link.CommissionRate
	link.UpdatedAt = time.Now()
	if err := as.store.Save(ctx, link); err != nil {
		return nil, fmt.Errorf("failed to record conversion: %w", err)
	}

	as.rollup(ctx, link.RetailerID, &tables.RetailerAnalytics{
		Purchases: 1,
		Revenue:   gross,
	})

	as.logger.Info("Conversion tracked",
		gecho.Field("code", code),
		gecho.Field("gross", gross),
		gecho.Field("commission", gross*link.CommissionRate))

	return link, nil
}

// rollup applies the delta to today's (retailer, date) analytics row.
// Rollup failures are logged, never surfaced: analytics must not break
// the tracked operation.
func (as *AffiliateService) rollup(ctx context.Context, retailerID string, delta *tables.RetailerAnalytics) {
	delta.ID = lib.NewID("analytics")
	delta.RetailerID = retailerID
	delta.Date = time.Now().UTC().Format("2006-01-02")
	delta.CreatedAt = time.Now()

	if err := as.store.IncrementDaily(ctx, delta); err != nil {
		as.logger.Warn("Failed to update analytics rollup",
			gecho.Field("retailerId", retailerID),
			gecho.Field("date", delta.Date),
			gecho.Field("error", err))
	}
}
