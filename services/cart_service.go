package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ollacart_server/lib"
	"ollacart_server/structs"
	"ollacart_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// CartService maintains the three cart lanes per user. Adds accumulate
// quantity instead of duplicating rows.
type CartService struct {
	logger           *gecho.Logger
	store            CartStore
	products         ProductStore
	affiliateService *AffiliateService
}

func NewCartService(logger *gecho.Logger, store CartStore, products ProductStore, affiliateService *AffiliateService) *CartService {
	return &CartService{
		logger:           logger,
		store:            store,
		products:         products,
		affiliateService: affiliateService,
	}
}

func resolveCartType(raw string) (tables.CartType, error) {
	if raw == "" {
		return tables.CartShopping, nil
	}
	cartType := tables.CartType(raw)
	if !cartType.Valid() {
		return "", fmt.Errorf("%w: unknown cart type %q", lib.ErrValidation, raw)
	}
	return cartType, nil
}

// AddToCart puts a product into one of the caller's lanes. A repeat add
// of the same product to the same lane increments the existing row's
// quantity. The read-then-write pair is not atomic; concurrent adds for
// the same row may lose an increment.
func (cs *CartService) AddToCart(ctx context.Context, userID string, req *structs.CartAddRequest) (*tables.CartItem, error) {
	cartType, err := resolveCartType(req.CartType)
	if err != nil {
		return nil, err
	}

	if _, err := cs.products.GetByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	now := time.Now()
	item, err := cs.store.Get(ctx, userID, req.ProductID, cartType)
	switch {
	case err == nil:
		item.Quantity += req.Quantity
		if req.AffiliateLinkID != "" {
			item.AffiliateLinkID = req.AffiliateLinkID
		}
		item.UpdatedAt = now
		if err := cs.store.Save(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
	case errors.Is(err, lib.ErrNotFound):
		item = &tables.CartItem{
			ID:              lib.NewID("cart"),
			ProductID:       req.ProductID,
			UserID:          userID,
			CartType:        cartType,
			Quantity:        req.Quantity,
			AffiliateLinkID: req.AffiliateLinkID,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := cs.store.Insert(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to add to cart: %w", err)
		}
	default:
		return nil, err
	}

	if req.AffiliateLinkID != "" && cs.affiliateService != nil {
		cs.affiliateService.TrackCartAdd(ctx, req.AffiliateLinkID)
	}

	cs.logger.Debug("Cart item upserted",
		gecho.Field("userId", userID),
		gecho.Field("productId", req.ProductID),
		gecho.Field("cartType", cartType),
		gecho.Field("quantity", item.Quantity))

	return item, nil
}

// GetCartItems lists one lane of the caller's cart, newest first.
func (cs *CartService) GetCartItems(ctx context.Context, userID, rawCartType string) ([]tables.CartItem, error) {
	cartType, err := resolveCartType(rawCartType)
	if err != nil {
		return nil, err
	}

	items, err := cs.store.List(ctx, userID, cartType)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []tables.CartItem{}
	}

	return items, nil
}

// UpdateCartItem sets the quantity of one of the caller's cart rows.
func (cs *CartService) UpdateCartItem(ctx context.Context, userID, itemID string, quantity int) (*tables.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", lib.ErrValidation)
	}

	item, err := cs.store.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.UserID != userID {
		return nil, lib.ErrNotFound
	}

	item.Quantity = quantity
	item.UpdatedAt = time.Now()
	if err := cs.store.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	return item, nil
}

// RemoveFromCart deletes one of the caller's cart rows.
func (cs *CartService) RemoveFromCart(ctx context.Context, userID, itemID string) error {
	item, err := cs.store.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.UserID != userID {
		return lib.ErrNotFound
	}

	return cs.store.Delete(ctx, itemID)
}

// ClearCart empties one lane for the caller and returns how many rows
// were removed.
func (cs *CartService) ClearCart(ctx context.Context, userID, rawCartType string) (int64, error) {
	cartType, err := resolveCartType(rawCartType)
	if err != nil {
		return 0, err
	}

	removed, err := cs.store.Clear(ctx, userID, cartType)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}

	cs.logger.Info("Cart lane cleared",
		gecho.Field("userId", userID),
		gecho.Field("cartType", cartType),
		gecho.Field("removed", removed))

	return removed, nil
}
