package services

import (
	"context"
	"fmt"
	"time"

	"ollacart_server/lib"
	"ollacart_server/structs"
	"ollacart_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// ProductService implements the product catalog: create, partial update,
// search, cross-user forking, and like toggling.
type ProductService struct {
	logger       *gecho.Logger
	store        ProductStore
	cacheService *CacheService
}

func NewProductService(logger *gecho.Logger, store ProductStore, cacheService *CacheService) *ProductService {
	return &ProductService{
		logger:       logger,
		store:        store,
		cacheService: cacheService,
	}
}

// Create validates and persists a new product owned by userID. The photo
// URL is expanded into the stored triple and the domain is derived from
// the original URL when present.
func (ps *ProductService) Create(ctx context.Context, userID string, req *structs.ProductCreateRequest) (*tables.Product, error) {
	now := time.Now()

	product := &tables.Product{
		ID:          lib.NewID("prod"),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Keywords:    tables.StringList(req.Keywords),
		Price:       req.Price,
		Color:       req.Color,
		Size:        req.Size,
		URL:         req.URL,
		OriginalURL: req.OriginalURL,
		Domain:      lib.DeriveDomain(req.OriginalURL, req.URL),
		Sequence:    now.UnixMilli(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if req.Photo != "" {
		product.PhotoURL = req.Photo
		product.PhotoSmall = req.Photo
		product.PhotoNormal = req.Photo
	}
	for _, photoURL := range req.Photos {
		product.Photos = append(product.Photos, structs.Photo{URL: photoURL})
	}

	if err := ps.store.Insert(ctx, product); err != nil {
		ps.logger.Error("Failed to create product",
			gecho.Field("userId", userID),
			gecho.Field("error", err))
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	ps.logger.Info("Product created",
		gecho.Field("id", product.ID),
		gecho.Field("userId", userID),
		gecho.Field("domain", product.Domain))

	return product, nil
}

// Get returns a product by id, read through the cache.
func (ps *ProductService) Get(ctx context.Context, id string) (*tables.Product, error) {
	if ps.cacheService != nil {
		if cached, ok := ps.cacheService.GetProduct(ctx, id); ok {
			return cached, nil
		}
	}

	product, err := ps.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if ps.cacheService != nil {
		ps.cacheService.SetProduct(ctx, product)
	}
	return product, nil
}

// Update applies the provided fields only; nil fields keep their stored
// value.
func (ps *ProductService) Update(ctx context.Context, id string, req *structs.ProductUpdateRequest) (*tables.Product, error) {
	product, err := ps.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Color != nil {
		product.Color = *req.Color
	}
	if req.Size != nil {
		product.Size = *req.Size
	}
	if req.Keywords != nil {
		product.Keywords = tables.StringList(req.Keywords)
	}
	if req.Shared != nil {
		product.Shared = *req.Shared
	}
	if req.Purchased != nil {
		product.Purchased = *req.Purchased
	}
	if req.Photo != nil {
		product.PhotoURL = req.Photo.URL
		product.PhotoSmall = req.Photo.Small
		product.PhotoNormal = req.Photo.Normal
	}
	if req.Photos != nil {
		product.Photos = tables.PhotoList(req.Photos)
	}
	product.UpdatedAt = time.Now()

	if err := ps.store.Save(ctx, product); err != nil {
		ps.logger.Error("Failed to update product",
			gecho.Field("id", id),
			gecho.Field("error", err))
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	ps.invalidate(ctx, id)
	return product, nil
}

// Delete removes a product. Cart rows referencing it are left in place;
// reads skip the orphans.
func (ps *ProductService) Delete(ctx context.Context, id string) error {
	if err := ps.store.Delete(ctx, id); err != nil {
		return err
	}

	ps.invalidate(ctx, id)
	ps.logger.Info("Product deleted", gecho.Field("id", id))
	return nil
}

// Search returns the catalog slice the request selects, scoped to the
// caller when no explicit user is named.
func (ps *ProductService) Search(ctx context.Context, callerID string, req structs.ProductSearchRequest) ([]tables.Product, error) {
	if req.UserID == "" {
		req.UserID = callerID
	}
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 100
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	products, err := ps.store.Search(ctx, req)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []tables.Product{}
	}

	return products, nil
}

// Fork copies another user's shared product into the caller's catalog,
// recording lineage. A user cannot fork their own product or fork the
// same product twice.
func (ps *ProductService) Fork(ctx context.Context, userID, sourceID string) (*tables.Product, error) {
	source, err := ps.store.GetByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}

	if source.UserID == userID {
		return nil, lib.ErrSelfFork
	}

	mine, err := ps.store.Search(ctx, structs.ProductSearchRequest{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to check existing forks: %w", err)
	}
	for i := range mine {
		if mine[i].ForkID == sourceID {
			return nil, lib.ErrAlreadyForked
		}
	}

	now := time.Now()
	fork := &tables.Product{
		ID:          lib.NewID("prod"),
		UserID:      userID,
		Name:        source.Name,
		Description: source.Description,
		Keywords:    append(tables.StringList(nil), source.Keywords...),
		Price:       source.Price,
		Color:       source.Color,
		Size:        source.Size,
		PhotoURL:    source.PhotoURL,
		PhotoSmall:  source.PhotoSmall,
		PhotoNormal: source.PhotoNormal,
		Photos:      append(tables.PhotoList(nil), source.Photos...),
		URL:         source.URL,
		OriginalURL: source.OriginalURL,
		Domain:      source.Domain,
		Sequence:    now.UnixMilli(),
		ForkID:      source.ID,
		ForkedIDs:   append(append(tables.StringList(nil), source.ForkedIDs...), source.ID),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := ps.store.Insert(ctx, fork); err != nil {
		ps.logger.Error("Failed to fork product",
			gecho.Field("sourceId", sourceID),
			gecho.Field("userId", userID),
			gecho.Field("error", err))
		return nil, fmt.Errorf("failed to fork product: %w", err)
	}

	ps.logger.Info("Product forked",
		gecho.Field("id", fork.ID),
		gecho.Field("sourceId", sourceID),
		gecho.Field("generation", len(fork.ForkedIDs)))

	return fork, nil
}

// ToggleLike flips userID's like on the product. Liking removes any
// standing dislike; toggling twice restores the original state.
func (ps *ProductService) ToggleLike(ctx context.Context, userID, productID string) (*tables.Product, error) {
	product, err := ps.store.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.Likes.Contains(userID) {
		product.Likes = product.Likes.Without(userID)
	} else {
		product.Likes = append(product.Likes, userID)
		product.Dislikes = product.Dislikes.Without(userID)
	}
	product.UpdatedAt = time.Now()

	if err := ps.store.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	ps.invalidate(ctx, productID)
	return product, nil
}

func (ps *ProductService) invalidate(ctx context.Context, id string) {
	if ps.cacheService != nil {
		ps.cacheService.InvalidateProduct(ctx, id)
	}
}
