package services

import (
	"context"
	"strings"
	"testing"

	"ollacart_server/lib"
	"ollacart_server/structs"
	"ollacart_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture(t *testing.T) (*CartService, *fakeCartStore, string) {
	t.Helper()

	products := newFakeProductStore()
	productService := newTestProductService(products)
	product, err := productService.Create(context.Background(), "seller", &structs.ProductCreateRequest{
		Name:  "Sneakers",
		Price: 80,
		URL:   "https://shop.example.com/p/sneakers",
	})
	require.NoError(t, err)

	carts := newFakeCartStore()
	service := NewCartService(gecho.NewDefaultLogger(), carts, products, nil)
	return service, carts, product.ID
}

func TestAddToCartAccumulatesQuantity(t *testing.T) {
	t.Parallel()

	service, carts, productID := newCartFixture(t)
	ctx := context.Background()

	first, err := service.AddToCart(ctx, "buyer", &structs.CartAddRequest{
		ProductID: productID,
		Quantity:  2,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first.ID, "cart_"))
	assert.Equal(t, 2, first.Quantity)
	assert.Equal(t, tables.CartShopping, first.CartType, "lane defaults to shopping")

	second, err := service.AddToCart(ctx, "buyer", &structs.CartAddRequest{
		ProductID: productID,
		Quantity:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "repeat add reuses the row")
	assert.Equal(t, 5, second.Quantity)
	assert.Len(t, carts.rows, 1)
}

func TestAddToCartLanesAreIndependent(t *testing.T) {
	t.Parallel()

	service, carts, productID := newCartFixture(t)
	ctx := context.Background()

	_, err := service.AddToCart(ctx, "buyer", &structs.CartAddRequest{ProductID: productID, Quantity: 1, CartType: "shopping"})
	require.NoError(t, err)
	_, err = service.AddToCart(ctx, "buyer", &structs.CartAddRequest{ProductID: productID, Quantity: 1, CartType: "share"})
	require.NoError(t, err)

	assert.Len(t, carts.rows, 2, "same product in two lanes is two rows")
}

func TestAddToCartValidation(t *testing.T) {
	t.Parallel()

	service, _, productID := newCartFixture(t)
	ctx := context.Background()

	_, err := service.AddToCart(ctx, "buyer", &structs.CartAddRequest{
		ProductID: productID,
		Quantity:  1,
		CartType:  "wishlist",
	})
	assert.ErrorIs(t, err, lib.ErrValidation)

	_, err = service.AddToCart(ctx, "buyer", &structs.CartAddRequest{
		ProductID: "prod_missing",
		Quantity:  1,
	})
	assert.ErrorIs(t, err, lib.ErrNotFound)
}

func TestUpdateAndRemoveCartItemOwnership(t *testing.T) {
	t.Parallel()

	service, _, productID := newCartFixture(t)
	ctx := context.Background()

	item, err := service.AddToCart(ctx, "buyer", &structs.CartAddRequest{ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	updated, err := service.UpdateCartItem(ctx, "buyer", item.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)

	_, err = service.UpdateCartItem(ctx, "intruder", item.ID, 9)
	assert.ErrorIs(t, err, lib.ErrNotFound, "another user's row looks like it does not exist")

	err = service.RemoveFromCart(ctx, "intruder", item.ID)
	assert.ErrorIs(t, err, lib.ErrNotFound)

	require.NoError(t, service.RemoveFromCart(ctx, "buyer", item.ID))
	items, err := service.GetCartItems(ctx, "buyer", "")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClearCartEmptiesOnlyThatLane(t *testing.T) {
	t.Parallel()

	service, _, productID := newCartFixture(t)
	ctx := context.Background()

	_, err := service.AddToCart(ctx, "buyer", &structs.CartAddRequest{ProductID: productID, Quantity: 2, CartType: "shopping"})
	require.NoError(t, err)
	_, err = service.AddToCart(ctx, "buyer", &structs.CartAddRequest{ProductID: productID, Quantity: 1, CartType: "sale"})
	require.NoError(t, err)

	removed, err := service.ClearCart(ctx, "buyer", "shopping")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	shopping, err := service.GetCartItems(ctx, "buyer", "shopping")
	require.NoError(t, err)
	assert.Empty(t, shopping)

	sale, err := service.GetCartItems(ctx, "buyer", "sale")
	require.NoError(t, err)
	assert.Len(t, sale, 1, "other lanes are untouched")
}
