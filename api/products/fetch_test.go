package products

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ollacart_server/lib"
	"ollacart_server/services"
	"ollacart_server/structs"
	"ollacart_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
)

// unreachableProductStore fails every call the way the bun store does when
// the database is down.
type unreachableProductStore struct{}

func (unreachableProductStore) storeErr() error {
	return fmt.Errorf("%w: connection refused", lib.ErrStorageUnavailable)
}

func (s unreachableProductStore) Insert(ctx context.Context, product *tables.Product) error {
	return s.storeErr()
}

func (s unreachableProductStore) GetByID(ctx context.Context, id string) (*tables.Product, error) {
	return nil, s.storeErr()
}

func (s unreachableProductStore) Save(ctx context.Context, product *tables.Product) error {
	return s.storeErr()
}

func (s unreachableProductStore) Delete(ctx context.Context, id string) error {
	return s.storeErr()
}

func (s unreachableProductStore) Search(ctx context.Context, req structs.ProductSearchRequest) ([]tables.Product, error) {
	return nil, s.storeErr()
}

func newOutageProductRoutes() *ProductRoutesManager {
	logger := gecho.NewDefaultLogger()
	service := services.NewProductService(logger, unreachableProductStore{}, nil)
	return NewProductRoutesManager(logger, service, nil)
}

func TestSearchProductsServesDemoCatalogDuringOutage(t *testing.T) {
	t.Parallel()

	routes := newOutageProductRoutes()

	w := httptest.NewRecorder()
	routes.SearchProducts(w, httptest.NewRequest("GET", "/products", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `"demo":true`), "body: %s", body)
	assert.Contains(t, body, "demo_1")
	assert.Contains(t, body, "Wireless Headphones")
}

func TestCreateProductPropagatesOutage(t *testing.T) {
	t.Parallel()

	routes := newOutageProductRoutes()

	payload := `{"name":"Mug","price":12,"url":"https://shop.example.com/p/mug"}`
	r := httptest.NewRequest("POST", "/products", strings.NewReader(payload))
	r.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	routes.CreateProduct(w, r)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
