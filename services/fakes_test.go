package services

import (
	"context"
	"sort"
	"sync"

	"ollacart_server/lib"
	"ollacart_server/structs"
	"ollacart_server/structs/tables"
)

// In-memory store fakes. Each one keeps rows in a map guarded by a mutex
// and returns copies so tests never share pointers with the service under
// test.

type fakeProductStore struct {
	mu       sync.Mutex
	rows     map[string]tables.Product
	insErr   error
	fetchErr error
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{rows: make(map[string]tables.Product)}
}

func (f *fakeProductStore) Insert(ctx context.Context, product *tables.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insErr != nil {
		return f.insErr
	}
	f.rows[product.ID] = *product
	return nil
}

func (f *fakeProductStore) GetByID(ctx context.Context, id string) (*tables.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	row, ok := f.rows[id]
	if !ok {
		return nil, lib.ErrNotFound
	}
	return &row, nil
}

func (f *fakeProductStore) Save(ctx context.Context, product *tables.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[product.ID]; !ok {
		return lib.ErrNotFound
	}
	f.rows[product.ID] = *product
	return nil
}

func (f *fakeProductStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return lib.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeProductStore) Search(ctx context.Context, req structs.ProductSearchRequest) ([]tables.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}

	var out []tables.Product
	for _, row := range f.rows {
		switch {
		case req.Social:
			if !row.Shared {
				continue
			}
			found := false
			for _, id := range req.UserIDs {
				if row.UserID == id {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		case req.Shared:
			if !row.Shared || row.UserID != req.UserID {
				continue
			}
		default:
			if row.UserID != req.UserID {
				continue
			}
			if req.Purchased && !row.Purchased {
				continue
			}
		}
		out = append(out, row)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Sequence > out[j].Sequence })
	if req.Offset > 0 {
		if req.Offset >= len(out) {
			out = nil
		} else {
			out = out[req.Offset:]
		}
	}
	if req.Limit > 0 && len(out) > req.Limit {
		out = out[:req.Limit]
	}
	return out, nil
}

type fakeCartStore struct {
	mu   sync.Mutex
	rows map[string]tables.CartItem
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{rows: make(map[string]tables.CartItem)}
}

func (f *fakeCartStore) Insert(ctx context.Context, item *tables.CartItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[item.ID] = *item
	return nil
}

func (f *fakeCartStore) GetByID(ctx context.Context, id string) (*tables.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, lib.ErrNotFound
	}
	return &row, nil
}

func (f *fakeCartStore) Get(ctx context.Context, userID, productID string, cartType tables.CartType) (*tables.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.UserID == userID && row.ProductID == productID && row.CartType == cartType {
			return &row, nil
		}
	}
	return nil, lib.ErrNotFound
}

func (f *fakeCartStore) Save(ctx context.Context, item *tables.CartItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[item.ID]; !ok {
		return lib.ErrNotFound
	}
	f.rows[item.ID] = *item
	return nil
}

func (f *fakeCartStore) List(ctx context.Context, userID string, cartType tables.CartType) ([]tables.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []tables.CartItem
	for _, row := range f.rows {
		if row.UserID == userID && row.CartType == cartType {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeCartStore) ListByIDs(ctx context.Context, ids []string) ([]tables.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []tables.CartItem
	for _, id := range ids {
		if row, ok := f.rows[id]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeCartStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return lib.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeCartStore) Clear(ctx context.Context, userID string, cartType tables.CartType) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var removed int64
	for id, row := range f.rows {
		if row.UserID == userID && row.CartType == cartType {
			delete(f.rows, id)
			removed++
		}
	}
	return removed, nil
}

type fakeAffiliateStore struct {
	mu        sync.Mutex
	links     map[string]tables.AffiliateLink
	analytics map[string]tables.RetailerAnalytics // keyed retailerID|date
}

func newFakeAffiliateStore() *fakeAffiliateStore {
	return &fakeAffiliateStore{
		links:     make(map[string]tables.AffiliateLink),
		analytics: make(map[string]tables.RetailerAnalytics),
	}
}

func (f *fakeAffiliateStore) Insert(ctx context.Context, link *tables.AffiliateLink) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.links {
		if existing.AffiliateCode == link.AffiliateCode {
			return lib.ErrConflict
		}
	}
	f.links[link.ID] = *link
	return nil
}

func (f *fakeAffiliateStore) GetByID(ctx context.Context, id string) (*tables.AffiliateLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.links[id]
	if !ok {
		return nil, lib.ErrNotFound
	}
	return &row, nil
}

func (f *fakeAffiliateStore) GetByCode(ctx context.Context, code string) (*tables.AffiliateLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.links {
		if row.AffiliateCode == code {
			return &row, nil
		}
	}
	return nil, lib.ErrNotFound
}

func (f *fakeAffiliateStore) Save(ctx context.Context, link *tables.AffiliateLink) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.links[link.ID]; !ok {
		return lib.ErrNotFound
	}
	f.links[link.ID] = *link
	return nil
}

func (f *fakeAffiliateStore) ListByUser(ctx context.Context, userID string) ([]tables.AffiliateLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []tables.AffiliateLink
	for _, row := range f.links {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeAffiliateStore) IncrementDaily(ctx context.Context, row *tables.RetailerAnalytics) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := row.RetailerID + "|" + row.Date
	existing, ok := f.analytics[key]
	if !ok {
		f.analytics[key] = *row
		return nil
	}
	existing.ProductViews += row.ProductViews
	existing.CartAdds += row.CartAdds
	existing.Purchases += row.Purchases
	existing.Revenue += row.Revenue
	f.analytics[key] = existing
	return nil
}

func (f *fakeAffiliateStore) ListDaily(ctx context.Context, retailerID, sinceDate string) ([]tables.RetailerAnalytics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []tables.RetailerAnalytics
	for _, row := range f.analytics {
		if row.RetailerID == retailerID && row.Date >= sinceDate {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

type fakePaymentStore struct {
	mu        sync.Mutex
	retailers map[string]tables.Retailer
	payments  map[string]tables.StripePayment
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{
		retailers: make(map[string]tables.Retailer),
		payments:  make(map[string]tables.StripePayment),
	}
}

func (f *fakePaymentStore) InsertRetailer(ctx context.Context, retailer *tables.Retailer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.retailers[retailer.ID] = *retailer
	return nil
}

func (f *fakePaymentStore) GetRetailer(ctx context.Context, id string) (*tables.Retailer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.retailers[id]
	if !ok {
		return nil, lib.ErrNotFound
	}
	return &row, nil
}

func (f *fakePaymentStore) GetRetailerByAccountID(ctx context.Context, accountID string) (*tables.Retailer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.retailers {
		if row.StripeAccountID == accountID {
			return &row, nil
		}
	}
	return nil, lib.ErrNotFound
}

func (f *fakePaymentStore) SaveRetailer(ctx context.Context, retailer *tables.Retailer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.retailers[retailer.ID]; !ok {
		return lib.ErrNotFound
	}
	f.retailers[retailer.ID] = *retailer
	return nil
}

func (f *fakePaymentStore) InsertPayment(ctx context.Context, payment *tables.StripePayment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payments[payment.ID] = *payment
	return nil
}

func (f *fakePaymentStore) GetPayment(ctx context.Context, id string) (*tables.StripePayment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.payments[id]
	if !ok {
		return nil, lib.ErrNotFound
	}
	return &row, nil
}

func (f *fakePaymentStore) SavePayment(ctx context.Context, payment *tables.StripePayment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.payments[payment.ID]; !ok {
		return lib.ErrNotFound
	}
	f.payments[payment.ID] = *payment
	return nil
}

func (f *fakePaymentStore) ListPaymentsByRetailer(ctx context.Context, retailerID string) ([]tables.StripePayment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []tables.StripePayment
	for _, row := range f.payments {
		if row.RetailerID == retailerID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func testConfig() *structs.Config {
	return &structs.Config{
		Server: &structs.ServerConfig{
			AppName:     "OllaCart_test",
			FrontendURL: "https://app.ollacart.test",
		},
		Payments: &structs.PaymentsConfig{
			DefaultCommissionRate: 0.05,
			ConnectBaseURL:        "https://connect.example.com/setup/s",
		},
	}
}
