package tables

import "time"

// AffiliateLink is a trackable URL wrapping a product for a retailer.
// Clicks is monotonically non-decreasing; Revenue accrues commission
// (gross × CommissionRate), never gross sale price. CommissionRate is
// fixed at link creation.
type AffiliateLink struct {
	tableName      struct{}  `bun:"table:affiliate_links,alias:al"`
	ID             string    `bun:"id,pk" json:"id"`
	ProductID      string    `bun:"product_id,notnull" json:"product_id"`
	RetailerID     string    `bun:"retailer_id,notnull" json:"retailer_id"`
	UserID         string    `bun:"user_id,notnull" json:"user_id"`
	AffiliateCode  string    `bun:"affiliate_code,notnull,unique" json:"affiliate_code"`
	AffiliateURL   string    `bun:"affiliate_url,notnull" json:"affiliate_url"`
	CommissionRate float64   `bun:"commission_rate,notnull" json:"commission_rate"`
	Clicks         int64     `bun:"clicks,notnull" json:"clicks"`
	Conversions    int64     `bun:"conversions,notnull" json:"conversions"`
	Revenue        float64   `bun:"revenue,notnull" json:"revenue"`
	IsActive       bool      `bun:"is_active,notnull" json:"is_active"`
	CreatedAt      time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt      time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

// RetailerAnalytics is the daily rollup per retailer, keyed by
// (retailer_id, date). The first event of a day creates the row; later
// same-day events increment it in place.
type RetailerAnalytics struct {
	tableName    struct{}  `bun:"table:retailer_analytics,alias:ra"`
	ID           string    `bun:"id,pk" json:"id"`
	RetailerID   string    `bun:"retailer_id,notnull" json:"retailer_id"`
	Date         string    `bun:"date,notnull" json:"date"` // YYYY-MM-DD
	ProductViews int64     `bun:"product_views,notnull" json:"product_views"`
	CartAdds     int64     `bun:"cart_adds,notnull" json:"cart_adds"`
	Purchases    int64     `bun:"purchases,notnull" json:"purchases"`
	Revenue      float64   `bun:"revenue,notnull" json:"revenue"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}
