package tables

import "time"

// CartType is one of the three mutually exclusive cart lanes.
type CartType string

const (
	CartShopping CartType = "shopping"
	CartShare    CartType = "share"
	CartSale     CartType = "sale"
)

func (ct CartType) Valid() bool {
	switch ct {
	case CartShopping, CartShare, CartSale:
		return true
	}
	return false
}

// CartItem is the membership of a product in one lane for one user. At
// most one row exists per (user_id, product_id, cart_type); repeat adds
// accumulate Quantity instead of duplicating.
type CartItem struct {
	tableName       struct{}  `bun:"table:cart_items,alias:ci"`
	ID              string    `bun:"id,pk" json:"id"`
	ProductID       string    `bun:"product_id,notnull" json:"product_id"`
	UserID          string    `bun:"user_id,notnull" json:"user_id"`
	CartType        CartType  `bun:"cart_type,notnull" json:"cart_type"`
	Quantity        int       `bun:"quantity,notnull" json:"quantity"`
	AffiliateLinkID string    `bun:"affiliate_link_id" json:"affiliate_link_id,omitempty"`
	CreatedAt       time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt       time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}
