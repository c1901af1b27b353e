package tables

import (
	"ollacart_server/structs"
	"time"
)

// Product is a listing a user has added, possibly forked from another
// user's shared product. Likes and Dislikes hold user ids and are mutually
// exclusive per user; ForkedIDs accumulates ancestor product ids oldest
// first.
type Product struct {
	tableName   struct{}   `bun:"table:products,alias:p"`
	ID          string     `bun:"id,pk" json:"id"`
	UserID      string     `bun:"user_id,notnull" json:"user_id"`
	Name        string     `bun:"name,notnull" json:"name"`
	Description string     `bun:"description" json:"description"`
	Keywords    StringList `bun:"keywords" json:"keywords"`
	Price       float64    `bun:"price,notnull" json:"price"`
	Color       string     `bun:"color" json:"color,omitempty"`
	Size        string     `bun:"size" json:"size,omitempty"`
	Shared      bool       `bun:"shared,notnull" json:"shared"`
	Purchased   bool       `bun:"purchased,notnull" json:"purchased"`
	PhotoURL    string     `bun:"photo_url" json:"photo_url,omitempty"`
	PhotoSmall  string     `bun:"photo_small" json:"photo_small,omitempty"`
	PhotoNormal string     `bun:"photo_normal" json:"photo_normal,omitempty"`
	Photos      PhotoList  `bun:"photos" json:"photos"`
	URL         string     `bun:"url,notnull" json:"url"`
	OriginalURL string     `bun:"original_url" json:"original_url,omitempty"`
	Domain      string     `bun:"domain" json:"domain,omitempty"`
	Sequence    int64      `bun:"sequence,notnull" json:"sequence"`
	ForkID      string     `bun:"fork_id" json:"fork_id,omitempty"`
	ForkedIDs   StringList `bun:"forked_ids" json:"forked_ids"`
	Likes       StringList `bun:"likes" json:"likes"`
	Dislikes    StringList `bun:"dislikes" json:"dislikes"`
	CreatedAt   time.Time  `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

// PrimaryPhoto assembles the stored triple back into the normalized shape.
func (p *Product) PrimaryPhoto() structs.Photo {
	return structs.Photo{
		URL:    p.PhotoURL,
		Small:  p.PhotoSmall,
		Normal: p.PhotoNormal,
	}
}
