package structs

// ProductCreateRequest carries the fields a user supplies when adding a
// listing. Photo is a single URL; the service expands it into the stored
// {url, small, normal} triple.
type ProductCreateRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	URL         string   `json:"url" validate:"required,url"`
	OriginalURL string   `json:"original_url" validate:"omitempty,url"`
	Photo       string   `json:"photo"`
	Photos      []string `json:"photos"`
	Color       string   `json:"color"`
	Size        string   `json:"size"`
	Keywords    []string `json:"keywords"`
}

// ProductUpdateRequest is a field-level partial update; nil means "leave
// untouched", never "clear".
type ProductUpdateRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Color       *string  `json:"color,omitempty"`
	Size        *string  `json:"size,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Shared      *bool    `json:"shared,omitempty"`
	Purchased   *bool    `json:"purchased,omitempty"`
	Photo       *Photo   `json:"photo,omitempty"`
	Photos      []Photo  `json:"photos,omitempty"`
}

// Photo is the stored image triple. Small and Normal are processed
// variants and may be absent.
type Photo struct {
	URL    string `json:"url"`
	Small  string `json:"small,omitempty"`
	Normal string `json:"normal,omitempty"`
}

// ProductSearchRequest selects which slice of the catalog to return.
type ProductSearchRequest struct {
	// Purchased limits results to purchased products.
	Purchased bool
	// Shared limits results to shared products of UserID (the caller's own
	// when UserID is empty).
	Shared bool
	// Social selects shared products owned by any of UserIDs (a follow
	// feed).
	Social  bool
	UserID  string
	UserIDs []string
	Limit   int
	Offset  int
}

type CartAddRequest struct {
	ProductID       string `json:"product_id" validate:"required"`
	Quantity        int    `json:"quantity" validate:"required,gte=1"`
	CartType        string `json:"cart_type" validate:"omitempty,oneof=shopping share sale"`
	AffiliateLinkID string `json:"affiliate_link_id"`
}

type CartUpdateRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

type AffiliateLinkRequest struct {
	ProductID      string   `json:"product_id" validate:"required"`
	RetailerID     string   `json:"retailer_id" validate:"required"`
	CommissionRate *float64 `json:"commission_rate,omitempty" validate:"omitempty,gte=0,lte=1"`
}

type ConversionRequest struct {
	Revenue float64 `json:"revenue" validate:"gte=0"`
}

type RetailerCreateRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Domain string `json:"domain" validate:"required"`
}

type PaymentIntentRequest struct {
	RetailerID  string   `json:"retailer_id" validate:"required"`
	CartItemIDs []string `json:"cart_item_ids" validate:"required,min=1"`
}
