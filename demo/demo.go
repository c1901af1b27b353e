// Package demo holds the fixed fallback dataset served when the entity
// store is unreachable, so the storefront stays browsable during outages.
package demo

import (
	"time"

	"ollacart_server/structs/tables"
)

var demoBase = time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)

// Products returns the demo catalog. Ids carry the demo_ prefix so
// nothing downstream mistakes them for persisted rows.
func Products() []tables.Product {
	return []tables.Product{
		{
			ID:          "demo_1",
			UserID:      "demo_user",
			Name:        "Wireless Headphones",
			Description: "Premium noise-cancelling wireless headphones",
			Keywords:    tables.StringList{"audio", "wireless", "headphones"},
			Price:       89.99,
			Shared:      true,
			PhotoURL:    "https://demo.ollacart.com/photos/headphones.jpg",
			URL:         "https://demo.ollacart.com/products/headphones",
			Domain:      "demo.ollacart.com",
			Sequence:    3,
			CreatedAt:   demoBase,
			UpdatedAt:   demoBase,
		},
		{
			ID:          "demo_2",
			UserID:      "demo_user",
			Name:        "Smart Watch",
			Description: "Fitness tracking smart watch with heart rate monitor",
			Keywords:    tables.StringList{"wearable", "fitness", "watch"},
			Price:       199.99,
			Shared:      true,
			PhotoURL:    "https://demo.ollacart.com/photos/watch.jpg",
			URL:         "https://demo.ollacart.com/products/watch",
			Domain:      "demo.ollacart.com",
			Sequence:    2,
			CreatedAt:   demoBase,
			UpdatedAt:   demoBase,
		},
		{
			ID:          "demo_3",
			UserID:      "demo_user",
			Name:        "Cotton T-Shirt",
			Description: "Organic cotton t-shirt, available in all sizes",
			Keywords:    tables.StringList{"apparel", "cotton"},
			Price:       29.99,
			Color:       "navy",
			Size:        "M",
			Shared:      true,
			PhotoURL:    "https://demo.ollacart.com/photos/tshirt.jpg",
			URL:         "https://demo.ollacart.com/products/tshirt",
			Domain:      "demo.ollacart.com",
			Sequence:    1,
			CreatedAt:   demoBase,
			UpdatedAt:   demoBase,
		},
	}
}

// CartItems returns the demo shopping lane shown during storage outages.
func CartItems() []tables.CartItem {
	return []tables.CartItem{
		{
			ID:        "demo_cart_1",
			ProductID: "demo_1",
			UserID:    "demo_user",
			CartType:  tables.CartShopping,
			Quantity:  1,
			CreatedAt: demoBase,
			UpdatedAt: demoBase,
		},
		{
			ID:        "demo_cart_2",
			ProductID: "demo_3",
			UserID:    "demo_user",
			CartType:  tables.CartShopping,
			Quantity:  2,
			CreatedAt: demoBase,
			UpdatedAt: demoBase,
		},
	}
}
