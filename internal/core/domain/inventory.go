package domain

import "time"

// InventoryRecord tracks the available stock for one product.
type InventoryRecord struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	ProductID string    `json:"product_id" bson:"product_id"`
	Quantity  int       `json:"quantity" bson:"quantity"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
