// internal/models/product.go
package models

import (
	"github.com/lib/pq"
)

// Product is a seller's listing. Price is stored in currency minor units.
type Product struct {
	BaseModel
	SellerID     uint           `json:"seller_id" gorm:"not null;index"`
	Title        string         `json:"title" gorm:"size:255;not null"`
	Description  string         `json:"description" gorm:"type:text"`
	Attachments  pq.StringArray `json:"attachments" gorm:"type:text[]"`
	Price        int64          `json:"price" gorm:"not null;check:price >= 0"`
	QuantityLeft int            `json:"quantity_left" gorm:"not null;default:0;check:quantity_left >= 0"`

	// Relationships
	Seller User   `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
	Deals  []Deal `json:"deals,omitempty" gorm:"foreignKey:ProductID"`
}
