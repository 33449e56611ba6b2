// internal/models/deal.go
package models

// Deal binds a consumer to a seller's product listing and walks the escrow
// status lifecycle. Deals are never deleted; cancellation and closure are
// terminal statuses, not row removal.
//
// Version guards status transitions: every transition is written as a
// compare-and-swap on (id, version), so two concurrent transitions cannot
// both succeed on a stale read.
type Deal struct {
	BaseModel
	SellerID   uint       `json:"seller_id" gorm:"not null;index"`
	ConsumerID uint       `json:"consumer_id" gorm:"not null;index"`
	ProductID  uint       `json:"product_id" gorm:"not null;index"`
	Quantity   int        `json:"quantity" gorm:"not null;check:quantity > 0"`
	Price      int64      `json:"price" gorm:"not null;check:price >= 0"`
	Status     DealStatus `json:"status" gorm:"type:varchar(30);default:'created';index"`
	Version    int64      `json:"version" gorm:"not null;default:0"`

	// Relationships
	Seller   User    `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
	Consumer User    `json:"consumer,omitempty" gorm:"foreignKey:ConsumerID"`
	Product  Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// IsParty reports whether the user participates in the deal.
func (d *Deal) IsParty(userID uint) bool {
	return d.SellerID == userID || d.ConsumerID == userID
}

func (d *Deal) IsSeller(userID uint) bool {
	return d.SellerID == userID
}

func (d *Deal) IsConsumer(userID uint) bool {
	return d.ConsumerID == userID
}
