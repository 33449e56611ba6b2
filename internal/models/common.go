// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums
type UserRole string

const (
	UserRoleUser      UserRole = "user"
	UserRoleModerator UserRole = "moderator"
	UserRoleAdmin     UserRole = "admin"
)

type DealStatus string

const (
	DealStatusCreated            DealStatus = "created"
	DealStatusPaid               DealStatus = "paid"
	DealStatusProductSupplied    DealStatus = "product_supplied"
	DealStatusClosedSuccessfully DealStatus = "closed_successfully"
	DealStatusArbitration        DealStatus = "arbitration"
	DealStatusCanceledByConsumer DealStatus = "canceled_by_consumer"
	DealStatusCanceledBySeller   DealStatus = "canceled_by_seller"
)

// Statuses from which no further transition is permitted. A successfully
// closed deal is blocked too: it can no longer be paid, canceled or supplied.
var BlockedDealStatuses = []DealStatus{
	DealStatusArbitration,
	DealStatusCanceledByConsumer,
	DealStatusCanceledBySeller,
	DealStatusClosedSuccessfully,
}

func (s DealStatus) IsBlocked() bool {
	for _, blocked := range BlockedDealStatuses {
		if s == blocked {
			return true
		}
	}
	return false
}

func (s DealStatus) IsValid() bool {
	switch s {
	case DealStatusCreated, DealStatusPaid, DealStatusProductSupplied,
		DealStatusClosedSuccessfully, DealStatusArbitration,
		DealStatusCanceledByConsumer, DealStatusCanceledBySeller:
		return true
	}
	return false
}
