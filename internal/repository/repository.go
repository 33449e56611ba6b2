// internal/repository/repository.go
package repository

import (
	"context"
	"errors"

	"github.com/burim/garant-backend/internal/models"
)

// Sentinel errors shared by all repository implementations. Services translate
// them into API-level error kinds.
var (
	ErrNotFound             = errors.New("record not found")
	ErrVersionConflict      = errors.New("stale version")
	ErrInsufficientQuantity = errors.New("insufficient quantity left")
)

type DealFilter struct {
	SellerID   *uint
	ConsumerID *uint
	PartyID    *uint // matches either side of the deal
	Status     *models.DealStatus
}

// DealRepository is the store contract consumed by the deal engine.
type DealRepository interface {
	// Create inserts the deal and decrements the product's remaining quantity
	// in one transaction. Returns ErrInsufficientQuantity when the listing
	// cannot cover the requested quantity.
	Create(ctx context.Context, deal *models.Deal) error

	FindByID(ctx context.Context, id uint) (*models.Deal, error)

	FindAll(ctx context.Context, filter DealFilter) ([]models.Deal, error)

	// Transition writes the new status iff the stored version still equals
	// fromVersion, bumping the version. Returns ErrVersionConflict when a
	// concurrent transition won the race. With restock set, the deal's
	// quantity is returned to the product inside the same transaction.
	Transition(ctx context.Context, id uint, fromVersion int64, status models.DealStatus, restock bool) (*models.Deal, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Product, error)
	Delete(ctx context.Context, id uint) error
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
}
