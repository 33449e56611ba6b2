// internal/services/fakes_test.go
package services

import (
	"context"
	"sync"

	"github.com/burim/garant-backend/internal/models"
	"github.com/burim/garant-backend/internal/repository"
)

// In-memory repository fakes. They mirror the transactional guarantees of the
// real store: deal creation decrements the listing quantity, transitions are
// compare-and-swap on the deal version.

type fakeProductRepo struct {
	mtx      sync.Mutex
	products map[uint]*models.Product
	nextID   uint
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: make(map[uint]*models.Product),
		nextID:   1,
	}
}

func (r *fakeProductRepo) Create(_ context.Context, product *models.Product) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	product.ID = r.nextID
	r.nextID++
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uint) (*models.Product, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *product
	return &clone, nil
}

func (r *fakeProductRepo) FindAll(_ context.Context) ([]models.Product, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	products := make([]models.Product, 0, len(r.products))
	for id := uint(1); id < r.nextID; id++ {
		if product, ok := r.products[id]; ok {
			products = append(products, *product)
		}
	}
	return products, nil
}

func (r *fakeProductRepo) Update(_ context.Context, id uint, fields map[string]interface{}) (*models.Product, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	for field, value := range fields {
		switch field {
		case "title":
			product.Title = value.(string)
		case "description":
			product.Description = value.(string)
		case "price":
			product.Price = value.(int64)
		case "quantity_left":
			product.QuantityLeft = value.(int)
		}
	}

	clone := *product
	return &clone, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uint) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

type fakeDealRepo struct {
	mtx      sync.Mutex
	deals    map[uint]*models.Deal
	nextID   uint
	products *fakeProductRepo
}

func newFakeDealRepo(products *fakeProductRepo) *fakeDealRepo {
	return &fakeDealRepo{
		deals:    make(map[uint]*models.Deal),
		nextID:   1,
		products: products,
	}
}

func (r *fakeDealRepo) Create(_ context.Context, deal *models.Deal) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.products.mtx.Lock()
	product, ok := r.products.products[deal.ProductID]
	if !ok {
		r.products.mtx.Unlock()
		return repository.ErrNotFound
	}
	if product.QuantityLeft < deal.Quantity {
		r.products.mtx.Unlock()
		return repository.ErrInsufficientQuantity
	}
	product.QuantityLeft -= deal.Quantity
	r.products.mtx.Unlock()

	deal.ID = r.nextID
	r.nextID++
	clone := *deal
	r.deals[deal.ID] = &clone
	return nil
}

func (r *fakeDealRepo) FindByID(_ context.Context, id uint) (*models.Deal, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	deal, ok := r.deals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *deal
	return &clone, nil
}

func (r *fakeDealRepo) FindAll(_ context.Context, filter repository.DealFilter) ([]models.Deal, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	deals := make([]models.Deal, 0)
	for id := uint(1); id < r.nextID; id++ {
		deal, ok := r.deals[id]
		if !ok {
			continue
		}
		if filter.SellerID != nil && deal.SellerID != *filter.SellerID {
			continue
		}
		if filter.ConsumerID != nil && deal.ConsumerID != *filter.ConsumerID {
			continue
		}
		if filter.PartyID != nil && !deal.IsParty(*filter.PartyID) {
			continue
		}
		if filter.Status != nil && deal.Status != *filter.Status {
			continue
		}
		deals = append(deals, *deal)
	}
	return deals, nil
}

func (r *fakeDealRepo) Transition(_ context.Context, id uint, fromVersion int64, status models.DealStatus, restock bool) (*models.Deal, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	deal, ok := r.deals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if deal.Version != fromVersion {
		return nil, repository.ErrVersionConflict
	}

	deal.Status = status
	deal.Version++

	if restock {
		r.products.mtx.Lock()
		if product, ok := r.products.products[deal.ProductID]; ok {
			product.QuantityLeft += deal.Quantity
		}
		r.products.mtx.Unlock()
	}

	clone := *deal
	return &clone, nil
}

type fakeUserRepo struct {
	mtx    sync.Mutex
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[uint]*models.User),
		nextID: 1,
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	user.ID = r.nextID
	r.nextID++
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Save(_ context.Context, user *models.User) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}
