// internal/services/deal_service.go
package services

import (
	"context"
	"fmt"

	"github.com/burim/garant-backend/internal/models"
	"github.com/burim/garant-backend/internal/repository"
	"github.com/burim/garant-backend/internal/utils"
)

// DealService owns the deal status lifecycle. Every operation evaluates its
// guards in a fixed order: party membership first (failures are reported as
// not-found so outsiders cannot probe for deal existence), then the
// role-specific actor check, then the blocked-status check, then the
// operation-specific status check. Transitions are compare-and-swap writes
// keyed by the deal's version.
type DealService struct {
	deals    repository.DealRepository
	products repository.ProductRepository
}

type CreateDealRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,min=1"`
}

// DealScope selects which side of the user's deals a listing covers.
type DealScope string

const (
	DealScopeSells     DealScope = "sells"
	DealScopePurchases DealScope = "purchases"
	DealScopeAll       DealScope = "all"
)

func NewDealService(deals repository.DealRepository, products repository.ProductRepository) *DealService {
	return &DealService{
		deals:    deals,
		products: products,
	}
}

func (s *DealService) Create(ctx context.Context, identity Identity, req *CreateDealRequest) (*models.Deal, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, ValidationError("validation.invalid", "invalid deal data", utils.GetValidationErrors(err))
	}

	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, wrapRepositoryError(err, "product.not_found", "product not found")
	}

	if product.SellerID == identity.ID {
		return nil, ConflictError("deal.self_purchase", "you cannot open a deal against your own listing")
	}

	deal := &models.Deal{
		SellerID:   product.SellerID,
		ConsumerID: identity.ID,
		ProductID:  product.ID,
		Quantity:   req.Quantity,
		Price:      product.Price * int64(req.Quantity),
		Status:     models.DealStatusCreated,
	}

	if err := s.deals.Create(ctx, deal); err != nil {
		return nil, wrapRepositoryError(err, "product.not_found", "product not found")
	}

	created, err := s.deals.FindByID(ctx, deal.ID)
	if err != nil {
		return nil, InternalError(fmt.Errorf("failed to reload deal: %w", err))
	}
	return created, nil
}

func (s *DealService) Get(ctx context.Context, identity Identity, dealID uint) (*models.Deal, error) {
	deal, err := s.deals.FindByID(ctx, dealID)
	if err != nil {
		return nil, wrapRepositoryError(err, "deal.not_found", "deal not found")
	}

	// Parties see their own deals; moderators and admins see any deal.
	if !isParty(identity, deal) && !canModerate(identity) {
		return nil, NotFoundError("deal.not_found", "deal not found")
	}
	return deal, nil
}

func (s *DealService) Pay(ctx context.Context, identity Identity, dealID uint) (*models.Deal, error) {
	deal, err := s.fetchAsParty(ctx, identity, dealID)
	if err != nil {
		return nil, err
	}

	if !isConsumer(identity, deal) {
		return nil, ForbiddenError("deal.not_a_consumer", "you are not the consumer of this deal")
	}
	if deal.Status.IsBlocked() {
		return nil, ConflictError("deal.blocked", "the deal is in arbitration or already closed")
	}
	if deal.Status == models.DealStatusPaid || deal.Status == models.DealStatusProductSupplied {
		return nil, ConflictError("deal.already_paid", "the deal has already been paid")
	}

	return s.transition(ctx, deal, models.DealStatusPaid, false)
}

func (s *DealService) Cancel(ctx context.Context, identity Identity, dealID uint) (*models.Deal, error) {
	deal, err := s.fetchAsParty(ctx, identity, dealID)
	if err != nil {
		return nil, err
	}

	if deal.Status.IsBlocked() {
		return nil, ConflictError("deal.blocked", "the deal is in arbitration or already closed")
	}
	if deal.Status == models.DealStatusPaid || deal.Status == models.DealStatusProductSupplied {
		return nil, ConflictError("deal.already_paid", "the deal has already been paid")
	}

	status := models.DealStatusCanceledBySeller
	if isConsumer(identity, deal) {
		status = models.DealStatusCanceledByConsumer
	}

	// Cancellation happens before goods move, so the reserved quantity goes
	// back to the listing.
	return s.transition(ctx, deal, status, true)
}

func (s *DealService) Supply(ctx context.Context, identity Identity, dealID uint) (*models.Deal, error) {
	deal, err := s.fetchAsParty(ctx, identity, dealID)
	if err != nil {
		return nil, err
	}

	if !isSeller(identity, deal) {
		return nil, ForbiddenError("deal.not_a_seller", "you are not the seller of this deal")
	}
	if deal.Status.IsBlocked() {
		return nil, ConflictError("deal.blocked", "the deal is in arbitration or already closed")
	}
	if deal.Status == models.DealStatusProductSupplied {
		return nil, ConflictError("deal.already_supplied", "the product has already been supplied")
	}
	if deal.Status != models.DealStatusPaid {
		return nil, PaymentRequiredError("deal.not_paid", "the deal has not been paid yet")
	}

	return s.transition(ctx, deal, models.DealStatusProductSupplied, false)
}

func (s *DealService) Submit(ctx context.Context, identity Identity, dealID uint) (*models.Deal, error) {
	deal, err := s.fetchAsParty(ctx, identity, dealID)
	if err != nil {
		return nil, err
	}

	if !isConsumer(identity, deal) {
		return nil, ForbiddenError("deal.not_a_consumer", "you are not the consumer of this deal")
	}
	if deal.Status.IsBlocked() {
		return nil, ConflictError("deal.blocked", "the deal is in arbitration or already closed")
	}
	if deal.Status != models.DealStatusProductSupplied {
		return nil, ConflictError("deal.not_supplied", "the product has not been supplied yet")
	}

	return s.transition(ctx, deal, models.DealStatusClosedSuccessfully, false)
}

func (s *DealService) RaiseArbitration(ctx context.Context, identity Identity, dealID uint) (*models.Deal, error) {
	deal, err := s.fetchAsParty(ctx, identity, dealID)
	if err != nil {
		return nil, err
	}

	if deal.Status.IsBlocked() {
		return nil, ConflictError("deal.blocked", "the deal is in arbitration or already closed")
	}
	if deal.Status != models.DealStatusProductSupplied {
		return nil, ConflictError("deal.not_supplied", "the product has not been supplied yet")
	}

	return s.transition(ctx, deal, models.DealStatusArbitration, false)
}

func (s *DealService) List(ctx context.Context, identity Identity, scope DealScope, status string) ([]models.Deal, error) {
	filter := repository.DealFilter{}
	userID := identity.ID

	switch scope {
	case DealScopeSells:
		filter.SellerID = &userID
	case DealScopePurchases:
		filter.ConsumerID = &userID
	case DealScopeAll:
		filter.PartyID = &userID
	default:
		return nil, ValidationError("validation.invalid", "unknown deal scope", nil)
	}

	if status != "" {
		dealStatus := models.DealStatus(status)
		if !dealStatus.IsValid() {
			return nil, ValidationError("validation.invalid", "unknown deal status", nil)
		}
		filter.Status = &dealStatus
	}

	deals, err := s.deals.FindAll(ctx, filter)
	if err != nil {
		return nil, InternalError(err)
	}
	return deals, nil
}

// fetchAsParty loads the deal and enforces the membership guard. Outsiders
// get the same not-found error as a missing deal id.
func (s *DealService) fetchAsParty(ctx context.Context, identity Identity, dealID uint) (*models.Deal, error) {
	deal, err := s.deals.FindByID(ctx, dealID)
	if err != nil {
		return nil, wrapRepositoryError(err, "deal.not_found", "deal not found")
	}
	if !isParty(identity, deal) {
		return nil, NotFoundError("deal.not_found", "deal not found")
	}
	return deal, nil
}

func (s *DealService) transition(ctx context.Context, deal *models.Deal, status models.DealStatus, restock bool) (*models.Deal, error) {
	updated, err := s.deals.Transition(ctx, deal.ID, deal.Version, status, restock)
	if err != nil {
		return nil, wrapRepositoryError(err, "deal.not_found", "deal not found")
	}
	return updated, nil
}
