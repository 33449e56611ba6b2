// internal/repository/deal_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/burim/garant-backend/internal/models"
)

type dealRepository struct {
	db *gorm.DB
}

func NewDealRepository(db *gorm.DB) DealRepository {
	return &dealRepository{db: db}
}

func (r *dealRepository) Create(ctx context.Context, deal *models.Deal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Guarded decrement keeps quantity_left from going negative under
		// concurrent deal creation.
		res := tx.Model(&models.Product{}).
			Where("id = ? AND quantity_left >= ?", deal.ProductID, deal.Quantity).
			UpdateColumn("quantity_left", gorm.Expr("quantity_left - ?", deal.Quantity))
		if res.Error != nil {
			return fmt.Errorf("failed to reserve quantity: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientQuantity
		}

		if err := tx.Create(deal).Error; err != nil {
			return fmt.Errorf("failed to create deal: %w", err)
		}
		return nil
	})
}

func (r *dealRepository) FindByID(ctx context.Context, id uint) (*models.Deal, error) {
	var deal models.Deal
	err := r.db.WithContext(ctx).
		Preload("Seller").Preload("Consumer").Preload("Product").
		First(&deal, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &deal, nil
}

func (r *dealRepository) FindAll(ctx context.Context, filter DealFilter) ([]models.Deal, error) {
	query := r.db.WithContext(ctx).Model(&models.Deal{}).
		Preload("Seller").Preload("Consumer").Preload("Product")

	if filter.SellerID != nil {
		query = query.Where("seller_id = ?", *filter.SellerID)
	}
	if filter.ConsumerID != nil {
		query = query.Where("consumer_id = ?", *filter.ConsumerID)
	}
	if filter.PartyID != nil {
		query = query.Where("seller_id = ? OR consumer_id = ?", *filter.PartyID, *filter.PartyID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var deals []models.Deal
	if err := query.Order("id").Find(&deals).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch deals: %w", err)
	}
	return deals, nil
}

func (r *dealRepository) Transition(ctx context.Context, id uint, fromVersion int64, status models.DealStatus, restock bool) (*models.Deal, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Deal{}).
			Where("id = ? AND version = ?", id, fromVersion).
			Updates(map[string]interface{}{
				"status":  status,
				"version": fromVersion + 1,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to update deal status: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrVersionConflict
		}

		if restock {
			var deal models.Deal
			if err := tx.First(&deal, id).Error; err != nil {
				return fmt.Errorf("failed to reload deal: %w", err)
			}
			if err := tx.Model(&models.Product{}).
				Where("id = ?", deal.ProductID).
				UpdateColumn("quantity_left", gorm.Expr("quantity_left + ?", deal.Quantity)).Error; err != nil {
				return fmt.Errorf("failed to restock product: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}
