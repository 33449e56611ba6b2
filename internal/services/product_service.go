// internal/services/product_service.go
package services

import (
	"context"

	"github.com/lib/pq"

	"github.com/burim/garant-backend/internal/models"
	"github.com/burim/garant-backend/internal/repository"
	"github.com/burim/garant-backend/internal/utils"
)

// ProductService owns catalog mutation. The ownership checks for update and
// delete live here, on the API side of the boundary; the deal engine never
// mutates products itself.
type ProductService struct {
	products repository.ProductRepository
}

type CreateProductRequest struct {
	Title        string   `json:"title" validate:"required,min=3,max=255"`
	Description  string   `json:"description" validate:"required"`
	Attachments  []string `json:"attachments,omitempty"`
	Price        int64    `json:"price" validate:"min=0"`
	QuantityLeft int      `json:"quantity_left" validate:"min=0"`
}

type UpdateProductRequest struct {
	Title        *string  `json:"title,omitempty" validate:"omitempty,min=3,max=255"`
	Description  *string  `json:"description,omitempty"`
	Attachments  []string `json:"attachments,omitempty"`
	Price        *int64   `json:"price,omitempty" validate:"omitempty,min=0"`
	QuantityLeft *int     `json:"quantity_left,omitempty" validate:"omitempty,min=0"`
}

func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, InternalError(err)
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, wrapRepositoryError(err, "product.not_found", "product not found")
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, sellerID uint, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, ValidationError("validation.invalid", "invalid product data", utils.GetValidationErrors(err))
	}

	product := &models.Product{
		SellerID:     sellerID,
		Title:        req.Title,
		Description:  req.Description,
		Attachments:  req.Attachments,
		Price:        req.Price,
		QuantityLeft: req.QuantityLeft,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, InternalError(err)
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id, sellerID uint, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, ValidationError("validation.invalid", "invalid product data", utils.GetValidationErrors(err))
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, wrapRepositoryError(err, "product.not_found", "product not found")
	}
	if product.SellerID != sellerID {
		return nil, ForbiddenError("product.not_owner", "you are not the owner of this product")
	}

	fields := make(map[string]interface{})
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Attachments != nil {
		fields["attachments"] = pq.StringArray(req.Attachments)
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.QuantityLeft != nil {
		fields["quantity_left"] = *req.QuantityLeft
	}
	if len(fields) == 0 {
		return product, nil
	}

	updated, err := s.products.Update(ctx, id, fields)
	if err != nil {
		return nil, wrapRepositoryError(err, "product.not_found", "product not found")
	}
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id, sellerID uint) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, wrapRepositoryError(err, "product.not_found", "product not found")
	}
	if product.SellerID != sellerID {
		return nil, ForbiddenError("product.not_owner", "you are not the owner of this product")
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return nil, wrapRepositoryError(err, "product.not_found", "product not found")
	}
	return product, nil
}
