package service

import (
	"errors"
	"fmt"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/ws"
	"go-warehouse-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CatalogService interface {
	CreateProduct(req *model.Product, actor string) error
	UpdateProduct(id uuid.UUID, req *model.Product, actor string) (*model.Product, error)
	DeleteProduct(id uuid.UUID, actor string) error
	ListProducts() ([]model.Product, error)
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	hub          *ws.Hub
}

func NewCatalogService(pRepo repository.ProductRepository, cRepo repository.CategoryRepository, sRepo repository.SupplierRepository, hub *ws.Hub) CatalogService {
	return &catalogService{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		supplierRepo: sRepo,
		hub:          hub,
	}
}

// CreateProduct registers a catalog entry. Stock always starts at 0; only
// transactions move it afterwards.
func (s *catalogService) CreateProduct(req *model.Product, actor string) error {
	req.StockQuantity = 0

	if msg := validator.FirstError(req); msg != "" {
		return apperr.Validation("%s", msg)
	}

	if err := s.checkReferences(req.CategoryID, req.SupplierID); err != nil {
		return err
	}

	if dup, _ := s.productRepo.FindDuplicate(req.Name, req.SKU, uuid.Nil); dup != nil {
		return apperr.Conflict("%s", duplicateProductMessage(dup, req))
	}

	req.CreatedBy = actor
	req.UpdatedBy = actor

	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	s.hub.Publish(map[string]interface{}{
		"type":   "stock_update",
		"action": "product_created",
		"product": map[string]interface{}{
			"id":   req.ID,
			"sku":  req.SKU,
			"name": req.Name,
		},
		"message": fmt.Sprintf("%s created product '%s'", actor, req.Name),
	})

	return nil
}

// UpdateProduct applies the user-editable fields. StockQuantity and
// CostPrice in the request are ignored: the ledger owns them.
func (s *catalogService) UpdateProduct(id uuid.UUID, req *model.Product, actor string) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Product not found")
		}
		return nil, err
	}

	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.SKU != "" {
		existing.SKU = req.SKU
	}
	if req.Unit != "" {
		existing.Unit = req.Unit
	}
	existing.Description = req.Description
	existing.SalePrice = req.SalePrice
	existing.MinimumStock = req.MinimumStock
	if req.CategoryID != uuid.Nil {
		existing.CategoryID = req.CategoryID
	}
	existing.SupplierID = req.SupplierID

	if msg := validator.FirstError(existing); msg != "" {
		return nil, apperr.Validation("%s", msg)
	}

	if err := s.checkReferences(existing.CategoryID, existing.SupplierID); err != nil {
		return nil, err
	}

	if dup, _ := s.productRepo.FindDuplicate(existing.Name, existing.SKU, existing.ID); dup != nil {
		return nil, apperr.Conflict("%s", duplicateProductMessage(dup, existing))
	}

	existing.UpdatedBy = actor
	if err := s.productRepo.UpdateEditable(existing); err != nil {
		return nil, err
	}

	updated, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	s.hub.Publish(map[string]interface{}{
		"type":   "stock_update",
		"action": "product_updated",
		"product": map[string]interface{}{
			"id":   updated.ID,
			"sku":  updated.SKU,
			"name": updated.Name,
		},
		"message": fmt.Sprintf("%s updated product '%s'", actor, updated.Name),
	})

	return updated, nil
}

// DeleteProduct removes a catalog entry, refusing while stock remains.
func (s *catalogService) DeleteProduct(id uuid.UUID, actor string) error {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Product not found")
		}
		return err
	}

	if product.StockQuantity > 0 {
		return apperr.Conflict("Cannot delete a product with remaining stock. Record an outbound transaction to zero it out first.")
	}

	return s.productRepo.Delete(id, actor)
}

func (s *catalogService) ListProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *catalogService) checkReferences(categoryID uuid.UUID, supplierID *uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Category not found")
		}
		return err
	}
	if supplierID != nil {
		if _, err := s.supplierRepo.FindByID(*supplierID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Supplier not found")
			}
			return err
		}
	}
	return nil
}

// duplicateProductMessage names the colliding field so the client can show
// a per-field error.
func duplicateProductMessage(dup, req *model.Product) string {
	if dup.SKU == req.SKU {
		return "SKU already exists"
	}
	return "Product name already exists"
}
