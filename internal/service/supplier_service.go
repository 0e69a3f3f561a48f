package service

import (
	"errors"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierService interface {
	Create(req *model.Supplier, actor string) error
	List() ([]model.Supplier, error)
	Update(id uuid.UUID, req *model.Supplier, actor string) (*model.Supplier, error)
	Delete(id uuid.UUID) error
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
}

func NewSupplierService(sRepo repository.SupplierRepository) SupplierService {
	return &supplierService{supplierRepo: sRepo}
}

func (s *supplierService) Create(req *model.Supplier, actor string) error {
	if msg := validator.FirstError(req); msg != "" {
		return apperr.Validation("%s", msg)
	}

	if dup, _ := s.supplierRepo.FindByName(req.Name, uuid.Nil); dup != nil {
		return apperr.Conflict("Supplier name already exists")
	}

	req.CreatedBy = actor
	req.UpdatedBy = actor
	return s.supplierRepo.Create(req)
}

func (s *supplierService) List() ([]model.Supplier, error) {
	return s.supplierRepo.FindAll()
}

func (s *supplierService) Update(id uuid.UUID, req *model.Supplier, actor string) (*model.Supplier, error) {
	existing, err := s.supplierRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Supplier not found")
		}
		return nil, err
	}

	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.ContactName != "" {
		existing.ContactName = req.ContactName
	}
	if req.Phone != "" {
		existing.Phone = req.Phone
	}
	if req.Email != "" {
		existing.Email = req.Email
	}
	if req.Address != "" {
		existing.Address = req.Address
	}

	if msg := validator.FirstError(existing); msg != "" {
		return nil, apperr.Validation("%s", msg)
	}

	if dup, _ := s.supplierRepo.FindByName(existing.Name, existing.ID); dup != nil {
		return nil, apperr.Conflict("Supplier name already exists")
	}

	existing.UpdatedBy = actor
	if err := s.supplierRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete has no dependency check on referencing products. Products keep a
// dangling supplier reference; see DESIGN.md for the flagged asymmetry with
// category deletion.
func (s *supplierService) Delete(id uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Supplier not found")
		}
		return err
	}
	return s.supplierRepo.Delete(id)
}
