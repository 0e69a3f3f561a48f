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

type CategoryService interface {
	Create(req *model.Category, actor string) error
	List() ([]model.Category, error)
	Update(id uuid.UUID, req *model.Category, actor string) (*model.Category, error)
	Delete(id uuid.UUID) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

func NewCategoryService(cRepo repository.CategoryRepository, pRepo repository.ProductRepository) CategoryService {
	return &categoryService{categoryRepo: cRepo, productRepo: pRepo}
}

func (s *categoryService) Create(req *model.Category, actor string) error {
	if msg := validator.FirstError(req); msg != "" {
		return apperr.Validation("%s", msg)
	}

	if dup, _ := s.categoryRepo.FindByName(req.Name, uuid.Nil); dup != nil {
		return apperr.Conflict("Category name already exists")
	}

	req.CreatedBy = actor
	req.UpdatedBy = actor
	return s.categoryRepo.Create(req)
}

func (s *categoryService) List() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *categoryService) Update(id uuid.UUID, req *model.Category, actor string) (*model.Category, error) {
	existing, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Category not found")
		}
		return nil, err
	}

	if req.Name != "" {
		existing.Name = req.Name
	}
	existing.Description = req.Description

	if msg := validator.FirstError(existing); msg != "" {
		return nil, apperr.Validation("%s", msg)
	}

	if dup, _ := s.categoryRepo.FindByName(existing.Name, existing.ID); dup != nil {
		return nil, apperr.Conflict("Category name already exists")
	}

	existing.UpdatedBy = actor
	if err := s.categoryRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete refuses while any product still references the category; the error
// names the dependent count so the user knows what to reassign.
func (s *categoryService) Delete(id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Category not found")
		}
		return err
	}

	count, err := s.productRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("Cannot delete: %d product(s) still use this category. Update those products first.", count)
	}

	return s.categoryRepo.Delete(id)
}
