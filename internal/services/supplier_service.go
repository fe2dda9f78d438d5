package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/pkg/apperror"
)

// SupplierService handles business logic related to suppliers.
type SupplierService struct {
	repo repositories.SupplierRepository
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(repo repositories.SupplierRepository) *SupplierService {
	return &SupplierService{
		repo: repo,
	}
}

// Register validates and stores a new, active supplier.
func (s *SupplierService) Register(supplier *models.Supplier) error {
	supplier.Name = strings.TrimSpace(supplier.Name)
	supplier.Company = strings.TrimSpace(supplier.Company)
	supplier.Active = true

	if err := models.ValidateSupplier(supplier); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return apperror.Validation("validation failed", apperror.WithCause(err))
		}
		opts := make([]apperror.Option, 0, len(validationErrors))
		for _, e := range validationErrors {
			opts = append(opts, apperror.WithDetail(e.Field(), fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())))
		}
		return apperror.Validation("validation failed", opts...)
	}
	return s.repo.Create(supplier)
}

// GetByID retrieves a single supplier by its ID.
func (s *SupplierService) GetByID(id int) (*models.Supplier, error) {
	return s.repo.GetByID(id)
}

// FindByName looks a supplier up by name, ignoring case and surrounding spaces.
func (s *SupplierService) FindByName(name string) (*models.Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.Validation("supplier name is required")
	}
	all, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if strings.EqualFold(all[i].Name, name) {
			return &all[i], nil
		}
	}
	return nil, apperror.NotFound("supplier not found: " + name)
}

// Active returns the suppliers that can still receive orders.
func (s *SupplierService) Active() ([]models.Supplier, error) {
	all, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	active := make([]models.Supplier, 0, len(all))
	for _, sup := range all {
		if sup.Active {
			active = append(active, sup)
		}
	}
	return active, nil
}

// Carrying returns the active suppliers that stock product.
func (s *SupplierService) Carrying(product string) ([]models.Supplier, error) {
	if strings.TrimSpace(product) == "" {
		return nil, apperror.Validation("product name is required")
	}
	active, err := s.Active()
	if err != nil {
		return nil, err
	}
	var out []models.Supplier
	for _, sup := range active {
		if sup.Supplies(product) {
			out = append(out, sup)
		}
	}
	return out, nil
}

// Deactivate marks a supplier as no longer active.
func (s *SupplierService) Deactivate(id int) error {
	supplier, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	supplier.Active = false
	return s.repo.Update(supplier)
}
