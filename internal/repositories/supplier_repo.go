package repositories

import (
	"tienda/internal/models"
)

// SupplierRepository defines the interface for supplier directory access.
type SupplierRepository interface {
	GetAll() ([]models.Supplier, error)
	GetByID(id int) (*models.Supplier, error)
	Create(supplier *models.Supplier) error
	Update(supplier *models.Supplier) error
}
