package repositories

import (
	"tienda/internal/models"
)

// OrderRepository defines the interface for the in-process order book.
type OrderRepository interface {
	GetAll() ([]*models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
}
