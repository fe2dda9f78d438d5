package repositories

import (
	"sync"

	"github.com/google/uuid"

	"tienda/internal/models"
	"tienda/pkg/apperror"
)

// MemoryOrderRepository keeps orders in process memory, in registration order.
// The lock guards the book itself; callers still serialize edits to a single order.
type MemoryOrderRepository struct {
	orders map[string]*models.Order
	order  []string
	mu     sync.RWMutex
}

// NewMemoryOrderRepository creates an empty order book.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make(map[string]*models.Order),
	}
}

// GetAll returns every registered order, oldest first.
func (r *MemoryOrderRepository) GetAll() ([]*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]*models.Order, 0, len(r.order))
	for _, id := range r.order {
		orderList = append(orderList, r.orders[id])
	}
	return orderList, nil
}

// GetByID returns the order registered under id.
func (r *MemoryOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, apperror.NotFound("order with ID "+id+" not found", apperror.WithDetail("order_id", id))
	}
	return order, nil
}

// Create registers order, assigning an ID when it has none.
func (r *MemoryOrderRepository) Create(order *models.Order) error {
	if order == nil {
		return apperror.Validation("order is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID() == "" {
		order.AssignID(uuid.New().String())
	}
	if _, exists := r.orders[order.ID()]; exists {
		return apperror.Validation("order with ID "+order.ID()+" already registered",
			apperror.WithDetail("order_id", order.ID()))
	}
	r.orders[order.ID()] = order
	r.order = append(r.order, order.ID())
	return nil
}
