package repositories

import (
	"fmt"
	"sort"
	"sync"

	"tienda/internal/models"
	"tienda/pkg/apperror"
)

// MemorySupplierRepository is an in-memory implementation of SupplierRepository.
type MemorySupplierRepository struct {
	suppliers map[int]models.Supplier
	nextID    int
	mu        sync.RWMutex
}

// NewMemorySupplierRepository creates a new instance of MemorySupplierRepository.
func NewMemorySupplierRepository() *MemorySupplierRepository {
	return &MemorySupplierRepository{
		suppliers: make(map[int]models.Supplier),
		nextID:    1,
	}
}

// GetAll returns all suppliers ordered by ID.
func (r *MemorySupplierRepository) GetAll() ([]models.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	supplierList := make([]models.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		supplierList = append(supplierList, s)
	}
	sort.Slice(supplierList, func(i, j int) bool { return supplierList[i].ID < supplierList[j].ID })
	return supplierList, nil
}

// GetByID returns a supplier by its ID.
func (r *MemorySupplierRepository) GetByID(id int) (*models.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	supplier, ok := r.suppliers[id]
	if !ok {
		return nil, apperror.NotFound(fmt.Sprintf("supplier with ID %d not found", id))
	}
	return &supplier, nil
}

// Create stores a new supplier and assigns the next sequential ID.
func (r *MemorySupplierRepository) Create(supplier *models.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	supplier.ID = r.nextID
	r.nextID++
	r.suppliers[supplier.ID] = *supplier
	return nil
}

// Update modifies an existing supplier.
func (r *MemorySupplierRepository) Update(supplier *models.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.suppliers[supplier.ID]; !ok {
		return apperror.NotFound(fmt.Sprintf("supplier with ID %d not found for update", supplier.ID))
	}
	r.suppliers[supplier.ID] = *supplier
	return nil
}
