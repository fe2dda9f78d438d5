package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/internal/services"
	"tienda/pkg/apperror"
)

// MockSupplierRepository is a mock implementation of repositories.SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) GetAll() ([]models.Supplier, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) GetByID(id int) (*models.Supplier, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Create(supplier *models.Supplier) error {
	args := m.Called(supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Update(supplier *models.Supplier) error {
	args := m.Called(supplier)
	return args.Error(0)
}

func TestSupplierService_Register(t *testing.T) {
	mockRepo := new(MockSupplierRepository)
	service := services.NewSupplierService(mockRepo)

	supplier := &models.Supplier{Name: "  Ana ", Company: "Lácteos del Valle", Email: "ana@valle.example"}

	mockRepo.On("Create", supplier).Return(nil).Once()
	err := service.Register(supplier)
	require.NoError(t, err)
	assert.Equal(t, "Ana", supplier.Name)
	assert.True(t, supplier.Active)
	mockRepo.AssertExpectations(t)
}

func TestSupplierService_RegisterValidation(t *testing.T) {
	mockRepo := new(MockSupplierRepository)
	service := services.NewSupplierService(mockRepo)

	err := service.Register(&models.Supplier{Name: "Ana", Email: "nope"})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	details := apperror.From(err).Details()
	assert.Contains(t, details, "Company")
	assert.Contains(t, details, "Email")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSupplierService_RegisterRepositoryFailure(t *testing.T) {
	mockRepo := new(MockSupplierRepository)
	service := services.NewSupplierService(mockRepo)

	supplier := &models.Supplier{Name: "Ana", Company: "Lácteos del Valle"}
	mockRepo.On("Create", supplier).Return(fmt.Errorf("directory full")).Once()

	err := service.Register(supplier)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "directory full")
	mockRepo.AssertExpectations(t)
}

func TestSupplierService_DirectoryQueries(t *testing.T) {
	service := services.NewSupplierService(repositories.NewMemorySupplierRepository())

	for _, name := range []string{"Distribuidora Andina", "Sabores Latinos", "Frutas Selectas"} {
		require.NoError(t, service.Register(&models.Supplier{Name: name, Company: name}))
	}

	found, err := service.FindByName(" sabores latinos ")
	require.NoError(t, err)
	assert.Equal(t, 2, found.ID)

	_, err = service.FindByName("Nobody")
	assert.True(t, apperror.IsNotFound(err))
	_, err = service.FindByName("   ")
	assert.True(t, apperror.IsValidation(err))

	require.NoError(t, service.Deactivate(2))
	active, err := service.Active()
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Distribuidora Andina", active[0].Name)
	assert.Equal(t, "Frutas Selectas", active[1].Name)

	got, err := service.GetByID(2)
	require.NoError(t, err)
	assert.False(t, got.Active)

	assert.True(t, apperror.IsNotFound(service.Deactivate(99)))
}

func TestSupplierService_Carrying(t *testing.T) {
	service := services.NewSupplierService(repositories.NewMemorySupplierRepository())

	catalogue := map[string][]string{
		"Distribuidora Andina": {"Rice", "Flour"},
		"Panadería Santa Ana":  {"Bread", "Flour", "flour"},
		"Lácteos del Valle":    {"Milk"},
	}
	for _, name := range []string{"Distribuidora Andina", "Panadería Santa Ana", "Lácteos del Valle"} {
		supplier := &models.Supplier{Name: name, Company: name}
		for _, product := range catalogue[name] {
			supplier.AddProduct(product)
		}
		require.NoError(t, service.Register(supplier))
	}

	bakery, err := service.FindByName("Panadería Santa Ana")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bread", "Flour"}, bakery.Products)

	carrying, err := service.Carrying(" FLOUR ")
	require.NoError(t, err)
	require.Len(t, carrying, 2)
	assert.Equal(t, "Distribuidora Andina", carrying[0].Name)
	assert.Equal(t, "Panadería Santa Ana", carrying[1].Name)

	require.NoError(t, service.Deactivate(bakery.ID))
	carrying, err = service.Carrying("flour")
	require.NoError(t, err)
	require.Len(t, carrying, 1)
	assert.Equal(t, "Distribuidora Andina", carrying[0].Name)

	carrying, err = service.Carrying("Caviar")
	require.NoError(t, err)
	assert.Empty(t, carrying)

	_, err = service.Carrying("  ")
	assert.True(t, apperror.IsValidation(err))
}
