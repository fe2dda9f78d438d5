package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/pkg/apperror"
)

func TestMemorySupplierRepository(t *testing.T) {
	repo := repositories.NewMemorySupplierRepository()

	a := &models.Supplier{Name: "Ana", Company: "Lácteos del Valle", Active: true}
	b := &models.Supplier{Name: "Beto", Company: "Frutas Selectas", Active: true}
	require.NoError(t, repo.Create(a))
	require.NoError(t, repo.Create(b))
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)

	b.Active = false
	require.NoError(t, repo.Update(b))

	got, err := repo.GetByID(2)
	require.NoError(t, err)
	assert.False(t, got.Active)

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Ana", all[0].Name)

	_, err = repo.GetByID(99)
	assert.True(t, apperror.IsNotFound(err))
	assert.True(t, apperror.IsNotFound(repo.Update(&models.Supplier{ID: 42})))
}
