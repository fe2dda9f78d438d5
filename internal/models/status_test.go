package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tienda/internal/models"
	"tienda/pkg/apperror"
)

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"pending", "shipped", "received", "cancelled"} {
		s, err := models.ParseStatus(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, s.String())
		assert.True(t, s.Valid())
	}

	for _, raw := range []string{"lost", "", "Pending", "delivered"} {
		_, err := models.ParseStatus(raw)
		require.Error(t, err, raw)
		assert.True(t, apperror.IsValidation(err))
		assert.Contains(t, err.Error(), "pending, shipped, received, cancelled")
	}
}

func TestStatusesIsACopy(t *testing.T) {
	all := models.Statuses()
	require.Len(t, all, 4)
	all[0] = "lost"

	assert.Equal(t, models.StatusPending, models.Statuses()[0])
}

func TestStatusNames(t *testing.T) {
	assert.Equal(t, "pending, shipped, received, cancelled", models.StatusNames())
}
