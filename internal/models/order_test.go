package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tienda/pkg/apperror"
)

// stepClock returns a clock that advances one minute per call.
func stepClock() func() time.Time {
	current := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(time.Minute)
		return current
	}
}

func mustItem(t *testing.T, name string, qty int, price string) *LineItem {
	t.Helper()
	item, err := NewLineItem(name, qty, decimal.RequireFromString(price))
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	order, err := NewOrder("Acme", WithClock(stepClock()))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 1, 9, 1, 0, 0, time.UTC), order.CreatedAt())
	assert.Equal(t, "Acme", order.Supplier())
	assert.Equal(t, StatusPending, order.Status())
	assert.Equal(t, order.CreatedAt(), order.UpdatedAt())
	assert.Empty(t, order.Items())
	assert.True(t, order.Total().IsZero())
	assert.Empty(t, order.ID())

	_, ok := order.DeliveryDate()
	assert.False(t, ok)
}

func TestNewOrder_EmptySupplier(t *testing.T) {
	_, err := NewOrder("")
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestOrder_TotalTracksItems(t *testing.T) {
	order, err := NewOrder("Acme")
	require.NoError(t, err)

	rice := mustItem(t, "Rice", 10, "2.5")
	order.AddItem(rice)
	order.AddItem(mustItem(t, "Oil", 3, "8.0"))
	assert.True(t, order.Total().Equal(decimal.NewFromInt(49)))

	require.NoError(t, rice.SetQuantity(2))
	assert.True(t, order.Total().Equal(decimal.NewFromInt(29)))
}

func TestOrder_MutationsTouchUpdatedAt(t *testing.T) {
	order, err := NewOrder("Acme", WithClock(stepClock()))
	require.NoError(t, err)
	created := order.CreatedAt()

	last := order.UpdatedAt()
	step := func(name string, mutate func()) {
		mutate()
		assert.True(t, order.UpdatedAt().After(last), name)
		last = order.UpdatedAt()
	}

	step("add", func() { order.AddItem(mustItem(t, "Milk", 1, "1")) })
	step("status", func() { require.NoError(t, order.ChangeStatus("shipped")) })
	step("delivery", func() { order.SetDeliveryDate("2025-03-10") })
	step("remove", func() {
		_, err := order.RemoveItem("MILK")
		require.NoError(t, err)
	})

	assert.Equal(t, created, order.CreatedAt())
}

func TestOrder_ChangeStatusIsPermissive(t *testing.T) {
	order, err := NewOrder("Acme")
	require.NoError(t, err)

	require.NoError(t, order.ChangeStatus("cancelled"))
	require.NoError(t, order.ChangeStatus("pending"))
	assert.Equal(t, StatusPending, order.Status())

	before := order.UpdatedAt()
	err = order.ChangeStatus("lost")
	assert.True(t, apperror.IsValidation(err))
	assert.Equal(t, StatusPending, order.Status())
	assert.Equal(t, before, order.UpdatedAt())
}

func TestOrder_RemoveItem(t *testing.T) {
	order, err := NewOrder("Acme")
	require.NoError(t, err)
	order.AddItem(mustItem(t, "milk", 2, "1.10"))
	order.AddItem(mustItem(t, "Eggs", 12, "0.20"))
	order.AddItem(mustItem(t, "Milk", 1, "1.10"))

	removed, err := order.RemoveItem("Milk")
	require.NoError(t, err)
	assert.Equal(t, "milk", removed.Name())

	items := order.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Eggs", items[0].Name())
	assert.Equal(t, "Milk", items[1].Name())

	_, err = order.RemoveItem("Bread")
	assert.True(t, apperror.IsNotFound(err))
	assert.Len(t, order.Items(), 2)
}

func TestOrder_ItemsReturnsCopy(t *testing.T) {
	order, err := NewOrder("Acme")
	require.NoError(t, err)
	order.AddItem(mustItem(t, "Rice", 1, "1"))

	items := order.Items()
	items[0] = nil

	assert.NotNil(t, order.Items()[0])
}
