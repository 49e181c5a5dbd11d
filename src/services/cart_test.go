package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warehouse-ledger/src/models"
	"warehouse-ledger/src/services"
)

func TestAddToCart(t *testing.T) {
	db := newTestDB(t)

	t.Run("base unit passes through", func(t *testing.T) {
		item := mustCreateItem(t, db, "CT-001", "Loose Item", 40)

		cart := services.AddToCart(models.CartItems{}, item, 7, "pcs")
		require.Len(t, cart, 1)
		assert.Equal(t, 7.0, cart[0].Quantity)
		require.NotNil(t, cart[0].InputQuantity)
		assert.Equal(t, 7.0, *cart[0].InputQuantity)
		assert.Equal(t, "pcs", cart[0].InputUnit)
		assert.Equal(t, 40.0, cart[0].CurrentStock)
	})

	t.Run("secondary unit converts to base", func(t *testing.T) {
		item := mustCreatePackagedItem(t, db, "CT-002", "Boxed Item", 0, 12)

		cart := services.AddToCart(models.CartItems{}, item, 3, "Box")
		require.Len(t, cart, 1)
		assert.Equal(t, 36.0, cart[0].Quantity)
		assert.Equal(t, 3.0, *cart[0].InputQuantity)
		assert.Equal(t, "Box", cart[0].InputUnit)
	})

	t.Run("unknown unit is treated as base", func(t *testing.T) {
		item := mustCreatePackagedItem(t, db, "CT-003", "Boxed Item", 0, 12)

		cart := services.AddToCart(models.CartItems{}, item, 5, "Crate")
		require.Len(t, cart, 1)
		assert.Equal(t, 5.0, cart[0].Quantity)
		assert.Equal(t, "pcs", cart[0].InputUnit)
	})

	t.Run("repeated item with same unit merges and sums", func(t *testing.T) {
		item := mustCreatePackagedItem(t, db, "CT-004", "Boxed Item", 0, 10)

		cart := services.AddToCart(models.CartItems{}, item, 2, "Box")
		cart = services.AddToCart(cart, item, 1, "Box")
		require.Len(t, cart, 1)
		assert.Equal(t, 30.0, cart[0].Quantity)
		assert.Equal(t, 3.0, *cart[0].InputQuantity)
		assert.Equal(t, "Box", cart[0].InputUnit)
	})

	t.Run("mixing units keeps base quantity and drops display fields", func(t *testing.T) {
		item := mustCreatePackagedItem(t, db, "CT-005", "Boxed Item", 0, 10)

		cart := services.AddToCart(models.CartItems{}, item, 2, "Box")
		cart = services.AddToCart(cart, item, 5, "pcs")
		require.Len(t, cart, 1)
		assert.Equal(t, 25.0, cart[0].Quantity)
		assert.Nil(t, cart[0].InputQuantity)
		assert.Empty(t, cart[0].InputUnit)
	})

	t.Run("distinct items stay on separate lines", func(t *testing.T) {
		itemA := mustCreateItem(t, db, "CT-006", "Item A", 0)
		itemB := mustCreateItem(t, db, "CT-007", "Item B", 0)

		cart := services.AddToCart(models.CartItems{}, itemA, 1, "pcs")
		cart = services.AddToCart(cart, itemB, 2, "pcs")
		require.Len(t, cart, 2)
		assert.Equal(t, 3.0, cart.TotalQuantity())
	})
}
