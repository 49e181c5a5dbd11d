package services_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warehouse-ledger/src/apperrors"
	"warehouse-ledger/src/models"
)

func TestRejectLogAdd(t *testing.T) {
	db := newTestDB(t)
	svc := newRejectLogService(db)

	t.Run("base quantity is derived from the conversion rate", func(t *testing.T) {
		item := mustCreatePackagedItem(t, db, "RJ-001", "Boxed Item", 100, 10)

		entry := &models.RejectLogEntry{
			Items: models.RejectItems{{
				ItemID:         item.ID,
				ItemName:       item.Name,
				SKU:            item.SKU,
				Quantity:       2,
				Unit:           "Box",
				ConversionRate: 10,
				Reason:         "water damage",
			}},
			Notes: "found during stock take",
		}
		require.NoError(t, svc.Add(entry))

		assert.NotEqual(t, uuid.Nil, entry.ID)
		assert.False(t, entry.Date.IsZero())
		assert.Equal(t, 20.0, entry.Items[0].BaseQuantity)

		// The reject log never moves stock.
		assert.Equal(t, 100.0, reloadStock(t, db, item.ID))
	})

	t.Run("explicit date and base quantity are kept", func(t *testing.T) {
		date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		entry := &models.RejectLogEntry{
			Date: date,
			Items: models.RejectItems{{
				ItemName: "Loose Item", SKU: "RJ-002",
				Quantity: 3, Unit: "pcs", ConversionRate: 1, BaseQuantity: 3,
			}},
		}
		require.NoError(t, svc.Add(entry))
		assert.True(t, entry.Date.Equal(date))
		assert.Equal(t, 3.0, entry.Items[0].BaseQuantity)
	})

	t.Run("an entry needs at least one item", func(t *testing.T) {
		err := svc.Add(&models.RejectLogEntry{})
		var validation *apperrors.ValidationError
		assert.ErrorAs(t, err, &validation)
	})
}

func TestRejectLogDelete(t *testing.T) {
	db := newTestDB(t)
	svc := newRejectLogService(db)

	entry := &models.RejectLogEntry{
		Items: models.RejectItems{{ItemName: "X", SKU: "RJ-003", Quantity: 1, ConversionRate: 1}},
	}
	require.NoError(t, svc.Add(entry))

	require.NoError(t, svc.Delete(entry.ID))

	var count int64
	db.Model(&models.RejectLogEntry{}).Count(&count)
	assert.Equal(t, int64(0), count)

	// Missing ids, including just-deleted ones, are a no-op.
	assert.NoError(t, svc.Delete(entry.ID))
	assert.NoError(t, svc.Delete(uuid.New()))
}

func TestRejectLogList(t *testing.T) {
	db := newTestDB(t)
	svc := newRejectLogService(db)

	dates := []time.Time{
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		entry := &models.RejectLogEntry{
			Date:  d,
			Items: models.RejectItems{{ItemName: "X", SKU: "RJ-L", Quantity: float64(i + 1), ConversionRate: 1}},
		}
		require.NoError(t, svc.Add(entry))
	}

	entries, total, err := svc.List(1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, entries, 3)
	for i := 0; i < len(entries)-1; i++ {
		assert.False(t, entries[i].Date.Before(entries[i+1].Date))
	}
}
