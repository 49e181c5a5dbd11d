package services

import (
	"warehouse-ledger/src/apperrors"
	"warehouse-ledger/src/models"
)

// StockLedger is the only component allowed to write Item.CurrentStock.
// Every code path that changes stock funnels through the apply/revert
// pair below; persistence stays with the caller.
type StockLedger struct{}

// ApplyEffect records a committed movement against the item's stock.
// Inbound adds, Outbound subtracts. Callers validate first.
func (StockLedger) ApplyEffect(item *models.Item, txnType models.TransactionType, baseQty float64) {
	switch txnType {
	case models.TransactionTypeInbound:
		item.CurrentStock += baseQty
	case models.TransactionTypeOutbound:
		item.CurrentStock -= baseQty
	}
}

// RevertEffect is the mathematical inverse of ApplyEffect, used before
// edits and deletes.
func (StockLedger) RevertEffect(item *models.Item, txnType models.TransactionType, baseQty float64) {
	switch txnType {
	case models.TransactionTypeInbound:
		item.CurrentStock -= baseQty
	case models.TransactionTypeOutbound:
		item.CurrentStock += baseQty
	}
}

// ValidateOutbound checks that the item can cover an outbound movement
// of baseQty base units. The check is advisory at entry time; the
// commit path re-runs it inside the database transaction.
func (StockLedger) ValidateOutbound(item *models.Item, baseQty float64) error {
	if item.CurrentStock < baseQty {
		return &apperrors.InsufficientStockError{
			ItemName:  item.Name,
			SKU:       item.SKU,
			Requested: baseQty,
			Available: item.CurrentStock,
		}
	}
	return nil
}
