package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"warehouse-ledger/src/apperrors"
	"warehouse-ledger/src/models"
	"warehouse-ledger/src/repositories"
)

// TransactionDetails carries the metadata fields of a commit or edit.
type TransactionDetails struct {
	Date         time.Time
	SupplierName string
	PONumber     string
	RINumber     string
	SJNumber     string
	Photos       models.Photos
}

// TransactionService is the transaction journal. A transaction either
// exists fully committed or does not exist; every operation below runs
// start-to-finish inside one database transaction.
type TransactionService struct {
	DB           *gorm.DB
	Items        *repositories.ItemRepository
	Transactions *repositories.TransactionRepository
	Ledger       StockLedger
	Log          zerolog.Logger
}

// Commit validates and applies a new transaction. For Outbound the
// whole line-item set is validated before any stock moves: one short
// line fails the commit and nothing mutates.
func (s *TransactionService) Commit(txnType models.TransactionType, lines models.CartItems, details TransactionDetails) (*models.Transaction, error) {
	if !txnType.Valid() {
		return nil, apperrors.ErrInvalidType
	}
	if len(lines) == 0 {
		return nil, apperrors.ErrEmptyTransaction
	}

	var txn *models.Transaction

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cache := map[uuid.UUID]*models.Item{}

		// Validate the set before touching anything. Lines hitting the
		// same item count cumulatively.
		if txnType == models.TransactionTypeOutbound {
			required := map[uuid.UUID]float64{}
			order := []uuid.UUID{}
			for _, line := range lines {
				if _, seen := required[line.ItemID]; !seen {
					order = append(order, line.ItemID)
				}
				required[line.ItemID] += line.Quantity
			}
			for _, itemID := range order {
				item, err := s.loadItem(tx, cache, itemID)
				if err != nil {
					return err
				}
				if err := s.Ledger.ValidateOutbound(item, required[itemID]); err != nil {
					return err
				}
			}
		}

		// Snapshot denormalized fields from the live item before any
		// effect is applied, then apply all effects.
		for i := range lines {
			item, err := s.loadItem(tx, cache, lines[i].ItemID)
			if err != nil {
				return err
			}
			lines[i].ItemName = item.Name
			lines[i].SKU = item.SKU
			lines[i].CurrentStock = item.CurrentStock
		}
		for i := range lines {
			s.Ledger.ApplyEffect(cache[lines[i].ItemID], txnType, lines[i].Quantity)
		}
		for _, item := range cache {
			if err := tx.Save(item).Error; err != nil {
				return err
			}
		}

		date := details.Date
		if date.IsZero() {
			date = time.Now()
		}
		label, err := s.Transactions.NextTransactionID(tx, date.Year())
		if err != nil {
			return err
		}

		txn = &models.Transaction{
			TransactionID: label,
			Type:          txnType,
			Date:          date,
			TotalItems:    lines.TotalQuantity(),
			Items:         lines,
			SupplierName:  details.SupplierName,
			PONumber:      details.PONumber,
			RINumber:      details.RINumber,
			SJNumber:      details.SJNumber,
			Photos:        details.Photos,
		}
		return tx.Create(txn).Error
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info().
		Str("transaction_id", txn.TransactionID).
		Str("type", string(txn.Type)).
		Float64("total_items", txn.TotalItems).
		Msg("transaction committed")
	return txn, nil
}

// Edit replaces a transaction's metadata and line items in one step:
// revert the original lines against a working copy of the affected
// items, apply the new lines, and abort the whole edit if any Outbound
// line would drive stock negative. On failure both the items and the
// stored transaction are left untouched.
func (s *TransactionService) Edit(id uuid.UUID, details TransactionDetails, newLines models.CartItems) error {
	if len(newLines) == 0 {
		return apperrors.ErrEmptyTransaction
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		txn, err := s.Transactions.FindByID(tx, id)
		if err != nil {
			return err
		}

		cache := map[uuid.UUID]*models.Item{}

		// Step 1: revert the original effects. Items that were deleted
		// since the commit are skipped; their snapshot lines stay
		// readable but there is no stock left to give back.
		for _, line := range txn.Items {
			item, err := s.loadItem(tx, cache, line.ItemID)
			if errors.Is(err, apperrors.ErrItemNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			s.Ledger.RevertEffect(item, txn.Type, line.Quantity)
		}

		// Step 2: apply the new lines to the same working copy.
		// Validation runs against the reverted stock, so shrinking a
		// line never trips over the transaction's own old effect.
		for i := range newLines {
			item, err := s.loadItem(tx, cache, newLines[i].ItemID)
			if err != nil {
				return err
			}
			if txn.Type == models.TransactionTypeOutbound {
				if err := s.Ledger.ValidateOutbound(item, newLines[i].Quantity); err != nil {
					return err
				}
			}
			newLines[i].ItemName = item.Name
			newLines[i].SKU = item.SKU
			newLines[i].CurrentStock = item.CurrentStock
			s.Ledger.ApplyEffect(item, txn.Type, newLines[i].Quantity)
		}

		for _, item := range cache {
			if err := tx.Save(item).Error; err != nil {
				return err
			}
		}

		txn.Items = newLines
		txn.TotalItems = newLines.TotalQuantity()
		if !details.Date.IsZero() {
			txn.Date = details.Date
		}
		txn.SupplierName = details.SupplierName
		txn.PONumber = details.PONumber
		txn.RINumber = details.RINumber
		txn.SJNumber = details.SJNumber
		txn.Photos = details.Photos
		return tx.Save(txn).Error
	})
	if err != nil {
		return err
	}

	s.Log.Info().Str("id", id.String()).Msg("transaction edited")
	return nil
}

// Delete reverts the transaction's effects and removes the record.
// A missing id is a no-op. Reverting an Inbound whose stock was already
// consumed may leave the item negative; that is allowed and logged
// rather than blocking the delete.
func (s *TransactionService) Delete(id uuid.UUID) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		txn, err := s.Transactions.FindByID(tx, id)
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		cache := map[uuid.UUID]*models.Item{}
		for _, line := range txn.Items {
			item, err := s.loadItem(tx, cache, line.ItemID)
			if errors.Is(err, apperrors.ErrItemNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			s.Ledger.RevertEffect(item, txn.Type, line.Quantity)
		}

		for _, item := range cache {
			if item.CurrentStock < 0 {
				s.Log.Warn().
					Str("sku", item.SKU).
					Float64("current_stock", item.CurrentStock).
					Str("transaction_id", txn.TransactionID).
					Msg("stock went negative reverting deleted inbound transaction")
			}
			if err := tx.Save(item).Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(&models.Transaction{}, "id = ?", txn.ID).Error; err != nil {
			return err
		}

		s.Log.Info().Str("transaction_id", txn.TransactionID).Msg("transaction deleted")
		return nil
	})
}

// Get - Load one committed transaction
func (s *TransactionService) Get(id uuid.UUID) (*models.Transaction, error) {
	return s.Transactions.FindByID(s.DB, id)
}

// List - Transaction history, newest first
func (s *TransactionService) List(txnType models.TransactionType, page, limit int) ([]models.Transaction, int64, error) {
	return s.Transactions.List(txnType, page, limit)
}

// loadItem keeps one working copy per item for the whole operation so
// repeated lines see each other's effects before anything persists.
func (s *TransactionService) loadItem(tx *gorm.DB, cache map[uuid.UUID]*models.Item, id uuid.UUID) (*models.Item, error) {
	if item, ok := cache[id]; ok {
		return item, nil
	}
	item, err := s.Items.GetByID(tx, id)
	if err != nil {
		return nil, err
	}
	cache[id] = item
	return item, nil
}
