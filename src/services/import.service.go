package services

import (
	"errors"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"warehouse-ledger/src/apperrors"
	"warehouse-ledger/src/models"
	"warehouse-ledger/src/repositories"
	"warehouse-ledger/src/units"
)

// ImportRow is one raw spreadsheet row. Quantity stays text so the
// reconciler owns numeric validation and can report it per row.
type ImportRow struct {
	Row      int    `json:"row"`
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

// ImportRowError is non-fatal: the row is skipped and the batch
// continues.
type ImportRowError struct {
	Row    int    `json:"row"`
	SKU    string `json:"sku,omitempty"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Cart             models.CartItems         `json:"cart"`
	NewItemsCreated  []string                 `json:"new_items_created"`
	StockAdjustments []models.StockAdjustment `json:"stock_adjustments"`
	RowErrors        []ImportRowError         `json:"row_errors"`
}

// ImportService reconciles an externally supplied batch against the
// live catalog. Bulk imports are treated as an authoritative re-sync of
// warehouse reality: unknown SKUs are created and short outbound stock
// is raised instead of rejected, with every such change written to the
// stock_adjustments audit trail.
type ImportService struct {
	DB     *gorm.DB
	Items  *repositories.ItemRepository
	Ledger StockLedger
	Log    zerolog.Logger
}

type parsedRow struct {
	qty  float64
	unit string
}

type skuBatch struct {
	sku  string
	name string
	rows []parsedRow
}

// Reconcile builds a validated cart in base units for a transaction of
// the given type, creating and adjusting catalog entries as needed.
// Source labels the batch (e.g. the uploaded file name) in the audit
// trail.
func (s *ImportService) Reconcile(txnType models.TransactionType, rows []ImportRow, source string) (*ImportResult, error) {
	if !txnType.Valid() {
		return nil, apperrors.ErrInvalidType
	}

	result := &ImportResult{
		Cart:             models.CartItems{},
		NewItemsCreated:  []string{},
		StockAdjustments: []models.StockAdjustment{},
		RowErrors:        []ImportRowError{},
	}

	// Aggregate rows per SKU, in order of first appearance, before any
	// catalog work: the required total must reflect the whole batch.
	batches := []*skuBatch{}
	bySKU := map[string]*skuBatch{}
	for _, row := range rows {
		sku := strings.TrimSpace(row.SKU)
		name := strings.TrimSpace(row.Name)
		if sku == "" || name == "" {
			result.RowErrors = append(result.RowErrors, ImportRowError{
				Row: row.Row, SKU: sku, Reason: "missing SKU or Name",
			})
			continue
		}
		qty, err := strconv.ParseFloat(strings.TrimSpace(row.Quantity), 64)
		if err != nil || qty <= 0 {
			result.RowErrors = append(result.RowErrors, ImportRowError{
				Row: row.Row, SKU: sku, Reason: "quantity is not a positive number",
			})
			continue
		}
		batch, ok := bySKU[sku]
		if !ok {
			batch = &skuBatch{sku: sku, name: name}
			bySKU[sku] = batch
			batches = append(batches, batch)
		}
		batch.rows = append(batch.rows, parsedRow{qty: qty, unit: strings.TrimSpace(row.Unit)})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, batch := range batches {
			item, err := s.Items.GetBySKU(tx, batch.sku)
			switch {
			case errors.Is(err, apperrors.ErrItemNotFound):
				item, err = s.createItem(tx, txnType, batch, source, result)
				if err != nil {
					return err
				}
			case err != nil:
				return err
			default:
				if err := s.raiseIfShort(tx, txnType, item, batch, source, result); err != nil {
					return err
				}
			}

			for _, row := range batch.rows {
				result.Cart = AddToCart(result.Cart, item, row.qty, row.unit)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info().
		Str("type", string(txnType)).
		Str("source", source).
		Int("cart_lines", len(result.Cart)).
		Int("new_items", len(result.NewItemsCreated)).
		Int("adjustments", len(result.StockAdjustments)).
		Int("row_errors", len(result.RowErrors)).
		Msg("import batch reconciled")

	return result, nil
}

// createItem provisions an unknown SKU. The row's unit becomes the base
// unit; for an outbound batch the stock is seeded to exactly the
// batch's required quantity so the later commit validation passes.
func (s *ImportService) createItem(tx *gorm.DB, txnType models.TransactionType, batch *skuBatch, source string, result *ImportResult) (*models.Item, error) {
	var total float64
	for _, row := range batch.rows {
		total += row.qty
	}

	item := &models.Item{
		SKU:            batch.sku,
		Name:           batch.name,
		Category:       models.CategoryUncategorized,
		Price:          decimal.Zero,
		Unit:           batch.rows[0].unit,
		ConversionRate: 1,
		MinLevel:       0,
		Status:         models.ItemStatusActive,
	}
	if item.Unit == "" {
		item.Unit = "pcs"
	}
	if err := tx.Create(item).Error; err != nil {
		return nil, err
	}

	if txnType == models.TransactionTypeOutbound {
		s.Ledger.ApplyEffect(item, models.TransactionTypeInbound, total)
		if err := tx.Save(item).Error; err != nil {
			return nil, err
		}
		adjustment := models.StockAdjustment{
			ItemID:        item.ID,
			SKU:           item.SKU,
			PreviousStock: 0,
			NewStock:      item.CurrentStock,
			Reason:        models.AdjustmentReasonImportSeed,
			Source:        source,
		}
		if err := tx.Create(&adjustment).Error; err != nil {
			return nil, err
		}
		result.StockAdjustments = append(result.StockAdjustments, adjustment)
		s.Log.Warn().
			Str("sku", item.SKU).
			Float64("seeded_stock", item.CurrentStock).
			Msg("import created unknown SKU and seeded its stock")
	}

	result.NewItemsCreated = append(result.NewItemsCreated, item.SKU)
	return item, nil
}

// raiseIfShort lifts a known item's stock to the batch's required total
// when an outbound import would otherwise fail validation.
func (s *ImportService) raiseIfShort(tx *gorm.DB, txnType models.TransactionType, item *models.Item, batch *skuBatch, source string, result *ImportResult) error {
	if txnType != models.TransactionTypeOutbound {
		return nil
	}

	var required float64
	for _, row := range batch.rows {
		if item.HasSecondaryUnit() && row.unit == item.SecondaryUnit {
			required += units.ToBase(row.qty, item.ConversionRate)
		} else {
			required += row.qty
		}
	}
	if item.CurrentStock >= required {
		return nil
	}

	previous := item.CurrentStock
	s.Ledger.ApplyEffect(item, models.TransactionTypeInbound, required-previous)
	if err := tx.Save(item).Error; err != nil {
		return err
	}

	adjustment := models.StockAdjustment{
		ItemID:        item.ID,
		SKU:           item.SKU,
		PreviousStock: previous,
		NewStock:      item.CurrentStock,
		Reason:        models.AdjustmentReasonImportRaise,
		Source:        source,
	}
	if err := tx.Create(&adjustment).Error; err != nil {
		return err
	}
	result.StockAdjustments = append(result.StockAdjustments, adjustment)
	s.Log.Warn().
		Str("sku", item.SKU).
		Float64("previous_stock", previous).
		Float64("new_stock", item.CurrentStock).
		Msg("import raised stock to cover outbound batch")
	return nil
}
