package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"warehouse-ledger/src/apperrors"
	"warehouse-ledger/src/models"
	"warehouse-ledger/src/repositories"
	"warehouse-ledger/src/units"
)

// ItemService owns catalog maintenance. It never writes CurrentStock on
// update paths; stock moves only through the ledger.
type ItemService struct {
	DB   *gorm.DB
	Repo *repositories.ItemRepository
	Log  zerolog.Logger
}

// ItemUpdate carries the editable fields of an item. CurrentStock is
// deliberately absent.
type ItemUpdate struct {
	Name           string
	Category       string
	Location       string
	Price          *float64
	Unit           string
	SecondaryUnit  *string
	ConversionRate *float64
	MinLevel       *float64
	Status         models.ItemStatus
}

// Create inserts a new catalog entry. SKU uniqueness is a core
// invariant here, not a UI convention. An opening stock may be supplied
// on creation; after that, only the ledger moves it.
func (s *ItemService) Create(item *models.Item) error {
	if item.SKU == "" || item.Name == "" || item.Unit == "" {
		return apperrors.Validationf("sku, name and unit are required")
	}
	if item.ConversionRate <= 0 {
		item.ConversionRate = 1
	}
	if item.Status == "" {
		item.Status = models.ItemStatusActive
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		exists, err := s.Repo.ExistsBySKU(tx, item.SKU)
		if err != nil {
			return err
		}
		if exists {
			return &apperrors.DuplicateSKUError{SKU: item.SKU}
		}
		return tx.Create(item).Error
	})
}

// Update edits descriptive and packaging fields. The update column set
// is explicit so current_stock can never ride along.
func (s *ItemService) Update(id uuid.UUID, update ItemUpdate) (*models.Item, error) {
	var updated *models.Item
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		item, err := s.Repo.GetByID(tx, id)
		if err != nil {
			return err
		}

		if update.Name != "" {
			item.Name = update.Name
		}
		if update.Category != "" {
			item.Category = update.Category
		}
		if update.Location != "" {
			item.Location = update.Location
		}
		if update.Price != nil {
			item.Price = decimal.NewFromFloat(*update.Price)
		}
		if update.Unit != "" {
			item.Unit = update.Unit
		}
		if update.SecondaryUnit != nil {
			item.SecondaryUnit = *update.SecondaryUnit
		}
		if update.ConversionRate != nil {
			item.ConversionRate = *update.ConversionRate
			if item.ConversionRate <= 0 {
				item.ConversionRate = 1
			}
		}
		if update.MinLevel != nil {
			item.MinLevel = *update.MinLevel
		}
		if update.Status != "" {
			item.Status = update.Status
		}

		err = tx.Model(item).
			Select("name", "category", "location", "price", "unit",
				"secondary_unit", "conversion_rate", "min_level", "status").
			Updates(item).Error
		if err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an item. Historical transactions referencing it keep
// their snapshot line items; there is no cascade. Missing id is a no-op.
func (s *ItemService) Delete(id uuid.UUID) error {
	_, err := s.Repo.GetByID(s.DB, id)
	if errors.Is(err, apperrors.ErrItemNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.DB.Delete(&models.Item{}, "id = ?", id).Error
}

func (s *ItemService) Get(id uuid.UUID) (*models.Item, error) {
	item, err := s.Repo.GetByID(s.DB, id)
	if err != nil {
		return nil, err
	}
	return withStockDisplay(item), nil
}

func (s *ItemService) GetBySKU(sku string) (*models.Item, error) {
	item, err := s.Repo.GetBySKU(s.DB, sku)
	if err != nil {
		return nil, err
	}
	return withStockDisplay(item), nil
}

func (s *ItemService) List(page, limit int) ([]models.Item, int64, error) {
	items, total, err := s.Repo.List(page, limit)
	if err != nil {
		return nil, 0, err
	}
	for i := range items {
		withStockDisplay(&items[i])
	}
	return items, total, nil
}

func (s *ItemService) ListLowStock() ([]models.Item, error) {
	items, err := s.Repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	for i := range items {
		withStockDisplay(&items[i])
	}
	return items, nil
}

func withStockDisplay(item *models.Item) *models.Item {
	item.StockDisplay = units.FormatBreakdown(
		item.CurrentStock, item.ConversionRate, item.Unit, item.SecondaryUnit)
	return item
}
