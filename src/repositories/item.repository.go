package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"warehouse-ledger/src/apperrors"
	"warehouse-ledger/src/models"
)

type ItemRepository struct {
	DB *gorm.DB
}

// GetByID - Load one item inside the given transaction scope
func (r *ItemRepository) GetByID(tx *gorm.DB, id uuid.UUID) (*models.Item, error) {
	var item models.Item
	err := tx.Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetBySKU - SKU is unique, reconciliation keys on it
func (r *ItemRepository) GetBySKU(tx *gorm.DB, sku string) (*models.Item, error) {
	var item models.Item
	err := tx.Where("sku = ?", sku).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ExistsBySKU - Duplicate check backing the uniqueness invariant
func (r *ItemRepository) ExistsBySKU(tx *gorm.DB, sku string) (bool, error) {
	var count int64
	err := tx.Model(&models.Item{}).Where("sku = ?", sku).Count(&count).Error
	return count > 0, err
}

// List - Get items with pagination
func (r *ItemRepository) List(page, limit int) ([]models.Item, int64, error) {
	var items []models.Item
	var total int64

	query := r.DB.Model(&models.Item{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.
		Order("sku ASC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// ListLowStock - Items at or below their reorder threshold
func (r *ItemRepository) ListLowStock() ([]models.Item, error) {
	var items []models.Item
	err := r.DB.
		Where("current_stock <= min_level AND status = ?", models.ItemStatusActive).
		Order("sku ASC").
		Find(&items).Error
	return items, err
}
