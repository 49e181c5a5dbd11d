package repositories

import (
	"gorm.io/gorm"

	"warehouse-ledger/src/models"
)

type AdjustmentRepository struct {
	DB *gorm.DB
}

// List - Import adjustment audit trail, newest first
func (r *AdjustmentRepository) List(page, limit int) ([]models.StockAdjustment, int64, error) {
	var adjustments []models.StockAdjustment
	var total int64

	query := r.DB.Model(&models.StockAdjustment{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&adjustments).Error
	if err != nil {
		return nil, 0, err
	}

	return adjustments, total, nil
}
