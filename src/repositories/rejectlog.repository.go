package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"warehouse-ledger/src/apperrors"
	"warehouse-ledger/src/models"
)

type RejectLogRepository struct {
	DB *gorm.DB
}

func (r *RejectLogRepository) FindByID(id uuid.UUID) (*models.RejectLogEntry, error) {
	var entry models.RejectLogEntry
	err := r.DB.Where("id = ?", id).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrRejectLogNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List - Reject log, newest first, with pagination
func (r *RejectLogRepository) List(page, limit int) ([]models.RejectLogEntry, int64, error) {
	var entries []models.RejectLogEntry
	var total int64

	query := r.DB.Model(&models.RejectLogEntry{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.
		Order("date DESC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
