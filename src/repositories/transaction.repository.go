package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"warehouse-ledger/src/apperrors"
	"warehouse-ledger/src/models"
)

type TransactionRepository struct {
	DB *gorm.DB
}

// NextTransactionID - Reserve the next year-scoped label, e.g.
// TRX-2026-001. The counter row only moves forward, so a deleted
// transaction never frees its label.
func (r *TransactionRepository) NextTransactionID(tx *gorm.DB, year int) (string, error) {
	var seq models.TransactionSequence
	if err := tx.Where(models.TransactionSequence{Year: year}).
		FirstOrCreate(&seq).Error; err != nil {
		return "", err
	}

	seq.LastValue++
	if err := tx.Save(&seq).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("TRX-%d-%03d", year, seq.LastValue), nil
}

// FindByID - Load one transaction inside the given scope
func (r *TransactionRepository) FindByID(tx *gorm.DB, id uuid.UUID) (*models.Transaction, error) {
	var txn models.Transaction
	err := tx.Where("id = ?", id).First(&txn).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// List - Transaction history, newest first, with pagination
func (r *TransactionRepository) List(txnType models.TransactionType, page, limit int) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.DB.Model(&models.Transaction{})
	if txnType != "" {
		query = query.Where("type = ?", txnType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.
		Order("date DESC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&transactions).Error
	if err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}
