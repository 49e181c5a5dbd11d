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
	"warehouse-ledger/src/units"
)

// RejectLogService is the damaged-goods sibling of the transaction
// journal. Entries are measured independently of item stock: nothing
// here touches Item.CurrentStock.
type RejectLogService struct {
	DB   *gorm.DB
	Repo *repositories.RejectLogRepository
	Log  zerolog.Logger
}

// Add appends an entry. Base quantities are computed from each line's
// conversion ratio when the caller left them unset.
func (s *RejectLogService) Add(entry *models.RejectLogEntry) error {
	if len(entry.Items) == 0 {
		return apperrors.Validationf("reject log entry must have at least one item")
	}

	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}
	for i := range entry.Items {
		if entry.Items[i].BaseQuantity == 0 {
			entry.Items[i].BaseQuantity = units.ToBase(entry.Items[i].Quantity, entry.Items[i].ConversionRate)
		}
	}

	if err := s.DB.Create(entry).Error; err != nil {
		return err
	}

	s.Log.Info().
		Str("id", entry.ID.String()).
		Int("items", len(entry.Items)).
		Msg("reject log entry added")
	return nil
}

// Delete removes an entry; a missing id is a no-op.
func (s *RejectLogService) Delete(id uuid.UUID) error {
	_, err := s.Repo.FindByID(id)
	if errors.Is(err, apperrors.ErrRejectLogNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.DB.Delete(&models.RejectLogEntry{}, "id = ?", id).Error
}

// List - Reject log, newest first
func (s *RejectLogService) List(page, limit int) ([]models.RejectLogEntry, int64, error) {
	return s.Repo.List(page, limit)
}
