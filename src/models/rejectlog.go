package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ============ REJECT LOG ============

// RejectLogEntry records damaged or returned goods. It is a parallel
// ledger measured independently of item stock: appending or deleting an
// entry never touches Item.CurrentStock.
type RejectLogEntry struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Date  time.Time   `gorm:"type:timestamp;not null;index" json:"date"`
	Items RejectItems `gorm:"type:jsonb;not null" json:"items"`
	Notes string      `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `json:"timestamp"`
}

func (RejectLogEntry) TableName() string {
	return "reject_log_entries"
}

func (r *RejectLogEntry) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RejectItemDetail is one damaged-goods line. Like CartItem it keeps
// denormalized snapshots so the entry stays readable after the item is
// gone. BaseQuantity = Quantity * ConversionRate when the reject was
// counted in the secondary unit.
type RejectItemDetail struct {
	ItemID   uuid.UUID `json:"item_id"`
	ItemName string    `json:"item_name"`
	SKU      string    `json:"sku"`

	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	ConversionRate float64 `json:"conversion_rate"`
	BaseQuantity   float64 `json:"base_quantity"`

	Reason string `json:"reason,omitempty"`
}

type RejectItems []RejectItemDetail
