package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ============ STOCK ADJUSTMENT AUDIT ============

type AdjustmentReason string

const (
	// AdjustmentReasonImportSeed: stock of a freshly auto-created SKU was
	// seeded to the imported outbound quantity.
	AdjustmentReasonImportSeed AdjustmentReason = "import_seed"
	// AdjustmentReasonImportRaise: stock of an existing SKU was raised to
	// cover an outbound import that would otherwise fail validation.
	AdjustmentReasonImportRaise AdjustmentReason = "import_raise"
)

// StockAdjustment is the audit record for every stock level the bulk
// import reconciler changed outside a committed transaction. The
// "trust the import" rule is intentional, but it must never be silent.
type StockAdjustment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ItemID uuid.UUID `gorm:"type:uuid;not null;index" json:"item_id"`
	SKU    string    `gorm:"type:varchar(100);not null" json:"sku"`

	PreviousStock float64 `gorm:"not null" json:"previous_stock"`
	NewStock      float64 `gorm:"not null" json:"new_stock"`

	Reason AdjustmentReason `gorm:"type:varchar(20);not null" json:"reason"`
	Source string           `gorm:"type:varchar(200)" json:"source,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (StockAdjustment) TableName() string {
	return "stock_adjustments"
}

func (a *StockAdjustment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
