package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ============ ENUMS & TYPES ============
type TransactionType string

const (
	TransactionTypeInbound  TransactionType = "Inbound"
	TransactionTypeOutbound TransactionType = "Outbound"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeInbound || t == TransactionTypeOutbound
}

type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "Active"
	ItemStatusInactive ItemStatus = "Inactive"
)

// CategoryUncategorized is assigned to items auto-created by bulk import.
const CategoryUncategorized = "Uncategorized"

// ============ ITEM MODEL ============
type Item struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	SKU      string `gorm:"type:varchar(100);uniqueIndex;not null" json:"sku"`
	Name     string `gorm:"type:varchar(200);not null" json:"name"`
	Category string `gorm:"type:varchar(100)" json:"category"`
	Location string `gorm:"type:varchar(100)" json:"location"`

	Price decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"price"`

	// Unit is the base counting unit; all ledger arithmetic is in base units.
	Unit string `gorm:"type:varchar(20);not null" json:"unit"`

	// Optional packaging unit. ConversionRate is base units per one
	// secondary unit; 0 or 1 means the item has no secondary unit.
	SecondaryUnit  string  `gorm:"type:varchar(20)" json:"secondary_unit,omitempty"`
	ConversionRate float64 `gorm:"not null;default:1" json:"conversion_rate"`

	// CurrentStock is only ever written by the stock ledger's
	// apply/revert pair.
	CurrentStock float64 `gorm:"not null;default:0" json:"current_stock"`

	MinLevel float64    `gorm:"not null;default:0" json:"min_level"`
	Status   ItemStatus `gorm:"type:varchar(10);not null;default:'Active'" json:"status"`

	// StockDisplay renders CurrentStock in packaging units, e.g.
	// "2 Box 5 pcs". Filled on read paths, never stored.
	StockDisplay string `gorm:"-" json:"stock_display,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Item) TableName() string {
	return "items"
}

func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (i *Item) HasSecondaryUnit() bool {
	return i.SecondaryUnit != "" && i.ConversionRate > 0 && i.ConversionRate != 1
}

// ============ TRANSACTION MODEL ============
type Transaction struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// Human-readable label, e.g. TRX-2026-001. Backed by a persisted
	// per-year counter so labels stay unique across deletions.
	TransactionID string `gorm:"type:varchar(20);uniqueIndex;not null" json:"transaction_id"`

	Type TransactionType `gorm:"type:varchar(10);not null" json:"type"`
	Date time.Time       `gorm:"type:timestamp;not null;index" json:"date"`

	// TotalItems caches the sum of line-item base quantities; recomputed
	// whenever Items changes.
	TotalItems float64 `gorm:"not null" json:"total_items"`

	// Line items are immutable snapshots stored as one JSON blob, never
	// normalized child rows. They stay readable after the Item is
	// renamed or deleted.
	Items CartItems `gorm:"type:jsonb;not null" json:"items"`

	SupplierName string `gorm:"type:varchar(200)" json:"supplier_name,omitempty"`
	PONumber     string `gorm:"type:varchar(100)" json:"po_number,omitempty"`
	RINumber     string `gorm:"type:varchar(100)" json:"ri_number,omitempty"`
	SJNumber     string `gorm:"type:varchar(100)" json:"sj_number,omitempty"`

	// Opaque base64 blobs or URLs, passed through untouched.
	Photos Photos `gorm:"type:jsonb" json:"photos,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// ============ LINE ITEMS ============

// CartItem is one line inside a transaction, and doubles as the pending
// cart entry before commit. Quantity is always in base units; the
// input_* fields keep what the operator actually typed when a secondary
// unit was used.
type CartItem struct {
	ItemID   uuid.UUID `json:"item_id"`
	ItemName string    `json:"item_name"`
	SKU      string    `json:"sku"`

	Quantity float64 `json:"quantity"`

	InputQuantity *float64 `json:"input_quantity,omitempty"`
	InputUnit     string   `json:"input_unit,omitempty"`

	// Snapshot of the item's stock when the line was entered. Display
	// and validation context only, never authoritative.
	CurrentStock float64 `json:"current_stock"`
}

type CartItems []CartItem

func (c CartItems) TotalQuantity() float64 {
	var total float64
	for _, line := range c {
		total += line.Quantity
	}
	return total
}

// ============ SEQUENCE MODEL ============

// TransactionSequence is the year-scoped counter behind transaction
// labels. It only ever increases, so deleted transactions never free
// their label for reuse.
type TransactionSequence struct {
	Year      int   `gorm:"primaryKey;autoIncrement:false"`
	LastValue int64 `gorm:"not null;default:0"`
}

func (TransactionSequence) TableName() string {
	return "transaction_sequences"
}
