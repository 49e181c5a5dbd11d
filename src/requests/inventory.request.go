package requests

import (
	"time"

	"github.com/google/uuid"
)

// ============ LINE ITEMS ============
type CartItemRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity float64   `json:"quantity" binding:"required,gt=0"`

	// What the operator typed, when a secondary unit was used.
	InputQuantity *float64 `json:"input_quantity,omitempty"`
	InputUnit     string   `json:"input_unit,omitempty"`

	CurrentStock float64 `json:"current_stock,omitempty"`
}

// ============ TRANSACTIONS ============
type CommitTransactionRequest struct {
	Type  string            `json:"type" binding:"required,oneof=Inbound Outbound"`
	Date  time.Time         `json:"date,omitempty"`
	Items []CartItemRequest `json:"items" binding:"required,min=1,dive"`

	SupplierName string   `json:"supplier_name,omitempty"`
	PONumber     string   `json:"po_number,omitempty"`
	RINumber     string   `json:"ri_number,omitempty"`
	SJNumber     string   `json:"sj_number,omitempty"`
	Photos       []string `json:"photos,omitempty"`
}

type EditTransactionRequest struct {
	Date  time.Time         `json:"date,omitempty"`
	Items []CartItemRequest `json:"items" binding:"required,min=1,dive"`

	SupplierName string   `json:"supplier_name,omitempty"`
	PONumber     string   `json:"po_number,omitempty"`
	RINumber     string   `json:"ri_number,omitempty"`
	SJNumber     string   `json:"sj_number,omitempty"`
	Photos       []string `json:"photos,omitempty"`
}

// ============ ITEMS ============
type CreateItemRequest struct {
	SKU      string  `json:"sku" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category,omitempty"`
	Location string  `json:"location,omitempty"`
	Price    float64 `json:"price,omitempty" binding:"gte=0"`

	Unit           string  `json:"unit" binding:"required"`
	SecondaryUnit  string  `json:"secondary_unit,omitempty"`
	ConversionRate float64 `json:"conversion_rate,omitempty" binding:"gte=0"`

	OpeningStock float64 `json:"opening_stock,omitempty" binding:"gte=0"`
	MinLevel     float64 `json:"min_level,omitempty" binding:"gte=0"`
	Status       string  `json:"status,omitempty" binding:"omitempty,oneof=Active Inactive"`
}

type UpdateItemRequest struct {
	Name     string   `json:"name,omitempty"`
	Category string   `json:"category,omitempty"`
	Location string   `json:"location,omitempty"`
	Price    *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`

	Unit           string   `json:"unit,omitempty"`
	SecondaryUnit  *string  `json:"secondary_unit,omitempty"`
	ConversionRate *float64 `json:"conversion_rate,omitempty" binding:"omitempty,gte=0"`

	MinLevel *float64 `json:"min_level,omitempty" binding:"omitempty,gte=0"`
	Status   string   `json:"status,omitempty" binding:"omitempty,oneof=Active Inactive"`
}

// ============ REJECT LOG ============
type RejectItemRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	ItemName string    `json:"item_name" binding:"required"`
	SKU      string    `json:"sku" binding:"required"`

	Quantity       float64 `json:"quantity" binding:"required,gt=0"`
	Unit           string  `json:"unit,omitempty"`
	ConversionRate float64 `json:"conversion_rate,omitempty" binding:"gte=0"`

	Reason string `json:"reason,omitempty"`
}

type AddRejectLogRequest struct {
	Date  time.Time           `json:"date,omitempty"`
	Items []RejectItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes string              `json:"notes,omitempty"`
}
