package services

import (
	"warehouse-ledger/src/models"
	"warehouse-ledger/src/units"
)

// AddToCart merges one entry into a pending cart the way the
// interactive add-to-cart flow does. The entered quantity is converted
// to base units when the chosen unit is the item's secondary unit; any
// other unit is taken as the base unit.
//
// A repeated item sums its base quantity. The input_* display fields
// survive only while every entry for the item used the same unit; as
// soon as units mix they are cleared and the line shows base units.
func AddToCart(cart models.CartItems, item *models.Item, inputQty float64, inputUnit string) models.CartItems {
	baseQty := inputQty
	if item.HasSecondaryUnit() && inputUnit == item.SecondaryUnit {
		baseQty = units.ToBase(inputQty, item.ConversionRate)
	} else {
		inputUnit = item.Unit
	}

	for i := range cart {
		if cart[i].ItemID != item.ID {
			continue
		}
		cart[i].Quantity += baseQty
		if cart[i].InputQuantity != nil && cart[i].InputUnit == inputUnit {
			*cart[i].InputQuantity += inputQty
		} else {
			cart[i].InputQuantity = nil
			cart[i].InputUnit = ""
		}
		return cart
	}

	qty := inputQty
	return append(cart, models.CartItem{
		ItemID:        item.ID,
		ItemName:      item.Name,
		SKU:           item.SKU,
		Quantity:      baseQty,
		InputQuantity: &qty,
		InputUnit:     inputUnit,
		CurrentStock:  item.CurrentStock,
	})
}
