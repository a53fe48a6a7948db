package checkout

import (
	"encoding/json"
	"strconv"

	"github.com/premstore/storefront-api/models"
)

// LineItem is one product-quantity pair staged for ordering.
type LineItem struct {
	Product  models.Product
	Quantity int
}

// CoercePrice turns whatever a price field holds into a float. Catalog feeds
// deliver prices as strings, older clients as numbers; anything unparseable
// counts as 0 rather than failing assembly.
func CoercePrice(value interface{}) float64 {
	switch v := value.(type) {
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Quantity defaults to 1 when the stored value is missing or nonsensical.
func (li LineItem) quantity() int {
	if li.Quantity < 1 {
		return 1
	}
	return li.Quantity
}

// LineTotal is unit price times quantity for one item.
func (li LineItem) LineTotal() float64 {
	return CoercePrice(li.Product.Price) * float64(li.quantity())
}

// Subtotal sums line totals. An empty list yields 0; callers decide whether an
// empty order may proceed.
func Subtotal(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.LineTotal()
	}
	return total
}

// LinesFromCart pairs cart rows with their catalog products. Rows whose
// product no longer exists are skipped.
func LinesFromCart(items []models.CartItem, lookup func(productID string) (*models.Product, error)) []LineItem {
	var lines []LineItem
	for _, item := range items {
		product, err := lookup(item.ProductID)
		if err != nil || product == nil {
			continue
		}
		lines = append(lines, LineItem{Product: *product, Quantity: item.Quantity})
	}
	return lines
}
