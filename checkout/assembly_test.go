package checkout

import (
	"encoding/json"
	"testing"

	"github.com/premstore/storefront-api/models"
	"github.com/premstore/storefront-api/storage"
)

func TestCoercePrice(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  float64
	}{
		{"decimal string", "10.50", 10.5},
		{"integer string", "5", 5},
		{"garbage string", "free!", 0},
		{"empty string", "", 0},
		{"float64", 7.25, 7.25},
		{"int", 12, 12},
		{"int64", int64(3), 3},
		{"json number", json.Number("12.5"), 12.5},
		{"nil", nil, 0},
		{"bool", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoercePrice(tt.value); got != tt.want {
				t.Errorf("CoercePrice(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestLineTotalDefaultsQuantityToOne(t *testing.T) {
	line := LineItem{Product: models.Product{Price: "19.99"}, Quantity: 0}
	if got := line.LineTotal(); got != 19.99 {
		t.Errorf("LineTotal() = %v, want 19.99", got)
	}
}

func TestSubtotal(t *testing.T) {
	items := []LineItem{
		{Product: models.Product{Price: "10.50"}, Quantity: 2},
		{Product: models.Product{Price: "5"}, Quantity: 1},
	}
	if got := Subtotal(items); got != 26.0 {
		t.Errorf("Subtotal() = %v, want 26.0", got)
	}
}

func TestSubtotalEmpty(t *testing.T) {
	if got := Subtotal(nil); got != 0 {
		t.Errorf("Subtotal(nil) = %v, want 0", got)
	}
}

func TestSubtotalTreatsBadPricesAsZero(t *testing.T) {
	items := []LineItem{
		{Product: models.Product{Price: "n/a"}, Quantity: 3},
		{Product: models.Product{Price: "4.50"}, Quantity: 2},
	}
	if got := Subtotal(items); got != 9.0 {
		t.Errorf("Subtotal() = %v, want 9.0", got)
	}
}

func TestLinesFromCartSkipsMissingProducts(t *testing.T) {
	store := storage.NewMemoryStore()
	chair := models.Product{Name: "Chair", Price: "100", Category: "Office"}
	if err := store.CreateProduct(&chair); err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	items := []models.CartItem{
		{ProductID: chair.ID, Quantity: 2},
		{ProductID: "gone", Quantity: 1},
	}
	lines := LinesFromCart(items, store.GetProduct)

	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].Product.ID != chair.ID || lines[0].Quantity != 2 {
		t.Errorf("unexpected line: %+v", lines[0])
	}
}
