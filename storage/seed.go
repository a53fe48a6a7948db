package storage

import (
	"time"

	"github.com/premstore/storefront-api/models"
)

// Seed loads the development catalog into a memory store. The data mirrors
// what the API serves when the database is unreachable.
func Seed(store *MemoryStore) *MemoryStore {
	now := time.Now()

	categories := []models.Category{
		{ID: "1", Name: "Furniture", Description: "Home and office furniture", CreatedAt: now},
		{ID: "2", Name: "Lighting", Description: "Indoor and outdoor lighting", CreatedAt: now},
		{ID: "3", Name: "Decor", Description: "Home decoration items", CreatedAt: now},
		{ID: "4", Name: "Office", Description: "Office supplies and equipment", CreatedAt: now},
		{ID: "5", Name: "Kitchen", Description: "Kitchen appliances and tools", CreatedAt: now},
	}
	for i := range categories {
		_ = store.CreateCategory(&categories[i])
	}

	products := []models.Product{
		{
			ID:            "1",
			Name:          "Modern Office Chair",
			Description:   "Ergonomic office chair with lumbar support",
			Price:         "299.99",
			OriginalPrice: "399.99",
			Category:      "Office",
			Images:        models.StringList{"https://images.pexels.com/photos/586344/pexels-photo-586344.jpeg"},
			Stock:         15,
			Rating:        "4.5",
			ReviewCount:   23,
			Featured:      true,
			Tags:          models.StringList{"ergonomic", "office", "chair"},
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:          "2",
			Name:        "LED Desk Lamp",
			Description: "Adjustable LED desk lamp with USB charging port",
			Price:       "79.99",
			Category:    "Lighting",
			Images:      models.StringList{"https://images.pexels.com/photos/1112598/pexels-photo-1112598.jpeg"},
			Stock:       8,
			Rating:      "4.2",
			ReviewCount: 15,
			Tags:        models.StringList{"led", "desk", "lamp"},
			CreatedAt:   now.Add(-time.Minute),
			UpdatedAt:   now,
		},
	}
	for i := range products {
		_ = store.CreateProduct(&products[i])
	}

	return store
}
