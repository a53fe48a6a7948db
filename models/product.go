package models

import "time"

type Product struct {
	ID            string     `gorm:"primaryKey" json:"id"`
	Name          string     `gorm:"uniqueIndex;not null" json:"name"`
	Description   string     `json:"description"`
	Price         string     `gorm:"not null" json:"price"` // decimal kept as text, matching the catalog feed
	OriginalPrice string     `json:"original_price,omitempty"`
	Category      string     `gorm:"index" json:"category"`
	Images        StringList `gorm:"type:text" json:"images"`
	Stock         int        `json:"stock"`
	Rating        string     `json:"rating"`
	ReviewCount   int        `json:"review_count"`
	Featured      bool       `gorm:"index" json:"featured"`
	Tags          StringList `gorm:"type:text" json:"tags"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
