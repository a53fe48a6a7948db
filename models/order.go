package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ShippingAddress is collected during checkout and embedded into the order at
// placement. Field names follow the checkout form payload.
type ShippingAddress struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
}

type Order struct {
	ID                string          `gorm:"primaryKey" json:"id"`
	UserID            string          `gorm:"index" json:"user_id"`
	Items             []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total             float64         `json:"total"`
	Status            OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	ShippingAddress   ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress"`
	PaymentMethod     string          `json:"paymentMethod"`
	TransactionID     string          `json:"transactionId"`
	CreatedAt         time.Time       `json:"createdAt"`
	EstimatedDelivery time.Time       `json:"estimatedDelivery"`
}

// OrderItem snapshots the product at the moment of placement so later catalog
// edits do not rewrite order history.
type OrderItem struct {
	ID           string `gorm:"primaryKey" json:"id"`
	OrderID      string `gorm:"index" json:"order_id"`
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	ProductImage string `json:"product_image,omitempty"`
	Price        string `json:"price"`
	Quantity     int    `json:"quantity"`
}
