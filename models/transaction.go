package models

import "time"

type TransactionStatus string

const (
	TransactionStatusInitiated TransactionStatus = "initiated"
	TransactionStatusCaptured  TransactionStatus = "captured"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusRefunded  TransactionStatus = "refunded"
)

type Transaction struct {
	ID        string            `gorm:"primaryKey" json:"id"`
	OrderID   string            `gorm:"uniqueIndex;not null" json:"order_id"`
	UserID    string            `gorm:"index" json:"user_id"`
	Amount    float64           `json:"amount"`
	Currency  string            `json:"currency"`
	Provider  string            `json:"provider"` // "stripe", "razorpay", "cod"
	PaymentID string            `json:"payment_id,omitempty"`
	Status    TransactionStatus `gorm:"type:VARCHAR(20);default:'initiated'" json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// TransactionEvent records a single step of a payment's lifecycle for audit.
type TransactionEvent struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	TransactionID string    `gorm:"index;not null" json:"transaction_id"`
	Type          string    `json:"type"`
	Data          string    `gorm:"type:text" json:"data,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
