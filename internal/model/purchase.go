package model

import "time"

// PurchaseStatus is the lifecycle state of a shop transaction.
type PurchaseStatus string

const (
	PurchasePending   PurchaseStatus = "pending"
	PurchaseCompleted PurchaseStatus = "completed"
	PurchaseFailed    PurchaseStatus = "failed"
)

// Purchase is a shop transaction owned by a User.
// Item name and description are snapshots taken when the payment starts.
type Purchase struct {
	ID                int64          `json:"id"`
	UserID            int64          `json:"user_id"`
	ItemName          string         `json:"item_name"`
	ItemDescription   string         `json:"item_description"`
	Price             float64        `json:"price"`
	Currency          string         `json:"currency"`
	Status            PurchaseStatus `json:"status"`
	PaymentID         *string        `json:"payment_id,omitempty"`
	ProviderPaymentID *string        `json:"provider_payment_id,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	CompletedAt       *time.Time     `json:"completed_at,omitempty"`
}
