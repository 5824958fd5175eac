package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order event types published to the broker.
const (
	EventOrderCreated   = "created"
	EventOrderApproved  = "approved"
	EventOrderRejected  = "rejected"
	EventOrderCompleted = "completed"
	EventReviewReminder = "review_reminder"
)

type OrderEvent struct {
	OrderID    int64           `json:"order_id"`
	CustomerID int64           `json:"customer_id"`
	Type       string          `json:"type"`
	Status     OrderStatus     `json:"status"`
	Total      decimal.Decimal `json:"total"`
	Occurred   time.Time       `json:"occurred"`
}
