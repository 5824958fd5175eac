package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusApproved  OrderStatus = "APPROVED"
	OrderStatusRejected  OrderStatus = "REJECTED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusApproved, OrderStatusRejected, OrderStatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusRejected || s == OrderStatusCompleted
}

// Order is the sales aggregate. It owns its items and keeps TotalAmount
// equal to the sum of item subtotals across every mutation. Customer and
// seller are held as ids and resolved through the user repository when a
// caller needs the full record.
type Order struct {
	ID          int64           `json:"id"`
	CustomerID  int64           `json:"customer_id"`
	SellerID    int64           `json:"seller_id,omitempty"`
	Status      OrderStatus     `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Items       []*OrderItem    `json:"items"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewOrder builds an empty PENDING order for a customer.
func NewOrder(customerID int64) (*Order, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("%w: customer is required", ErrInvalidArgument)
	}
	now := time.Now()
	return &Order{
		CustomerID:  customerID,
		Status:      OrderStatusPending,
		TotalAmount: decimal.Zero,
		Items:       []*OrderItem{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// AddItem appends an item, binds it to this order and recomputes the total.
// Items can be appended in any status; callers that must not grow a
// non-pending order have to check Status themselves.
func (o *Order) AddItem(item *OrderItem) error {
	if item == nil {
		return fmt.Errorf("%w: item is required", ErrInvalidArgument)
	}
	o.Items = append(o.Items, item)
	item.OrderID = o.ID
	o.calculateTotal()
	return nil
}

func (o *Order) calculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal)
	}
	o.TotalAmount = total
	o.UpdatedAt = time.Now()
}

// Approve moves a pending order to APPROVED and records the seller.
func (o *Order) Approve(sellerID int64) error {
	if sellerID == 0 {
		return fmt.Errorf("%w: seller is required", ErrInvalidArgument)
	}
	if o.Status != OrderStatusPending {
		return fmt.Errorf("%w: only pending orders can be approved, status is %s", ErrInvalidStateTransition, o.Status)
	}
	o.Status = OrderStatusApproved
	o.SellerID = sellerID
	o.UpdatedAt = time.Now()
	return nil
}

// Reject moves a pending order to REJECTED, recording the seller and the
// reason in the order notes. REJECTED is terminal.
func (o *Order) Reject(sellerID int64, reason string) error {
	if sellerID == 0 {
		return fmt.Errorf("%w: seller is required", ErrInvalidArgument)
	}
	if o.Status != OrderStatusPending {
		return fmt.Errorf("%w: only pending orders can be rejected, status is %s", ErrInvalidStateTransition, o.Status)
	}
	o.Status = OrderStatusRejected
	o.SellerID = sellerID
	o.Notes = reason
	o.UpdatedAt = time.Now()
	return nil
}

// Complete moves an approved order to COMPLETED. The seller was already
// bound at approval. COMPLETED is terminal.
func (o *Order) Complete() error {
	if o.Status != OrderStatusApproved {
		return fmt.Errorf("%w: only approved orders can be completed, status is %s", ErrInvalidStateTransition, o.Status)
	}
	o.Status = OrderStatusCompleted
	o.UpdatedAt = time.Now()
	return nil
}

// TotalQuantity is the number of units across all items.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}
