package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int64, name, price string) *Product {
	return &Product{
		ID:     id,
		Name:   name,
		Price:  decimal.RequireFromString(price),
		Stock:  10,
		Active: true,
	}
}

func TestNewOrder(t *testing.T) {
	order, err := NewOrder(42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), order.CustomerID)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Empty(t, order.Items)
	assert.True(t, order.TotalAmount.IsZero())
	assert.False(t, order.CreatedAt.IsZero())
}

func TestNewOrderRequiresCustomer(t *testing.T) {
	_, err := NewOrder(0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAddItemRecalculatesTotal(t *testing.T) {
	order, err := NewOrder(1)
	require.NoError(t, err)

	first, err := NewOrderItem(product(10, "Laptop", "100.00"), 2)
	require.NoError(t, err)
	require.NoError(t, order.AddItem(first))
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("200.00")),
		"got %s", order.TotalAmount)

	second, err := NewOrderItem(product(11, "Mouse", "50.00"), 1)
	require.NoError(t, err)
	require.NoError(t, order.AddItem(second))
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("250.00")),
		"got %s", order.TotalAmount)

	// total always equals the fold of subtotals
	sum := decimal.Zero
	for _, item := range order.Items {
		sum = sum.Add(item.Subtotal)
	}
	assert.True(t, order.TotalAmount.Equal(sum))
}

func TestAddItemBindsBackReference(t *testing.T) {
	order, err := NewOrder(1)
	require.NoError(t, err)
	order.ID = 77

	item, err := NewOrderItem(product(10, "Laptop", "100.00"), 1)
	require.NoError(t, err)
	require.NoError(t, order.AddItem(item))

	assert.Equal(t, int64(77), item.OrderID)
}

func TestAddItemNil(t *testing.T) {
	order, err := NewOrder(1)
	require.NoError(t, err)
	assert.ErrorIs(t, order.AddItem(nil), ErrInvalidArgument)
}

// The reference system lets items be appended after approval. That behavior
// is preserved: the guard belongs to callers.
func TestAddItemAllowedAfterApproval(t *testing.T) {
	order, err := NewOrder(1)
	require.NoError(t, err)
	require.NoError(t, order.Approve(2))

	item, err := NewOrderItem(product(10, "Laptop", "100.00"), 1)
	require.NoError(t, err)
	require.NoError(t, order.AddItem(item))
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("100.00")))
}

func TestApprove(t *testing.T) {
	order, err := NewOrder(1)
	require.NoError(t, err)

	require.NoError(t, order.Approve(5))
	assert.Equal(t, OrderStatusApproved, order.Status)
	assert.Equal(t, int64(5), order.SellerID)

	err = order.Approve(5)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestApproveRequiresSeller(t *testing.T) {
	order, err := NewOrder(1)
	require.NoError(t, err)

	assert.ErrorIs(t, order.Approve(0), ErrInvalidArgument)
	assert.Equal(t, OrderStatusPending, order.Status)
}

func TestReject(t *testing.T) {
	order, err := NewOrder(1)
	require.NoError(t, err)

	require.NoError(t, order.Reject(5, "out of stock"))
	assert.Equal(t, OrderStatusRejected, order.Status)
	assert.Equal(t, int64(5), order.SellerID)
	assert.Equal(t, "out of stock", order.Notes)

	// rejected is terminal
	assert.ErrorIs(t, order.Complete(), ErrInvalidStateTransition)
	assert.ErrorIs(t, order.Approve(5), ErrInvalidStateTransition)
	assert.ErrorIs(t, order.Reject(5, "again"), ErrInvalidStateTransition)
}

func TestComplete(t *testing.T) {
	order, err := NewOrder(1)
	require.NoError(t, err)

	// pending orders cannot be completed
	assert.ErrorIs(t, order.Complete(), ErrInvalidStateTransition)

	require.NoError(t, order.Approve(5))
	require.NoError(t, order.Complete())
	assert.Equal(t, OrderStatusCompleted, order.Status)

	// completed is terminal
	assert.ErrorIs(t, order.Complete(), ErrInvalidStateTransition)
	assert.ErrorIs(t, order.Approve(5), ErrInvalidStateTransition)
}

func TestFullLifecycle(t *testing.T) {
	order, err := NewOrder(1)
	require.NoError(t, err)

	itemP, err := NewOrderItem(product(10, "P", "100.00"), 2)
	require.NoError(t, err)
	require.NoError(t, order.AddItem(itemP))
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("200.00")))

	itemQ, err := NewOrderItem(product(11, "Q", "50.00"), 1)
	require.NoError(t, err)
	require.NoError(t, order.AddItem(itemQ))
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("250.00")))

	require.NoError(t, order.Approve(9))
	assert.Equal(t, OrderStatusApproved, order.Status)
	assert.Equal(t, int64(9), order.SellerID)

	require.NoError(t, order.Complete())
	assert.Equal(t, OrderStatusCompleted, order.Status)

	assert.ErrorIs(t, order.Approve(9), ErrInvalidStateTransition)
}

func TestTotalQuantity(t *testing.T) {
	order, err := NewOrder(1)
	require.NoError(t, err)

	itemP, err := NewOrderItem(product(10, "P", "10.00"), 3)
	require.NoError(t, err)
	require.NoError(t, order.AddItem(itemP))

	itemQ, err := NewOrderItem(product(11, "Q", "5.00"), 2)
	require.NoError(t, err)
	require.NoError(t, order.AddItem(itemQ))

	assert.Equal(t, 5, order.TotalQuantity())
}

func TestOrderStatusHelpers(t *testing.T) {
	assert.True(t, OrderStatusPending.Valid())
	assert.False(t, OrderStatus("SHIPPED").Valid())

	assert.True(t, OrderStatusRejected.Terminal())
	assert.True(t, OrderStatusCompleted.Terminal())
	assert.False(t, OrderStatusPending.Terminal())
	assert.False(t, OrderStatusApproved.Terminal())
}
