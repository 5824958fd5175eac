package reports

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-management/models"
)

func completedOrder(t *testing.T, customerID int64, total string, items ...*models.OrderItem) *models.Order {
	t.Helper()
	order, err := models.NewOrder(customerID)
	require.NoError(t, err)
	for _, item := range items {
		require.NoError(t, order.AddItem(item))
	}
	require.NoError(t, order.Approve(99))
	require.NoError(t, order.Complete())
	if total != "" {
		require.True(t, order.TotalAmount.Equal(decimal.RequireFromString(total)),
			"total %s, want %s", order.TotalAmount, total)
	}
	return order
}

func pendingOrder(t *testing.T, customerID int64, items ...*models.OrderItem) *models.Order {
	t.Helper()
	order, err := models.NewOrder(customerID)
	require.NoError(t, err)
	for _, item := range items {
		require.NoError(t, order.AddItem(item))
	}
	return order
}

func item(t *testing.T, productID int64, name, price string, qty int) *models.OrderItem {
	t.Helper()
	out, err := models.NewOrderItem(&models.Product{
		ID:     productID,
		Name:   name,
		Price:  decimal.RequireFromString(price),
		Active: true,
	}, qty)
	require.NoError(t, err)
	return out
}

func TestSummarize(t *testing.T) {
	orders := []*models.Order{
		completedOrder(t, 1, "200.00", item(t, 10, "P", "100.00", 2)),
		completedOrder(t, 2, "50.00", item(t, 11, "Q", "50.00", 1)),
		pendingOrder(t, 1, item(t, 10, "P", "100.00", 1)),
	}

	summary := Summarize(orders)

	assert.Equal(t, 3, summary.TotalOrders)
	assert.Equal(t, 2, summary.CompletedOrders)
	assert.Equal(t, 1, summary.PendingOrders)
	assert.True(t, summary.TotalRevenue.Equal(decimal.RequireFromString("250.00")))
	assert.True(t, summary.AverageTicket.Equal(decimal.RequireFromString("125.00")))
	assert.Equal(t, 3, summary.TotalItemsSold)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	assert.Equal(t, 0, summary.TotalOrders)
	assert.True(t, summary.TotalRevenue.IsZero())
	assert.True(t, summary.AverageTicket.IsZero())
}

func TestSummarizeAverageTicketRoundsHalfUp(t *testing.T) {
	// 100.01 / 2 = 50.005 → 50.01 with half-up rounding
	orders := []*models.Order{
		completedOrder(t, 1, "", item(t, 10, "P", "100.01", 1)),
		completedOrder(t, 2, "", item(t, 11, "Q", "0.00", 1)),
	}

	summary := Summarize(orders)
	assert.True(t, summary.AverageTicket.Equal(decimal.RequireFromString("50.01")),
		"got %s", summary.AverageTicket)
}

func TestCountByStatus(t *testing.T) {
	rejected := pendingOrder(t, 3)
	require.NoError(t, rejected.Reject(99, "no stock"))

	counts := CountByStatus([]*models.Order{
		pendingOrder(t, 1),
		completedOrder(t, 2, ""),
		rejected,
	})

	assert.Equal(t, 1, counts[models.OrderStatusPending])
	assert.Equal(t, 0, counts[models.OrderStatusApproved])
	assert.Equal(t, 1, counts[models.OrderStatusRejected])
	assert.Equal(t, 1, counts[models.OrderStatusCompleted])
}

func TestTotalByStatus(t *testing.T) {
	orders := []*models.Order{
		completedOrder(t, 1, "", item(t, 10, "P", "100.00", 1)),
		completedOrder(t, 2, "", item(t, 10, "P", "100.00", 2)),
		pendingOrder(t, 3, item(t, 11, "Q", "40.00", 1)),
	}

	assert.True(t, TotalByStatus(orders, models.OrderStatusCompleted).Equal(decimal.RequireFromString("300.00")))
	assert.True(t, TotalByStatus(orders, models.OrderStatusPending).Equal(decimal.RequireFromString("40.00")))
	assert.True(t, TotalByStatus(orders, models.OrderStatusRejected).IsZero())
}

func TestTopCustomers(t *testing.T) {
	users := map[int64]*models.User{
		1: {ID: 1, Name: "Maria", Email: "maria@example.com"},
		2: {ID: 2, Name: "Joao", Email: "joao@example.com"},
	}
	orders := []*models.Order{
		completedOrder(t, 1, "", item(t, 10, "P", "100.00", 1)),
		pendingOrder(t, 1),
		completedOrder(t, 2, "", item(t, 10, "P", "100.00", 3)),
	}

	ranks := TopCustomers(orders, users, 10)
	require.Len(t, ranks, 2)

	// customer 1 has more orders even though customer 2 spent more
	assert.Equal(t, int64(1), ranks[0].CustomerID)
	assert.Equal(t, "Maria", ranks[0].Name)
	assert.Equal(t, 2, ranks[0].TotalOrders)
	assert.True(t, ranks[0].TotalSpent.Equal(decimal.RequireFromString("100.00")))

	assert.Equal(t, int64(2), ranks[1].CustomerID)
	assert.True(t, ranks[1].TotalSpent.Equal(decimal.RequireFromString("300.00")))
}

func TestTopCustomersLimit(t *testing.T) {
	orders := []*models.Order{
		pendingOrder(t, 1),
		pendingOrder(t, 2),
		pendingOrder(t, 3),
	}
	ranks := TopCustomers(orders, map[int64]*models.User{}, 2)
	assert.Len(t, ranks, 2)
}

func TestTopProducts(t *testing.T) {
	orders := []*models.Order{
		completedOrder(t, 1, "",
			item(t, 10, "Laptop", "100.00", 2),
			item(t, 11, "Mouse", "50.00", 5)),
		completedOrder(t, 2, "", item(t, 10, "Laptop", "100.00", 1)),
		// pending orders never count toward product sales
		pendingOrder(t, 3, item(t, 12, "Keyboard", "300.00", 9)),
	}

	ranks := TopProducts(orders, 10)
	require.Len(t, ranks, 2)

	assert.Equal(t, int64(11), ranks[0].ProductID)
	assert.Equal(t, 5, ranks[0].QuantitySold)
	assert.True(t, ranks[0].Revenue.Equal(decimal.RequireFromString("250.00")))

	assert.Equal(t, int64(10), ranks[1].ProductID)
	assert.Equal(t, 3, ranks[1].QuantitySold)
	assert.True(t, ranks[1].Revenue.Equal(decimal.RequireFromString("300.00")))
}

func TestLowStock(t *testing.T) {
	products := []*models.Product{
		{ID: 1, Name: "HDMI Cable", Stock: 2, Active: true, Price: decimal.RequireFromString("29.99")},
		{ID: 2, Name: "USB Hub", Stock: 0, Active: true, Price: decimal.RequireFromString("59.99")},
		{ID: 3, Name: "Monitor", Stock: 8, Active: true, Price: decimal.RequireFromString("899.99")},
		{ID: 4, Name: "Retired", Stock: 0, Active: false, Price: decimal.RequireFromString("9.99")},
	}

	alerts := LowStock(products)
	require.Len(t, alerts, 2)

	assert.Equal(t, int64(2), alerts[0].ProductID)
	assert.Equal(t, "OUT_OF_STOCK", alerts[0].Status)
	assert.Equal(t, int64(1), alerts[1].ProductID)
	assert.Equal(t, "LOW_STOCK", alerts[1].Status)
}
