// Package reports folds loaded order aggregates into the figures the admin
// dashboard shows. Everything here is pure: callers load the data and pass
// it in.
package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"sales-management/models"
)

type SalesSummary struct {
	TotalOrders     int             `json:"total_orders"`
	CompletedOrders int             `json:"completed_orders"`
	PendingOrders   int             `json:"pending_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	AverageTicket   decimal.Decimal `json:"average_ticket"`
	TotalItemsSold  int             `json:"total_items_sold"`
}

// Summarize computes revenue figures over all orders. Revenue, the average
// ticket and items sold only count COMPLETED orders; the average ticket is
// rounded to two places, half up.
func Summarize(orders []*models.Order) SalesSummary {
	summary := SalesSummary{
		TotalOrders:   len(orders),
		TotalRevenue:  decimal.Zero,
		AverageTicket: decimal.Zero,
	}

	for _, order := range orders {
		switch order.Status {
		case models.OrderStatusPending:
			summary.PendingOrders++
		case models.OrderStatusCompleted:
			summary.CompletedOrders++
			summary.TotalRevenue = summary.TotalRevenue.Add(order.TotalAmount)
			summary.TotalItemsSold += order.TotalQuantity()
		}
	}

	if summary.CompletedOrders > 0 {
		summary.AverageTicket = summary.TotalRevenue.DivRound(
			decimal.NewFromInt(int64(summary.CompletedOrders)), 2)
	}
	return summary
}

// CountByStatus buckets orders by lifecycle status. Every status appears in
// the result, empty buckets included.
func CountByStatus(orders []*models.Order) map[models.OrderStatus]int {
	counts := map[models.OrderStatus]int{
		models.OrderStatusPending:   0,
		models.OrderStatusApproved:  0,
		models.OrderStatusRejected:  0,
		models.OrderStatusCompleted: 0,
	}
	for _, order := range orders {
		counts[order.Status]++
	}
	return counts
}

// TotalByStatus sums order totals for one status.
func TotalByStatus(orders []*models.Order, status models.OrderStatus) decimal.Decimal {
	total := decimal.Zero
	for _, order := range orders {
		if order.Status == status {
			total = total.Add(order.TotalAmount)
		}
	}
	return total
}

type CustomerRank struct {
	CustomerID  int64           `json:"customer_id"`
	Name        string          `json:"customer_name"`
	Email       string          `json:"customer_email"`
	TotalOrders int             `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
}

// TopCustomers ranks customers by order count; spend counts COMPLETED orders
// only. Names and emails are filled from the users map when present.
func TopCustomers(orders []*models.Order, users map[int64]*models.User, limit int) []CustomerRank {
	byCustomer := map[int64]*CustomerRank{}
	for _, order := range orders {
		rank, ok := byCustomer[order.CustomerID]
		if !ok {
			rank = &CustomerRank{CustomerID: order.CustomerID, TotalSpent: decimal.Zero}
			if user, found := users[order.CustomerID]; found {
				rank.Name = user.Name
				rank.Email = user.Email
			}
			byCustomer[order.CustomerID] = rank
		}
		rank.TotalOrders++
		if order.Status == models.OrderStatusCompleted {
			rank.TotalSpent = rank.TotalSpent.Add(order.TotalAmount)
		}
	}

	ranks := make([]CustomerRank, 0, len(byCustomer))
	for _, rank := range byCustomer {
		ranks = append(ranks, *rank)
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].TotalOrders != ranks[j].TotalOrders {
			return ranks[i].TotalOrders > ranks[j].TotalOrders
		}
		return ranks[i].CustomerID < ranks[j].CustomerID
	})
	if limit > 0 && len(ranks) > limit {
		ranks = ranks[:limit]
	}
	return ranks
}

type ProductRank struct {
	ProductID    int64           `json:"product_id"`
	Name         string          `json:"product_name"`
	QuantitySold int             `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// TopProducts ranks products by units sold across COMPLETED orders.
func TopProducts(orders []*models.Order, limit int) []ProductRank {
	byProduct := map[int64]*ProductRank{}
	for _, order := range orders {
		if order.Status != models.OrderStatusCompleted {
			continue
		}
		for _, item := range order.Items {
			rank, ok := byProduct[item.ProductID]
			if !ok {
				rank = &ProductRank{ProductID: item.ProductID, Name: item.ProductName, Revenue: decimal.Zero}
				byProduct[item.ProductID] = rank
			}
			rank.QuantitySold += item.Quantity
			rank.Revenue = rank.Revenue.Add(item.Subtotal)
		}
	}

	ranks := make([]ProductRank, 0, len(byProduct))
	for _, rank := range byProduct {
		ranks = append(ranks, *rank)
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].QuantitySold != ranks[j].QuantitySold {
			return ranks[i].QuantitySold > ranks[j].QuantitySold
		}
		return ranks[i].ProductID < ranks[j].ProductID
	})
	if limit > 0 && len(ranks) > limit {
		ranks = ranks[:limit]
	}
	return ranks
}

type StockAlert struct {
	ProductID int64           `json:"id"`
	Name      string          `json:"name"`
	Stock     int             `json:"current_stock"`
	Price     decimal.Decimal `json:"price"`
	Status    string          `json:"status"`
}

// LowStock lists active products below the restock threshold, lowest stock
// first.
func LowStock(products []*models.Product) []StockAlert {
	alerts := []StockAlert{}
	for _, product := range products {
		if !product.Active || !product.LowStock() {
			continue
		}
		status := "LOW_STOCK"
		if product.Stock == 0 {
			status = "OUT_OF_STOCK"
		}
		alerts = append(alerts, StockAlert{
			ProductID: product.ID,
			Name:      product.Name,
			Stock:     product.Stock,
			Price:     product.Price,
			Status:    status,
		})
	}
	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].Stock != alerts[j].Stock {
			return alerts[i].Stock < alerts[j].Stock
		}
		return alerts[i].ProductID < alerts[j].ProductID
	})
	return alerts
}
