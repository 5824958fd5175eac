package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sales-management/database"
	"sales-management/models"
	"sales-management/reports"
)

func GetDashboard(c *gin.Context) {
	orders, err := database.ListOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	products, err := database.ListActiveProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	totalUsers, err := database.CountUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	totalProducts, err := database.CountProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_users":        totalUsers,
		"total_products":     totalProducts,
		"total_orders":       len(orders),
		"orders_by_status":   reports.CountByStatus(orders),
		"total_sales":        reports.TotalByStatus(orders, models.OrderStatusCompleted),
		"pending_sales":      reports.TotalByStatus(orders, models.OrderStatusPending),
		"low_stock_products": len(reports.LowStock(products)),
		"last_updated":       time.Now().Format(time.RFC3339),
	})
}

func GetSalesSummary(c *gin.Context) {
	orders, err := database.ListOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, reports.Summarize(orders))
}

func GetTopCustomers(c *gin.Context) {
	orders, err := database.ListOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	users, err := database.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	byID := make(map[int64]*models.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}
	c.JSON(http.StatusOK, reports.TopCustomers(orders, byID, 10))
}

func GetTopProducts(c *gin.Context) {
	orders, err := database.ListOrdersByStatus(models.OrderStatusCompleted)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, reports.TopProducts(orders, 10))
}

func GetLowStockProducts(c *gin.Context) {
	products, err := database.ListActiveProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, reports.LowStock(products))
}

func GetSystemStatus(c *gin.Context) {
	users, err := database.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	orders, err := database.ListOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	activeProducts, err := database.ListActiveProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	totalProducts, err := database.CountProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	usersByRole := map[models.Role]int{
		models.RoleAdmin:    0,
		models.RoleSeller:   0,
		models.RoleCustomer: 0,
	}
	for _, user := range users {
		usersByRole[user.Role]++
	}

	counts := reports.CountByStatus(orders)
	c.JSON(http.StatusOK, gin.H{
		"users_by_role":           usersByRole,
		"active_products":         len(activeProducts),
		"inactive_products":       totalProducts - int64(len(activeProducts)),
		"orders_needing_attention": counts[models.OrderStatusPending] + counts[models.OrderStatusApproved],
		"system_health":           "OK",
		"last_check":              time.Now().Format(time.RFC3339),
	})
}
