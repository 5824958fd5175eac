package controllers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"sales-management/database"
	"sales-management/middlewares"
	"sales-management/models"
	"sales-management/rabbitmq"
)

var rabbitMQ *rabbitmq.RabbitMQ

func SetRabbitMQ(rmq *rabbitmq.RabbitMQ) {
	rabbitMQ = rmq
}

// highValueThreshold marks orders that publish at elevated priority.
var highValueThreshold = decimal.NewFromInt(1000)

type createOrderRequest struct {
	Items []struct {
		ProductID int64 `json:"product_id" binding:"required"`
		Quantity  int   `json:"quantity" binding:"required"`
	} `json:"items" binding:"required"`
}

type rejectOrderRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// CreateOrder builds an order for the authenticated customer. Unit prices
// are captured from the catalog here, never taken from the request.
func CreateOrder(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOrderOperation("create", ok)
	}()
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request createOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(request.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order must contain at least one item"})
		return
	}

	order, err := models.NewOrder(userID.(int64))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, line := range request.Items {
		product, err := database.GetProductByID(line.ProductID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if !product.Active {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product is not available"})
			return
		}

		item, err := models.NewOrderItem(product, line.Quantity)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := order.AddItem(item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if err := database.SaveOrder(order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, order)

	publishOrderEvent(order, models.EventOrderCreated)
	scheduleReviewReminder(order)
}

func GetOrders(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOrderOperation("list", ok)
	}()

	orders, err := database.ListOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func GetOrderDetails(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOrderOperation("details", ok)
	}()

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	order, err := database.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func GetPendingOrders(c *gin.Context) {
	orders, err := database.ListOrdersByStatus(models.OrderStatusPending)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func GetOrdersByStatus(c *gin.Context) {
	status := models.OrderStatus(c.Param("status"))
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
		return
	}

	orders, err := database.ListOrdersByStatus(status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func GetOrdersByCustomer(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	if _, err := database.GetUserByID(customerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	orders, err := database.ListOrdersByCustomer(customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// ApproveOrder transitions a pending order to APPROVED. Only sellers and
// admins get here; the role is checked against the token, the aggregate
// itself does not enforce it.
func ApproveOrder(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOrderOperation("approve", ok)
	}()

	order, sellerID, done := loadOrderForTransition(c)
	if done {
		return
	}

	fromStatus := order.Status
	if err := order.Approve(sellerID); err != nil {
		respondTransitionError(c, err)
		return
	}

	if err := database.SaveOrderTransition(order, fromStatus); err != nil {
		respondTransitionSaveError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
	publishOrderEvent(order, models.EventOrderApproved)
}

// RejectOrder transitions a pending order to REJECTED with a reason.
func RejectOrder(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOrderOperation("reject", ok)
	}()

	var request rejectOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, sellerID, done := loadOrderForTransition(c)
	if done {
		return
	}

	fromStatus := order.Status
	if err := order.Reject(sellerID, request.Reason); err != nil {
		respondTransitionError(c, err)
		return
	}

	if err := database.SaveOrderTransition(order, fromStatus); err != nil {
		respondTransitionSaveError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
	publishOrderEvent(order, models.EventOrderRejected)
}

// CompleteOrder transitions an approved order to COMPLETED.
func CompleteOrder(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOrderOperation("complete", ok)
	}()

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	order, err := database.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	fromStatus := order.Status
	if err := order.Complete(); err != nil {
		respondTransitionError(c, err)
		return
	}

	if err := database.SaveOrderTransition(order, fromStatus); err != nil {
		respondTransitionSaveError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
	publishOrderEvent(order, models.EventOrderCompleted)
}

func loadOrderForTransition(c *gin.Context) (*models.Order, int64, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, 0, true
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return nil, 0, true
	}

	order, err := database.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return nil, 0, true
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return nil, 0, true
	}

	return order, userID.(int64), false
}

func respondTransitionError(c *gin.Context, err error) {
	if errors.Is(err, models.ErrInvalidStateTransition) || errors.Is(err, models.ErrInvalidArgument) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func respondTransitionSaveError(c *gin.Context, err error) {
	if errors.Is(err, database.ErrTransitionConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": "Order was modified concurrently, reload and retry"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order"})
}

func publishOrderEvent(order *models.Order, eventType string) {
	if rabbitMQ == nil {
		return
	}

	priority := 5
	if order.TotalAmount.GreaterThan(highValueThreshold) {
		priority = 9
	}

	event := models.OrderEvent{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Type:       eventType,
		Status:     order.Status,
		Total:      order.TotalAmount,
		Occurred:   time.Now(),
	}
	if err := rabbitMQ.PublishOrderEvent(event, priority); err != nil {
		log.Printf("Failed to publish order %s event: %v", eventType, err)
	}
}

// scheduleReviewReminder asks the broker to redeliver after a delay so a
// still-pending order gets flagged for review.
func scheduleReviewReminder(order *models.Order) {
	if rabbitMQ == nil {
		return
	}

	event := models.OrderEvent{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Type:       models.EventReviewReminder,
		Status:     order.Status,
		Total:      order.TotalAmount,
		Occurred:   time.Now(),
	}
	if err := rabbitMQ.PublishDelayedEvent(event, 15*time.Minute); err != nil {
		log.Printf("Failed to publish delayed review reminder: %v", err)
	}
}
