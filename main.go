package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sales-management/config"
	"sales-management/consumers"
	"sales-management/controllers"
	"sales-management/database"
	"sales-management/middlewares"
	"sales-management/models"
	"sales-management/rabbitmq"
)

func main() {
	if err := database.InitDB(); err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}
	defer database.CloseDB()

	cfg := config.LoadConfig()

	rmq, err := rabbitmq.NewRabbitMQ(cfg)
	if err != nil {
		log.Fatalf("RabbitMQ initialization failed: %v", err)
	}
	defer rmq.Close()

	if err := rmq.SetupQueues(); err != nil {
		log.Fatalf("Failed to setup RabbitMQ queues: %v", err)
	}

	go consumers.StartOrderConsumer(rmq.Channel, cfg)

	controllers.SetRabbitMQ(rmq)

	r := gin.Default()

	r.Use(middlewares.PrometheusMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.POST("/validate", controllers.ValidateToken)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/products", controllers.GetProducts)
		api.GET("/products/in-stock", controllers.GetProductsInStock)
		api.GET("/products/:id", controllers.GetProductByID)
		api.POST("/products", middlewares.RequireRole(models.RoleAdmin), controllers.CreateProduct)
		api.PUT("/products/:id", middlewares.RequireRole(models.RoleAdmin), controllers.UpdateProduct)
		api.DELETE("/products/:id", middlewares.RequireRole(models.RoleAdmin), controllers.DeleteProduct)

		api.GET("/users", middlewares.RequireRole(models.RoleAdmin), controllers.GetUsers)
		api.POST("/users", middlewares.RequireRole(models.RoleAdmin), controllers.CreateUser)

		api.POST("/orders", controllers.CreateOrder)
		api.GET("/orders", controllers.GetOrders)
		api.GET("/orders/pending", controllers.GetPendingOrders)
		api.GET("/orders/status/:status", controllers.GetOrdersByStatus)
		api.GET("/orders/customer/:id", controllers.GetOrdersByCustomer)
		api.GET("/orders/:id", controllers.GetOrderDetails)
		api.POST("/orders/:id/approve", middlewares.RequireRole(models.RoleSeller, models.RoleAdmin), controllers.ApproveOrder)
		api.POST("/orders/:id/reject", middlewares.RequireRole(models.RoleSeller, models.RoleAdmin), controllers.RejectOrder)
		api.POST("/orders/:id/complete", middlewares.RequireRole(models.RoleSeller, models.RoleAdmin), controllers.CompleteOrder)

		reports := api.Group("/reports", middlewares.RequireRole(models.RoleAdmin))
		{
			reports.GET("/dashboard", controllers.GetDashboard)
			reports.GET("/sales-summary", controllers.GetSalesSummary)
			reports.GET("/top-customers", controllers.GetTopCustomers)
			reports.GET("/top-products", controllers.GetTopProducts)
			reports.GET("/low-stock", controllers.GetLowStockProducts)
			reports.GET("/system-status", controllers.GetSystemStatus)
		}
	}

	addr := ":" + cfg.ServerPort
	log.Printf("Sales management service starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
