package consumers

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"sales-management/config"
	"sales-management/database"
	"sales-management/models"
)

func StartOrderConsumer(ch *amqp.Channel, cfg *config.Config) {
	msgs, err := ch.Consume(
		cfg.OrderQueue,
		"sales-management", // consumer tag
		false,              // auto-ack
		false,              // exclusive
		false,              // no-local
		false,              // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("Failed to register consumer: %v", err)
	}

	go func() {
		for msg := range msgs {
			processOrderMessage(msg)
		}
	}()

	dlqMsgs, err := ch.Consume(
		cfg.DeadLetterQueue,
		"sales-management-dlq", // consumer tag
		false,                  // auto-ack
		false,                  // exclusive
		false,                  // no-local
		false,                  // no-wait
		nil,
	)
	if err != nil {
		log.Printf("Failed to register DLQ consumer: %v", err)
		return
	}

	go func() {
		for msg := range dlqMsgs {
			processDeadLetterMessage(msg)
		}
	}()
}

func processOrderMessage(msg amqp.Delivery) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic in message processing: %v", r)
		}
	}()

	var event models.OrderEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		log.Printf("Invalid event payload: %s", msg.Body)
		_ = msg.Nack(false, false) // drop to DLQ, do not requeue
		return
	}

	log.Printf("Processing order event: id=%d type=%s", event.OrderID, event.Type)

	switch event.Type {
	case models.EventOrderCreated:
		handleOrderCreated(event)
	case models.EventOrderApproved, models.EventOrderRejected, models.EventOrderCompleted:
		handleOrderTransition(event)
	case models.EventReviewReminder:
		handleReviewReminder(event)
	default:
		log.Printf("Unknown event type: %s", event.Type)
	}

	if err := msg.Ack(false); err != nil {
		log.Printf("Failed to ack message: %v", err)
	}
}

func processDeadLetterMessage(msg amqp.Delivery) {
	log.Printf("Received dead letter: %s", msg.Body)
	if err := msg.Ack(false); err != nil {
		return
	}
}

func handleOrderCreated(event models.OrderEvent) {
	log.Printf("Order %d created for customer %d, total %s",
		event.OrderID, event.CustomerID, event.Total.StringFixed(2))
}

func handleOrderTransition(event models.OrderEvent) {
	order, err := database.GetOrderByID(event.OrderID)
	if err != nil {
		log.Printf("Failed to load order %d: %v", event.OrderID, err)
		return
	}

	switch order.Status {
	case models.OrderStatusApproved:
		// notify the customer the order was accepted
	case models.OrderStatusRejected:
		log.Printf("Order %d rejected: %s", order.ID, order.Notes)
	case models.OrderStatusCompleted:
		log.Printf("Order %d completed, revenue %s", order.ID, order.TotalAmount.StringFixed(2))
	}
}

// handleReviewReminder fires when a delayed reminder comes due. If the order
// is still pending nobody has looked at it yet.
func handleReviewReminder(event models.OrderEvent) {
	order, err := database.GetOrderByID(event.OrderID)
	if err != nil {
		log.Printf("Failed to load order %d: %v", event.OrderID, err)
		return
	}

	if order.Status == models.OrderStatusPending {
		log.Printf("Order %d is still awaiting review", order.ID)
	}
}
