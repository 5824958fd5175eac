package database

import (
	"database/sql"
	"errors"
	"strings"

	"sales-management/models"
)

// ErrTransitionConflict is returned when a status transition finds the order
// no longer in the status it was loaded with. Two concurrent transitions
// cannot both commit.
var ErrTransitionConflict = errors.New("order was modified concurrently")

// SaveOrder inserts the order and its items in one transaction and fills in
// the generated ids.
func SaveOrder(order *models.Order) error {
	tx, err := DB.Begin()
	if err != nil {
		return err
	}

	result, err := tx.Exec(
		"INSERT INTO orders (customer_id, seller_id, status, total_amount, notes, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		order.CustomerID, nullableID(order.SellerID), order.Status, order.TotalAmount, nullableString(order.Notes), order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	orderID, err := result.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	order.ID = orderID

	for _, item := range order.Items {
		item.OrderID = orderID
		itemResult, err := tx.Exec(
			"INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price, subtotal) VALUES (?, ?, ?, ?, ?, ?)",
			item.OrderID, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice, item.Subtotal,
		)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
		if itemID, err := itemResult.LastInsertId(); err == nil {
			item.ID = itemID
		}
	}

	return tx.Commit()
}

// SaveOrderTransition persists a status change conditioned on the status the
// order was loaded with. The conditional UPDATE serializes concurrent
// transitions at the database: the loser matches zero rows and gets
// ErrTransitionConflict.
func SaveOrderTransition(order *models.Order, fromStatus models.OrderStatus) error {
	result, err := DB.Exec(
		"UPDATE orders SET status = ?, seller_id = ?, notes = ?, updated_at = ? WHERE id = ? AND status = ?",
		order.Status, nullableID(order.SellerID), nullableString(order.Notes), order.UpdatedAt, order.ID, fromStatus,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTransitionConflict
	}
	return nil
}

func GetOrderByID(id int64) (*models.Order, error) {
	order, err := scanOrderRow(DB.QueryRow(
		"SELECT id, customer_id, seller_id, status, total_amount, notes, created_at, updated_at FROM orders WHERE id = ?", id))
	if err != nil {
		return nil, err
	}
	if err := loadItems([]*models.Order{order}); err != nil {
		return nil, err
	}
	return order, nil
}

func ListOrders() ([]*models.Order, error) {
	return queryOrders("SELECT id, customer_id, seller_id, status, total_amount, notes, created_at, updated_at FROM orders ORDER BY created_at DESC")
}

func ListOrdersByStatus(status models.OrderStatus) ([]*models.Order, error) {
	return queryOrders("SELECT id, customer_id, seller_id, status, total_amount, notes, created_at, updated_at FROM orders WHERE status = ? ORDER BY created_at DESC", status)
}

func ListOrdersByCustomer(customerID int64) ([]*models.Order, error) {
	return queryOrders("SELECT id, customer_id, seller_id, status, total_amount, notes, created_at, updated_at FROM orders WHERE customer_id = ? ORDER BY created_at DESC", customerID)
}

func queryOrders(query string, args ...any) ([]*models.Order, error) {
	rows, err := DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []*models.Order{}
	for rows.Next() {
		order, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := loadItems(orders); err != nil {
		return nil, err
	}
	return orders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner) (*models.Order, error) {
	var (
		order     models.Order
		sellerID  sql.NullInt64
		notes     sql.NullString
		updatedAt sql.NullTime
	)
	if err := row.Scan(&order.ID, &order.CustomerID, &sellerID, &order.Status,
		&order.TotalAmount, &notes, &order.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	order.SellerID = sellerID.Int64
	order.Notes = notes.String
	if updatedAt.Valid {
		order.UpdatedAt = updatedAt.Time
	}
	order.Items = []*models.OrderItem{}
	return &order, nil
}

func loadItems(orders []*models.Order) error {
	byID := make(map[int64]*models.Order, len(orders))
	for _, order := range orders {
		byID[order.ID] = order
	}
	if len(byID) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(byID))
	args := make([]any, 0, len(byID))
	for id := range byID {
		placeholders = append(placeholders, "?")
		args = append(args, id)
	}

	rows, err := DB.Query(
		"SELECT id, order_id, product_id, product_name, quantity, unit_price, subtotal FROM order_items WHERE order_id IN ("+
			strings.Join(placeholders, ",")+") ORDER BY id ASC", args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return err
		}
		if order, ok := byID[item.OrderID]; ok {
			order.Items = append(order.Items, &item)
		}
	}
	return rows.Err()
}

func nullableID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
