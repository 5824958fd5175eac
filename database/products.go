package database

import (
	"time"

	"sales-management/models"
)

func SaveProduct(product *models.Product) error {
	now := time.Now()
	if product.ID == 0 {
		product.CreatedAt = now
		product.UpdatedAt = now
		result, err := DB.Exec(
			"INSERT INTO products (name, description, price, stock, active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			product.Name, product.Description, product.Price, product.Stock, product.Active, product.CreatedAt, product.UpdatedAt,
		)
		if err != nil {
			return err
		}
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		product.ID = id
		return nil
	}

	product.UpdatedAt = now
	_, err := DB.Exec(
		"UPDATE products SET name = ?, description = ?, price = ?, stock = ?, active = ?, updated_at = ? WHERE id = ?",
		product.Name, product.Description, product.Price, product.Stock, product.Active, product.UpdatedAt, product.ID,
	)
	return err
}

func GetProductByID(id int64) (*models.Product, error) {
	var product models.Product
	err := DB.QueryRow(
		"SELECT id, name, description, price, stock, active, created_at, updated_at FROM products WHERE id = ?", id,
	).Scan(&product.ID, &product.Name, &product.Description, &product.Price,
		&product.Stock, &product.Active, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func ListActiveProducts() ([]*models.Product, error) {
	return queryProducts("SELECT id, name, description, price, stock, active, created_at, updated_at FROM products WHERE active = TRUE ORDER BY name ASC")
}

func ListProductsInStock() ([]*models.Product, error) {
	return queryProducts("SELECT id, name, description, price, stock, active, created_at, updated_at FROM products WHERE active = TRUE AND stock > 0 ORDER BY name ASC")
}

func queryProducts(query string, args ...any) ([]*models.Product, error) {
	rows, err := DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []*models.Product{}
	for rows.Next() {
		var product models.Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Description, &product.Price,
			&product.Stock, &product.Active, &product.CreatedAt, &product.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, &product)
	}
	return products, rows.Err()
}

func CountProducts() (int64, error) {
	var count int64
	err := DB.QueryRow("SELECT COUNT(*) FROM products").Scan(&count)
	return count, err
}
