package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold marks products that need restocking in reports.
const LowStockThreshold = 5

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (p *Product) InStock() bool {
	return p.Stock > 0
}

func (p *Product) LowStock() bool {
	return p.Stock < LowStockThreshold
}
