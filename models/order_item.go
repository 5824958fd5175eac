package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OrderItem is one product line inside an order. The unit price is captured
// from the product when the item is built, so later catalog price changes
// never alter an existing order.
type OrderItem struct {
	ID          int64           `json:"id"`
	OrderID     int64           `json:"order_id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`

	priceCaptured bool
}

func NewOrderItem(product *Product, quantity int) (*OrderItem, error) {
	if product == nil {
		return nil, fmt.Errorf("%w: product is required", ErrInvalidArgument)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidArgument, quantity)
	}
	item := &OrderItem{
		ProductID:     product.ID,
		ProductName:   product.Name,
		Quantity:      quantity,
		UnitPrice:     product.Price,
		priceCaptured: true,
	}
	item.calculateSubtotal()
	return item, nil
}

func (i *OrderItem) calculateSubtotal() {
	i.Subtotal = i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// SetQuantity replaces the quantity and recomputes the subtotal. On failure
// the previous quantity and subtotal are left untouched.
func (i *OrderItem) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidArgument, quantity)
	}
	i.Quantity = quantity
	i.calculateSubtotal()
	return nil
}

// SetUnitPrice overrides the captured price. Correction scenarios only, the
// normal flow never re-prices an item.
func (i *OrderItem) SetUnitPrice(price decimal.Decimal) {
	i.UnitPrice = price
	i.priceCaptured = true
	i.calculateSubtotal()
}

// SetProduct re-points the item at a product. The unit price is filled from
// the product only if no price was captured yet; an already captured price
// survives catalog edits.
func (i *OrderItem) SetProduct(product *Product) error {
	if product == nil {
		return fmt.Errorf("%w: product is required", ErrInvalidArgument)
	}
	i.ProductID = product.ID
	i.ProductName = product.Name
	if !i.priceCaptured && i.UnitPrice.IsZero() {
		i.UnitPrice = product.Price
		i.priceCaptured = true
		i.calculateSubtotal()
	}
	return nil
}
