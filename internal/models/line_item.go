package models

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"tienda/pkg/apperror"
)

var validate = validator.New()

// LineItem is one product line on a supplier order.
type LineItem struct {
	name      string
	quantity  int
	unitPrice decimal.Decimal
}

// NewLineItem builds a line item. Quantity must be positive; negative prices are accepted.
func NewLineItem(name string, quantity int, unitPrice decimal.Decimal) (*LineItem, error) {
	if err := validate.Var(name, "required"); err != nil {
		return nil, apperror.Validation("product name is required", apperror.WithCause(err))
	}
	if err := checkQuantity(quantity); err != nil {
		return nil, err
	}
	return &LineItem{name: name, quantity: quantity, unitPrice: unitPrice}, nil
}

// NewLineItemFromRaw coerces untyped quantity and price values before building the item.
func NewLineItemFromRaw(name string, quantity, unitPrice any) (*LineItem, error) {
	q, err := coerceQuantity(quantity)
	if err != nil {
		return nil, apperror.Validation("quantity must be an integer",
			apperror.WithCause(err), apperror.WithDetail("product", name))
	}
	p, err := coercePrice(unitPrice)
	if err != nil {
		return nil, apperror.Validation("price must be a number",
			apperror.WithCause(err), apperror.WithDetail("product", name))
	}
	return NewLineItem(name, q, p)
}

// Name returns the product name.
func (i *LineItem) Name() string { return i.name }

// Quantity returns the ordered quantity.
func (i *LineItem) Quantity() int { return i.quantity }

// UnitPrice returns the price of a single unit.
func (i *LineItem) UnitPrice() decimal.Decimal { return i.unitPrice }

// Subtotal is quantity times unit price, computed on every call.
func (i *LineItem) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// SetQuantity replaces the quantity; non-positive values leave the item untouched.
func (i *LineItem) SetQuantity(quantity int) error {
	if err := checkQuantity(quantity); err != nil {
		return err
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) String() string {
	return i.name + " x " + strconv.Itoa(i.quantity) + " = $" + i.Subtotal().StringFixed(2)
}

func checkQuantity(quantity int) error {
	if err := validate.Var(quantity, "gt=0"); err != nil {
		return apperror.Validation("quantity must be greater than 0",
			apperror.WithDetail("quantity", quantity))
	}
	return nil
}

func coerceQuantity(v any) (int, error) {
	switch q := v.(type) {
	case string:
		return strconv.Atoi(strings.TrimSpace(q))
	case json.Number:
		// A decoded 10.0 or 1e1 is a whole quantity; fractions truncate like cast does for float64.
		if n, err := q.Int64(); err == nil {
			return int(n), nil
		}
		f, err := q.Float64()
		if err != nil {
			return 0, err
		}
		return int(f), nil
	}
	return cast.ToIntE(v)
}

func coercePrice(v any) (decimal.Decimal, error) {
	switch p := v.(type) {
	case decimal.Decimal:
		return p, nil
	case float64:
		return decimal.NewFromFloat(p), nil
	case float32:
		return decimal.NewFromFloat32(p), nil
	case json.Number:
		return decimal.NewFromString(p.String())
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(strings.TrimSpace(s))
}
