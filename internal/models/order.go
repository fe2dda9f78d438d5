package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tienda/pkg/apperror"
)

// Order is a purchase order placed with a single supplier. It owns its line items.
// An Order is not safe for concurrent mutation.
type Order struct {
	id           string
	supplier     string
	createdAt    time.Time
	updatedAt    time.Time
	status       Status
	deliveryDate string
	items        []*LineItem
	now          func() time.Time
}

// OrderOption configures a new Order.
type OrderOption func(*Order)

// WithClock sets the time source for the creation and last-modified timestamps.
func WithClock(now func() time.Time) OrderOption {
	return func(o *Order) { o.now = now }
}

// NewOrder creates a pending order for supplier.
func NewOrder(supplier string, opts ...OrderOption) (*Order, error) {
	if err := validate.Var(supplier, "required"); err != nil {
		return nil, apperror.Validation("supplier is required", apperror.WithCause(err))
	}
	o := &Order{supplier: supplier, status: StatusPending, now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	o.createdAt = o.now()
	o.updatedAt = o.createdAt
	return o, nil
}

// ID returns the identifier assigned by the order book, or "" if unregistered.
func (o *Order) ID() string { return o.id }

// AssignID sets the order identifier.
func (o *Order) AssignID(id string) { o.id = id }

func (o *Order) Supplier() string     { return o.supplier }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }
func (o *Order) Status() Status       { return o.status }

// DeliveryDate returns the caller-supplied delivery date, unvalidated.
func (o *Order) DeliveryDate() (string, bool) {
	return o.deliveryDate, o.deliveryDate != ""
}

// SetDeliveryDate stores the delivery date verbatim.
func (o *Order) SetDeliveryDate(date string) {
	o.deliveryDate = date
	o.touch()
}

// Items returns the line items in insertion order. The slice is a copy; the items are not.
func (o *Order) Items() []*LineItem {
	out := make([]*LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// Total sums the subtotals of the current line items.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ChangeStatus moves the order to any valid status.
func (o *Order) ChangeStatus(raw string) error {
	s, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	o.status = s
	o.touch()
	return nil
}

// AddItem appends item to the order.
func (o *Order) AddItem(item *LineItem) {
	o.items = append(o.items, item)
	o.touch()
}

// RemoveItem deletes the first item whose name matches case-insensitively.
func (o *Order) RemoveItem(name string) (*LineItem, error) {
	for i, item := range o.items {
		if strings.EqualFold(item.name, name) {
			o.items = append(o.items[:i], o.items[i+1:]...)
			o.touch()
			return item, nil
		}
	}
	return nil, apperror.NotFound("product not found: "+name, apperror.WithDetail("product", name))
}

func (o *Order) touch() {
	o.updatedAt = o.now()
}
