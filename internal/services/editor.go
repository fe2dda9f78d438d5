package services

import (
	"fmt"
	"strings"

	"tienda/internal/models"
	"tienda/pkg/apperror"
)

const summaryTimeLayout = "2006-01-02 15:04"

// SetQuantity changes the quantity of a line item.
func SetQuantity(item *models.LineItem, quantity int) (string, error) {
	if err := item.SetQuantity(quantity); err != nil {
		return "", err
	}
	return fmt.Sprintf("Quantity updated to %d for %s", quantity, item.Name()), nil
}

// SetStatus moves order to status.
func SetStatus(order *models.Order, status string) (string, error) {
	if err := order.ChangeStatus(status); err != nil {
		return "", err
	}
	return fmt.Sprintf("Order status updated to: %s", status), nil
}

// AddItem appends item to order.
func AddItem(order *models.Order, item *models.LineItem) string {
	order.AddItem(item)
	return fmt.Sprintf("Product '%s' added successfully.", item.Name())
}

// RemoveItem drops the first item named name, ignoring case.
func RemoveItem(order *models.Order, name string) (string, error) {
	if _, err := order.RemoveItem(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("Product '%s' removed successfully.", name), nil
}

// FindItem returns the first item named name, ignoring case.
func FindItem(order *models.Order, name string) (*models.LineItem, error) {
	for _, item := range order.Items() {
		if strings.EqualFold(item.Name(), name) {
			return item, nil
		}
	}
	return nil, apperror.NotFound("product not found: "+name, apperror.WithDetail("product", name))
}

// RenderSummary formats order for display. It does not modify the order.
func RenderSummary(order *models.Order) string {
	var b strings.Builder

	b.WriteString("--- Order Summary ---\n")
	fmt.Fprintf(&b, "Supplier: %s\n", order.Supplier())
	fmt.Fprintf(&b, "Created: %s\n", order.CreatedAt().Format(summaryTimeLayout))
	fmt.Fprintf(&b, "Status: %s\n", order.Status())
	if date, ok := order.DeliveryDate(); ok {
		fmt.Fprintf(&b, "Delivery: %s\n", date)
	}

	b.WriteString("\nProducts:\n")
	for _, item := range order.Items() {
		fmt.Fprintf(&b, "   - %s x %d (Subtotal: %s)\n", item.Name(), item.Quantity(), item.Subtotal().StringFixed(2))
	}

	fmt.Fprintf(&b, "\nOrder total: %s\n", order.Total().StringFixed(2))
	return b.String()
}
