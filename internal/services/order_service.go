package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/pkg/apperror"
)

// OrderService registers mobile orders and answers history queries.
type OrderService struct {
	orderRepo repositories.OrderRepository
	logger    *zap.Logger
}

// OrderStats summarizes the order book.
type OrderStats struct {
	Total      int
	ByStatus   map[models.Status]int
	TotalSpent decimal.Decimal // received orders only
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Submit runs the intake pipeline on payload and registers the resulting order.
// The response is always filled in; on failure it carries the error message and
// the error is returned unchanged alongside it.
func (s *OrderService) Submit(payload Payload) (MobileResponse, *models.Order, error) {
	order, err := ProcessIntake(payload)
	if err != nil {
		s.logger.Warn("mobile order rejected", zap.Error(err))
		return BuildMobileResponse(false, apperror.From(err).Message(), ""), nil, err
	}

	if err := s.orderRepo.Create(order); err != nil {
		s.logger.Error("register order", zap.String("supplier", order.Supplier()), zap.Error(err))
		return BuildMobileResponse(false, "could not register order", ""), nil, err
	}

	s.logger.Info("order received",
		zap.String("order_id", order.ID()),
		zap.String("supplier", order.Supplier()),
		zap.Int("items", len(order.Items())),
		zap.String("total", order.Total().StringFixed(2)),
	)
	return BuildMobileResponse(true, "Order received", order.ID()), order, nil
}

// GetAllOrders returns the whole order history, oldest first.
func (s *OrderService) GetAllOrders() ([]*models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// UpdateOrderStatus changes the status of a registered order.
func (s *OrderService) UpdateOrderStatus(id, status string) (string, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return "", err
	}
	previous := order.Status()
	msg, err := SetStatus(order, status)
	if err != nil {
		return "", err
	}
	s.logger.Info("order status changed",
		zap.String("order_id", id),
		zap.String("from", previous.String()),
		zap.String("to", status),
	)
	return msg, nil
}

// OrdersBySupplier returns the orders placed with supplier, ignoring case.
func (s *OrderService) OrdersBySupplier(supplier string) ([]*models.Order, error) {
	supplier = strings.TrimSpace(supplier)
	return s.filter(func(o *models.Order) bool {
		return strings.EqualFold(o.Supplier(), supplier)
	})
}

// OrdersByStatus returns the orders currently in status.
func (s *OrderService) OrdersByStatus(status string) ([]*models.Order, error) {
	want, err := models.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	return s.filter(func(o *models.Order) bool { return o.Status() == want })
}

// OrdersBetween returns orders created within [from, to].
func (s *OrderService) OrdersBetween(from, to time.Time) ([]*models.Order, error) {
	if to.Before(from) {
		return nil, apperror.Validation("range end is before range start")
	}
	return s.filter(func(o *models.Order) bool {
		created := o.CreatedAt()
		return !created.Before(from) && !created.After(to)
	})
}

// TotalSpentWithSupplier sums the totals of received orders from supplier.
func (s *OrderService) TotalSpentWithSupplier(supplier string) (decimal.Decimal, error) {
	orders, err := s.OrdersBySupplier(supplier)
	if err != nil {
		return decimal.Zero, err
	}
	return sumReceived(orders), nil
}

// Stats counts orders per status.
func (s *OrderService) Stats() (OrderStats, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return OrderStats{}, err
	}
	stats := OrderStats{
		Total:      len(orders),
		ByStatus:   make(map[models.Status]int, len(models.Statuses())),
		TotalSpent: sumReceived(orders),
	}
	for _, status := range models.Statuses() {
		stats.ByStatus[status] = 0
	}
	for _, o := range orders {
		stats.ByStatus[o.Status()]++
	}
	return stats, nil
}

func (s *OrderService) filter(keep func(*models.Order) bool) ([]*models.Order, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]*models.Order, 0, len(orders))
	for _, o := range orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out, nil
}

func sumReceived(orders []*models.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		if o.Status() == models.StatusReceived {
			total = total.Add(o.Total())
		}
	}
	return total
}
