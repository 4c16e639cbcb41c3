package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"abc-retail-backend/internal/dto"
	"abc-retail-backend/internal/model"
	"abc-retail-backend/internal/queue"
	"abc-retail-backend/internal/repository"
)

// Shipping-address history is unavailable for legacy orders, so merged
// history rows from the legacy store carry this fixed label.
const legacyAddressLabel = "Legacy order"

type OrderService interface {
	// Checkout converts every cart line of the user into one order each,
	// atomically, and returns the count created (0 for an empty cart).
	Checkout(ctx context.Context, userID uint) (int, error)
	// History merges relational orders (by numeric id) with legacy orders
	// whose stored username matches case-insensitively, newest first.
	// The two identity schemes are disjoint, so a renamed user may see
	// legacy orders dropped or double-counted; that gap is accepted.
	History(ctx context.Context, userID uint, username string) ([]*dto.OrderSummary, error)
	ListAll(ctx context.Context) ([]*repository.AdminOrder, error)
	UpdateStatus(ctx context.Context, orderID uint, newStatus string) (*dto.UpdateStatusResponse, error)

	ListLegacy(ctx context.Context) ([]*model.OrderEntity, error)
	CreateLegacy(ctx context.Context, req dto.CreateLegacyOrderRequest) (*model.OrderEntity, error)
	UpdateLegacyStatus(ctx context.Context, rowKey, newStatus string) (*dto.UpdateStatusResponse, error)
	DeleteLegacy(ctx context.Context, rowKey string) error
}

type orderServiceImpl struct {
	orderRepo    repository.OrderRepository
	userRepo     repository.UserRepository
	legacyOrders LegacyOrderStore
	products     ProductStore
	customers    CustomerStore
	queue        queue.Queue
	orderQueue   string
	stockQueue   string
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	legacyOrders LegacyOrderStore,
	products ProductStore,
	customers CustomerStore,
	q queue.Queue,
	orderQueue, stockQueue string,
) OrderService {
	return &orderServiceImpl{
		orderRepo:    orderRepo,
		userRepo:     userRepo,
		legacyOrders: legacyOrders,
		products:     products,
		customers:    customers,
		queue:        q,
		orderQueue:   orderQueue,
		stockQueue:   stockQueue,
	}
}

func (s *orderServiceImpl) Checkout(ctx context.Context, userID uint) (int, error) {
	return s.orderRepo.CreateFromCart(ctx, userID)
}

func (s *orderServiceImpl) History(ctx context.Context, userID uint, username string) ([]*dto.OrderSummary, error) {
	orders, err := s.orderRepo.GetUserOrders(ctx, userID)
	if err != nil {
		return nil, err
	}
	legacy, err := s.legacyOrders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list legacy orders: %w", err)
	}

	summaries := make([]*dto.OrderSummary, 0, len(orders))
	for _, o := range orders {
		summaries = append(summaries, &dto.OrderSummary{
			OrderRef:        strconv.FormatUint(uint64(o.OrderID), 10),
			ProductName:     o.ProductName,
			Quantity:        o.Quantity,
			UnitPrice:       o.UnitPrice,
			TotalPrice:      o.TotalPrice,
			Status:          o.Status,
			OrderDate:       o.OrderDate,
			ShippingAddress: o.ShippingAddress,
		})
	}
	for _, o := range legacy {
		if !strings.EqualFold(o.Username, username) {
			continue
		}
		summaries = append(summaries, &dto.OrderSummary{
			OrderRef:        o.RowKey,
			ProductName:     o.ProductName,
			Quantity:        o.Quantity,
			UnitPrice:       o.UnitPrice(),
			TotalPrice:      o.TotalPrice(),
			Status:          o.Status,
			OrderDate:       o.OrderDate,
			ShippingAddress: legacyAddressLabel,
			Legacy:          true,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].OrderDate.After(summaries[j].OrderDate)
	})
	return summaries, nil
}

func (s *orderServiceImpl) ListAll(ctx context.Context) ([]*repository.AdminOrder, error) {
	return s.orderRepo.GetAll(ctx)
}

func (s *orderServiceImpl) UpdateStatus(ctx context.Context, orderID uint, newStatus string) (*dto.UpdateStatusResponse, error) {
	previous, err := s.orderRepo.UpdateStatus(ctx, orderID, newStatus)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	customerName := ""
	if user, err := s.userRepo.FindByID(ctx, order.UserID); err == nil {
		customerName = user.Username
	}

	notified := s.notifyStatus(ctx, &model.StatusNotification{
		OrderID:        strconv.FormatUint(uint64(orderID), 10),
		CustomerID:     strconv.FormatUint(uint64(order.UserID), 10),
		CustomerName:   customerName,
		ProductName:    order.ProductName,
		PreviousStatus: previous,
		NewStatus:      newStatus,
		UpdateDate:     time.Now().UTC(),
		UpdatedBy:      "System",
	})
	return &dto.UpdateStatusResponse{Status: newStatus, Notified: notified}, nil
}

// ListLegacy also backfills orders persisted without prices from the
// current product price. The backfill write is best effort.
func (s *orderServiceImpl) ListLegacy(ctx context.Context) ([]*model.OrderEntity, error) {
	orders, err := s.legacyOrders.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.TotalPrice().IsPositive() || o.ProductID == "" {
			continue
		}
		product, err := s.products.Get(ctx, o.ProductID)
		if err != nil || !product.Price().IsPositive() {
			continue
		}
		o.SetUnitPrice(product.Price())
		o.SetTotalPrice(product.Price().Mul(decimalFromInt(o.Quantity)))
		if err := s.legacyOrders.Update(ctx, o); err != nil {
			log.Printf("backfill price for legacy order %s: %v", o.RowKey, err)
		}
	}
	return orders, nil
}

func (s *orderServiceImpl) CreateLegacy(ctx context.Context, req dto.CreateLegacyOrderRequest) (*model.OrderEntity, error) {
	if req.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	customer, err := s.customers.Get(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("look up customer %s: %w", req.CustomerID, err)
	}
	product, err := s.products.Get(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("look up product %s: %w", req.ProductID, err)
	}
	if product.StockAvailable < req.Quantity {
		return nil, ErrInsufficientStock
	}

	orderDate := req.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now().UTC()
	}

	order := &model.OrderEntity{
		CustomerID:  req.CustomerID,
		Username:    customer.Username,
		ProductID:   req.ProductID,
		ProductName: product.ProductName,
		OrderDate:   orderDate.UTC(),
		Quantity:    req.Quantity,
		Status:      model.StatusSubmitted,
	}
	order.SetUnitPrice(product.Price())
	order.SetTotalPrice(product.Price().Mul(decimalFromInt(req.Quantity)))

	if err := s.legacyOrders.Insert(ctx, order); err != nil {
		return nil, err
	}

	previousStock := product.StockAvailable
	product.StockAvailable -= req.Quantity
	if err := s.products.Update(ctx, product); err != nil {
		// Token mismatch means another writer changed the product; the
		// order stands, the caller re-fetches and retries the stock edit.
		return nil, fmt.Errorf("update stock for product %s: %w", req.ProductID, err)
	}

	if err := s.queue.Send(ctx, s.orderQueue, &model.OrderNotification{
		OrderID:      order.RowKey,
		CustomerID:   order.CustomerID,
		CustomerName: customer.Name + " " + customer.Surname,
		ProductName:  order.ProductName,
		Quantity:     order.Quantity,
		TotalPrice:   order.TotalPrice(),
		OrderDate:    order.OrderDate,
		Status:       order.Status,
	}); err != nil {
		log.Printf("warning: order notification not enqueued for %s: %v", order.RowKey, err)
	}
	if err := s.queue.Send(ctx, s.stockQueue, &model.StockUpdate{
		ProductID:     product.RowKey,
		ProductName:   product.ProductName,
		PreviousStock: previousStock,
		NewStock:      product.StockAvailable,
		UpdatedBy:     "Order System",
		UpdateDate:    time.Now().UTC(),
	}); err != nil {
		log.Printf("warning: stock update not enqueued for %s: %v", product.RowKey, err)
	}

	return order, nil
}

func (s *orderServiceImpl) UpdateLegacyStatus(ctx context.Context, rowKey, newStatus string) (*dto.UpdateStatusResponse, error) {
	order, err := s.legacyOrders.Get(ctx, rowKey)
	if err != nil {
		return nil, err
	}
	previous := order.Status
	order.Status = newStatus
	if err := s.legacyOrders.Update(ctx, order); err != nil {
		return nil, err
	}

	notified := s.notifyStatus(ctx, &model.StatusNotification{
		OrderID:        order.RowKey,
		CustomerID:     order.CustomerID,
		CustomerName:   order.Username,
		ProductName:    order.ProductName,
		PreviousStatus: previous,
		NewStatus:      newStatus,
		UpdateDate:     time.Now().UTC(),
		UpdatedBy:      "System",
	})
	return &dto.UpdateStatusResponse{Status: newStatus, Notified: notified}, nil
}

func (s *orderServiceImpl) DeleteLegacy(ctx context.Context, rowKey string) error {
	return s.legacyOrders.Delete(ctx, rowKey)
}

func decimalFromInt(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }

// notifyStatus enqueues a status notification. Enqueue failure does not
// fail the update; it is surfaced to the caller as notified=false.
func (s *orderServiceImpl) notifyStatus(ctx context.Context, msg *model.StatusNotification) bool {
	if err := s.queue.Send(ctx, s.orderQueue, msg); err != nil {
		log.Printf("warning: status notification not enqueued for order %s: %v", msg.OrderID, err)
		return false
	}
	return true
}
