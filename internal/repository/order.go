package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"abc-retail-backend/internal/model"
)

const noAddressFallback = "No address provided"

// AdminOrder is an order joined with the placing user for admin listings.
type AdminOrder struct {
	model.Order
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type OrderRepository interface {
	// CreateFromCart atomically converts every cart line of the user into
	// one order row each and clears the cart. It returns the number of
	// orders created; an empty cart returns 0 with no side effects, and
	// any failure rolls the whole unit back.
	CreateFromCart(ctx context.Context, userID uint) (int, error)
	FindByID(ctx context.Context, orderID uint) (*model.Order, error)
	GetUserOrders(ctx context.Context, userID uint) ([]*model.Order, error)
	GetAll(ctx context.Context) ([]*AdminOrder, error)
	// UpdateStatus overwrites the status unconditionally and returns the
	// previous value.
	UpdateStatus(ctx context.Context, orderID uint, status string) (string, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{db: db}
}

type checkoutLine struct {
	ProductID       string
	ProductName     string
	Quantity        int
	UnitPrice       decimal.Decimal
	ShippingAddress *string
}

func (r *orderRepoImpl) CreateFromCart(ctx context.Context, userID uint) (int, error) {
	created := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lines []checkoutLine
		err := tx.Table("cart").
			Select("cart.product_id, cart.product_name, cart.quantity, cart.unit_price, users.shipping_address").
			Joins("JOIN users ON users.user_id = cart.user_id").
			Where("cart.user_id = ?", userID).
			Scan(&lines).Error
		if err != nil {
			return fmt.Errorf("read cart: %w", err)
		}
		if len(lines) == 0 {
			return nil
		}

		now := time.Now().UTC()
		for _, line := range lines {
			address := noAddressFallback
			if line.ShippingAddress != nil && *line.ShippingAddress != "" {
				address = *line.ShippingAddress
			}
			order := model.Order{
				UserID:          userID,
				ProductID:       line.ProductID,
				ProductName:     line.ProductName,
				Quantity:        line.Quantity,
				UnitPrice:       line.UnitPrice,
				TotalPrice:      line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))),
				Status:          model.StatusSubmitted,
				ShippingAddress: address,
				OrderDate:       now,
			}
			if err := tx.Create(&order).Error; err != nil {
				return fmt.Errorf("insert order for product %s: %w", line.ProductID, err)
			}
		}

		if err := tx.Where("user_id = ?", userID).Delete(&model.CartItem{}).Error; err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}

		created = len(lines)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

func (r *orderRepoImpl) FindByID(ctx context.Context, orderID uint) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find order %d: %w", orderID, err)
	}
	return &order, nil
}

func (r *orderRepoImpl) GetUserOrders(ctx context.Context, userID uint) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("get orders for user %d: %w", userID, err)
	}
	return orders, nil
}

func (r *orderRepoImpl) GetAll(ctx context.Context) ([]*AdminOrder, error) {
	var orders []*AdminOrder
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("orders.*, users.username, users.first_name, users.last_name").
		Joins("JOIN users ON users.user_id = orders.user_id").
		Order("orders.order_date DESC").
		Scan(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list all orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepoImpl) UpdateStatus(ctx context.Context, orderID uint, status string) (string, error) {
	previous := ""
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order model.Order
		err := tx.Where("order_id = ?", orderID).First(&order).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("load order %d: %w", orderID, err)
		}
		previous = order.Status
		return tx.Model(&order).Update("status", status).Error
	})
	if err != nil {
		return "", err
	}
	return previous, nil
}
