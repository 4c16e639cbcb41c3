package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"abc-retail-backend/internal/model"
)

type RegisterRequest struct {
	Username        string  `json:"username"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	ShippingAddress *string `json:"shipping_address"`
}

type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

type AddCartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	Items      []*model.CartItem `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice decimal.Decimal   `json:"total_price"`
}

type CheckoutResponse struct {
	OrdersCreated int `json:"orders_created"`
}

// OrderSummary is one row of a user's merged order history. Legacy rows
// carry a placeholder shipping address and OrderRef is the legacy row key;
// store rows use the numeric order id.
type OrderSummary struct {
	OrderRef        string          `json:"order_ref"`
	ProductName     string          `json:"product_name"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Status          string          `json:"status"`
	OrderDate       time.Time       `json:"order_date"`
	ShippingAddress string          `json:"shipping_address"`
	Legacy          bool            `json:"legacy"`
}

type UpdateStatusRequest struct {
	NewStatus string `json:"new_status"`
}

type UpdateStatusResponse struct {
	Status string `json:"status"`
	// Notified is false when the status was persisted but the
	// notification could not be enqueued.
	Notified bool `json:"notified"`
}

type ProductRequest struct {
	ProductName    string          `json:"product_name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	StockAvailable int             `json:"stock_available"`
	ImageUrl       string          `json:"image_url"`
}

type CustomerRequest struct {
	Name            string `json:"name"`
	Surname         string `json:"surname"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	ShippingAddress string `json:"shipping_address"`
}

type CreateLegacyOrderRequest struct {
	CustomerID string    `json:"customer_id"`
	ProductID  string    `json:"product_id"`
	Quantity   int       `json:"quantity"`
	OrderDate  time.Time `json:"order_date"`
}
