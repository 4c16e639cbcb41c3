package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleCustomer = "Customer"
	RoleAdmin    = "Admin"
)

// Known order statuses. Transitions are deliberately unrestricted: any
// status string may follow any other.
const (
	StatusSubmitted  = "Submitted"
	StatusProcessing = "Processing"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

type User struct {
	UserID          uint    `gorm:"primaryKey" json:"user_id"`
	Username        string  `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Email           string  `gorm:"size:128;uniqueIndex;not null" json:"email"`
	PasswordHash    string  `gorm:"size:128;not null" json:"-"`
	FirstName       string  `gorm:"size:64;not null" json:"first_name"`
	LastName        string  `gorm:"size:64;not null" json:"last_name"`
	Role            string  `gorm:"size:16;not null;default:'Customer'" json:"role"`
	ShippingAddress *string `gorm:"size:255" json:"shipping_address"`
	IsActive        bool    `gorm:"not null;default:true" json:"is_active"`
	CreatedDate     time.Time  `json:"created_date"`
	LastLoginDate   *time.Time `json:"last_login_date"`
}

func (u *User) FullName() string { return u.FirstName + " " + u.LastName }

// CartItem is one product line in a user's in-progress order. ProductID is
// the legacy store row key, an opaque string rather than a relational FK;
// name, image and unit price are captured at add time.
type CartItem struct {
	CartID          uint    `gorm:"primaryKey" json:"cart_id"`
	UserID          uint    `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"user_id"`
	ProductID       string  `gorm:"size:64;uniqueIndex:idx_cart_user_product;not null" json:"product_id"`
	ProductName     string  `gorm:"size:128" json:"product_name"`
	ProductImageUrl *string `gorm:"size:512" json:"product_image_url"`
	Quantity        int     `gorm:"not null" json:"quantity"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unit_price"`
	DateAdded       time.Time       `json:"date_added"`
}

func (CartItem) TableName() string { return "cart" }

// TotalPrice is always recomputed, never stored.
func (c *CartItem) TotalPrice() decimal.Decimal {
	return c.UnitPrice.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

// Order rows are created only by the checkout transaction. The price and
// total are fixed at creation time and do not follow later product changes.
type Order struct {
	OrderID         uint   `gorm:"primaryKey" json:"order_id"`
	UserID          uint   `gorm:"index;not null" json:"user_id"`
	ProductID       string `gorm:"size:64;not null" json:"product_id"`
	ProductName     string `gorm:"size:128" json:"product_name"`
	Quantity        int    `gorm:"not null" json:"quantity"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unit_price"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total_price"`
	Status          string          `gorm:"size:32;index;not null" json:"status"`
	ShippingAddress string          `gorm:"size:255" json:"shipping_address"`
	OrderDate       time.Time       `gorm:"index" json:"order_date"`
}
