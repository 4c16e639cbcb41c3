package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Queue payloads. Field names match what the downstream queue processors
// already parse, so they stay PascalCase on the wire.

type OrderNotification struct {
	OrderID      string          `json:"OrderId"`
	CustomerID   string          `json:"CustomerId"`
	CustomerName string          `json:"CustomerName"`
	ProductName  string          `json:"ProductName"`
	Quantity     int             `json:"Quantity"`
	TotalPrice   decimal.Decimal `json:"TotalPrice"`
	OrderDate    time.Time       `json:"OrderDate"`
	Status       string          `json:"Status"`
}

type StatusNotification struct {
	OrderID        string    `json:"OrderId"`
	CustomerID     string    `json:"CustomerId"`
	CustomerName   string    `json:"CustomerName"`
	ProductName    string    `json:"ProductName"`
	PreviousStatus string    `json:"PreviousStatus"`
	NewStatus      string    `json:"NewStatus"`
	UpdateDate     time.Time `json:"UpdateDate"`
	UpdatedBy      string    `json:"UpdatedBy"`
}

type StockUpdate struct {
	ProductID     string    `json:"ProductId"`
	ProductName   string    `json:"ProductName"`
	PreviousStock int       `json:"PreviousStock"`
	NewStock      int       `json:"NewStock"`
	UpdatedBy     string    `json:"UpdatedBy"`
	UpdateDate    time.Time `json:"UpdateDate"`
}
