package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Legacy store partitions.
const (
	PartitionProduct  = "Product"
	PartitionCustomer = "Customer"
	PartitionOrder    = "Order"
)

// TableEntity carries the keys every legacy record has: a partition key, a
// unique row key and an opaque concurrency token that rotates on every
// write. Callers must hold a current ETag to update an entity.
type TableEntity struct {
	PartitionKey string    `bson:"partitionKey" json:"partition_key"`
	RowKey       string    `bson:"_id" json:"row_key"`
	ETag         string    `bson:"etag" json:"etag"`
	Timestamp    time.Time `bson:"timestamp" json:"timestamp"`
}

func (e *TableEntity) Meta() *TableEntity { return e }

// Legacy prices are persisted as formatted strings and parsed back to
// decimals on read. The round-trip must be exact, so writes always go
// through StringFixed(2).
func parsePrice(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

type ProductEntity struct {
	TableEntity    `bson:",inline"`
	ProductName    string `bson:"productName" json:"product_name"`
	Description    string `bson:"description" json:"description"`
	PriceString    string `bson:"price" json:"price"`
	StockAvailable int    `bson:"stockAvailable" json:"stock_available"`
	ImageUrl       string `bson:"imageUrl" json:"image_url"`
}

func (p *ProductEntity) Price() decimal.Decimal     { return parsePrice(p.PriceString) }
func (p *ProductEntity) SetPrice(d decimal.Decimal) { p.PriceString = d.StringFixed(2) }

type CustomerEntity struct {
	TableEntity     `bson:",inline"`
	Name            string `bson:"name" json:"name"`
	Surname         string `bson:"surname" json:"surname"`
	Username        string `bson:"username" json:"username"`
	Email           string `bson:"email" json:"email"`
	ShippingAddress string `bson:"shippingAddress" json:"shipping_address"`
}

// OrderEntity is a legacy order created directly by the admin flow,
// independent of the relational store. Username is free text and is the
// only link back to a store account.
type OrderEntity struct {
	TableEntity      `bson:",inline"`
	CustomerID       string    `bson:"customerId" json:"customer_id"`
	Username         string    `bson:"username" json:"username"`
	ProductID        string    `bson:"productId" json:"product_id"`
	ProductName      string    `bson:"productName" json:"product_name"`
	OrderDate        time.Time `bson:"orderDate" json:"order_date"`
	Quantity         int       `bson:"quantity" json:"quantity"`
	UnitPriceString  string    `bson:"unitPrice" json:"unit_price"`
	TotalPriceString string    `bson:"totalPrice" json:"total_price"`
	Status           string    `bson:"status" json:"status"`
}

func (o *OrderEntity) UnitPrice() decimal.Decimal      { return parsePrice(o.UnitPriceString) }
func (o *OrderEntity) SetUnitPrice(d decimal.Decimal)  { o.UnitPriceString = d.StringFixed(2) }
func (o *OrderEntity) TotalPrice() decimal.Decimal     { return parsePrice(o.TotalPriceString) }
func (o *OrderEntity) SetTotalPrice(d decimal.Decimal) { o.TotalPriceString = d.StringFixed(2) }
