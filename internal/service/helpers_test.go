package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"abc-retail-backend/internal/model"
	"abc-retail-backend/internal/table"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.User{}, &model.CartItem{}, &model.Order{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// In-memory stand-ins for the legacy entity store, with the same ETag
// discipline as the real adapter.

type fakeProducts struct {
	items map[string]*model.ProductEntity
}

func newFakeProducts(products ...*model.ProductEntity) *fakeProducts {
	f := &fakeProducts{items: make(map[string]*model.ProductEntity)}
	for _, p := range products {
		if p.RowKey == "" {
			p.RowKey = uuid.NewString()
		}
		p.PartitionKey = model.PartitionProduct
		p.ETag = uuid.NewString()
		f.items[p.RowKey] = p
	}
	return f
}

func (f *fakeProducts) Get(_ context.Context, key string) (*model.ProductEntity, error) {
	p, ok := f.items[key]
	if !ok {
		return nil, table.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProducts) List(_ context.Context) ([]*model.ProductEntity, error) {
	out := make([]*model.ProductEntity, 0, len(f.items))
	for _, p := range f.items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProducts) Insert(_ context.Context, e *model.ProductEntity) error {
	if e.RowKey == "" {
		e.RowKey = uuid.NewString()
	}
	e.PartitionKey = model.PartitionProduct
	e.ETag = uuid.NewString()
	cp := *e
	f.items[e.RowKey] = &cp
	return nil
}

func (f *fakeProducts) Update(_ context.Context, e *model.ProductEntity) error {
	current, ok := f.items[e.RowKey]
	if !ok {
		return table.ErrNotFound
	}
	if current.ETag != e.ETag {
		return table.ErrConflict
	}
	e.ETag = uuid.NewString()
	cp := *e
	f.items[e.RowKey] = &cp
	return nil
}

func (f *fakeProducts) Delete(_ context.Context, key string) error {
	if _, ok := f.items[key]; !ok {
		return table.ErrNotFound
	}
	delete(f.items, key)
	return nil
}

type fakeLegacyOrders struct {
	items map[string]*model.OrderEntity
}

func newFakeLegacyOrders(orders ...*model.OrderEntity) *fakeLegacyOrders {
	f := &fakeLegacyOrders{items: make(map[string]*model.OrderEntity)}
	for _, o := range orders {
		if o.RowKey == "" {
			o.RowKey = uuid.NewString()
		}
		o.PartitionKey = model.PartitionOrder
		o.ETag = uuid.NewString()
		f.items[o.RowKey] = o
	}
	return f
}

func (f *fakeLegacyOrders) Get(_ context.Context, key string) (*model.OrderEntity, error) {
	o, ok := f.items[key]
	if !ok {
		return nil, table.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeLegacyOrders) List(_ context.Context) ([]*model.OrderEntity, error) {
	out := make([]*model.OrderEntity, 0, len(f.items))
	for _, o := range f.items {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeLegacyOrders) Insert(_ context.Context, e *model.OrderEntity) error {
	if e.RowKey == "" {
		e.RowKey = uuid.NewString()
	}
	e.PartitionKey = model.PartitionOrder
	e.ETag = uuid.NewString()
	cp := *e
	f.items[e.RowKey] = &cp
	return nil
}

func (f *fakeLegacyOrders) Update(_ context.Context, e *model.OrderEntity) error {
	current, ok := f.items[e.RowKey]
	if !ok {
		return table.ErrNotFound
	}
	if current.ETag != e.ETag {
		return table.ErrConflict
	}
	e.ETag = uuid.NewString()
	cp := *e
	f.items[e.RowKey] = &cp
	return nil
}

func (f *fakeLegacyOrders) Delete(_ context.Context, key string) error {
	if _, ok := f.items[key]; !ok {
		return table.ErrNotFound
	}
	delete(f.items, key)
	return nil
}

type fakeCustomers struct {
	items map[string]*model.CustomerEntity
}

func newFakeCustomers(customers ...*model.CustomerEntity) *fakeCustomers {
	f := &fakeCustomers{items: make(map[string]*model.CustomerEntity)}
	for _, c := range customers {
		if c.RowKey == "" {
			c.RowKey = uuid.NewString()
		}
		c.PartitionKey = model.PartitionCustomer
		c.ETag = uuid.NewString()
		f.items[c.RowKey] = c
	}
	return f
}

func (f *fakeCustomers) Get(_ context.Context, key string) (*model.CustomerEntity, error) {
	c, ok := f.items[key]
	if !ok {
		return nil, table.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCustomers) List(_ context.Context) ([]*model.CustomerEntity, error) {
	out := make([]*model.CustomerEntity, 0, len(f.items))
	for _, c := range f.items {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCustomers) Insert(_ context.Context, e *model.CustomerEntity) error {
	if e.RowKey == "" {
		e.RowKey = uuid.NewString()
	}
	e.PartitionKey = model.PartitionCustomer
	e.ETag = uuid.NewString()
	cp := *e
	f.items[e.RowKey] = &cp
	return nil
}

func (f *fakeCustomers) Update(_ context.Context, e *model.CustomerEntity) error {
	current, ok := f.items[e.RowKey]
	if !ok {
		return table.ErrNotFound
	}
	if current.ETag != e.ETag {
		return table.ErrConflict
	}
	e.ETag = uuid.NewString()
	cp := *e
	f.items[e.RowKey] = &cp
	return nil
}

func (f *fakeCustomers) Delete(_ context.Context, key string) error {
	if _, ok := f.items[key]; !ok {
		return table.ErrNotFound
	}
	delete(f.items, key)
	return nil
}

// failQueue simulates a queue that cannot accept messages.
type failQueue struct{}

func (failQueue) Send(context.Context, string, any) error {
	return errors.New("queue unavailable")
}
