package service

import (
	"context"

	"abc-retail-backend/internal/model"
)

// Narrow views over the legacy entity store, satisfied by table.Table
// instances and by fakes in tests.

type ProductStore interface {
	Get(ctx context.Context, rowKey string) (*model.ProductEntity, error)
	List(ctx context.Context) ([]*model.ProductEntity, error)
	Insert(ctx context.Context, e *model.ProductEntity) error
	Update(ctx context.Context, e *model.ProductEntity) error
	Delete(ctx context.Context, rowKey string) error
}

type CustomerStore interface {
	Get(ctx context.Context, rowKey string) (*model.CustomerEntity, error)
	List(ctx context.Context) ([]*model.CustomerEntity, error)
	Insert(ctx context.Context, e *model.CustomerEntity) error
	Update(ctx context.Context, e *model.CustomerEntity) error
	Delete(ctx context.Context, rowKey string) error
}

type LegacyOrderStore interface {
	Get(ctx context.Context, rowKey string) (*model.OrderEntity, error)
	List(ctx context.Context) ([]*model.OrderEntity, error)
	Insert(ctx context.Context, e *model.OrderEntity) error
	Update(ctx context.Context, e *model.OrderEntity) error
	Delete(ctx context.Context, rowKey string) error
}
