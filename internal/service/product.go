package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"abc-retail-backend/internal/dto"
	"abc-retail-backend/internal/model"
	"abc-retail-backend/internal/queue"
)

type ProductService interface {
	List(ctx context.Context) ([]*model.ProductEntity, error)
	Get(ctx context.Context, productID string) (*model.ProductEntity, error)
	Create(ctx context.Context, req dto.ProductRequest) (*model.ProductEntity, error)
	// Update re-fetches the entity so the conditional write runs against a
	// current concurrency token; a conflict still surfaces if another
	// writer lands in between.
	Update(ctx context.Context, productID string, req dto.ProductRequest) (*model.ProductEntity, error)
	Delete(ctx context.Context, productID string) error
}

type productServiceImpl struct {
	products   ProductStore
	queue      queue.Queue
	stockQueue string
}

func NewProductService(products ProductStore, q queue.Queue, stockQueue string) ProductService {
	return &productServiceImpl{products: products, queue: q, stockQueue: stockQueue}
}

func (s *productServiceImpl) List(ctx context.Context) ([]*model.ProductEntity, error) {
	return s.products.List(ctx)
}

func (s *productServiceImpl) Get(ctx context.Context, productID string) (*model.ProductEntity, error) {
	return s.products.Get(ctx, productID)
}

func (s *productServiceImpl) Create(ctx context.Context, req dto.ProductRequest) (*model.ProductEntity, error) {
	product := &model.ProductEntity{
		ProductName:    req.ProductName,
		Description:    req.Description,
		StockAvailable: req.StockAvailable,
		ImageUrl:       req.ImageUrl,
	}
	product.SetPrice(req.Price)
	if err := s.products.Insert(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productServiceImpl) Update(ctx context.Context, productID string, req dto.ProductRequest) (*model.ProductEntity, error) {
	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("look up product %s: %w", productID, err)
	}

	previousStock := product.StockAvailable
	product.ProductName = req.ProductName
	product.Description = req.Description
	product.StockAvailable = req.StockAvailable
	product.ImageUrl = req.ImageUrl
	product.SetPrice(req.Price)

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}

	if previousStock != product.StockAvailable {
		if err := s.queue.Send(ctx, s.stockQueue, &model.StockUpdate{
			ProductID:     product.RowKey,
			ProductName:   product.ProductName,
			PreviousStock: previousStock,
			NewStock:      product.StockAvailable,
			UpdatedBy:     "Admin",
			UpdateDate:    time.Now().UTC(),
		}); err != nil {
			log.Printf("warning: stock update not enqueued for %s: %v", product.RowKey, err)
		}
	}
	return product, nil
}

func (s *productServiceImpl) Delete(ctx context.Context, productID string) error {
	return s.products.Delete(ctx, productID)
}
