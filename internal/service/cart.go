package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"abc-retail-backend/internal/dto"
	"abc-retail-backend/internal/model"
	"abc-retail-backend/internal/repository"
)

type CartService interface {
	GetCart(ctx context.Context, userID uint) (*dto.CartResponse, error)
	Add(ctx context.Context, userID uint, productID string, quantity int) (*model.CartItem, error)
	UpdateQuantity(ctx context.Context, userID, cartID uint, quantity int) error
	Remove(ctx context.Context, userID, cartID uint) error
	Clear(ctx context.Context, userID uint) error
}

type cartServiceImpl struct {
	cartRepo repository.CartRepository
	products ProductStore
}

func NewCartService(cartRepo repository.CartRepository, products ProductStore) CartService {
	return &cartServiceImpl{cartRepo: cartRepo, products: products}
}

func (s *cartServiceImpl) GetCart(ctx context.Context, userID uint) (*dto.CartResponse, error) {
	items, err := s.cartRepo.GetUserCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := &dto.CartResponse{Items: items, TotalPrice: decimal.Zero}
	for _, item := range items {
		resp.TotalItems += item.Quantity
		resp.TotalPrice = resp.TotalPrice.Add(item.TotalPrice())
	}
	return resp, nil
}

// Add snapshots the product's name, image and current price into the cart
// line. Later adds of the same product merge quantities without refreshing
// the captured price.
func (s *cartServiceImpl) Add(ctx context.Context, userID uint, productID string, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("look up product %s: %w", productID, err)
	}
	if product.StockAvailable < quantity {
		return nil, ErrInsufficientStock
	}

	item := &model.CartItem{
		UserID:      userID,
		ProductID:   productID,
		ProductName: product.ProductName,
		Quantity:    quantity,
		UnitPrice:   product.Price(),
	}
	if product.ImageUrl != "" {
		item.ProductImageUrl = &product.ImageUrl
	}
	return s.cartRepo.Add(ctx, item)
}

func (s *cartServiceImpl) UpdateQuantity(ctx context.Context, userID, cartID uint, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if err := s.ownLine(ctx, userID, cartID); err != nil {
		return err
	}
	return s.cartRepo.UpdateQuantity(ctx, cartID, quantity)
}

func (s *cartServiceImpl) Remove(ctx context.Context, userID, cartID uint) error {
	if err := s.ownLine(ctx, userID, cartID); err != nil {
		return err
	}
	return s.cartRepo.Remove(ctx, cartID)
}

func (s *cartServiceImpl) Clear(ctx context.Context, userID uint) error {
	return s.cartRepo.Clear(ctx, userID)
}

// ownLine confirms the cart line belongs to the user before mutating it.
func (s *cartServiceImpl) ownLine(ctx context.Context, userID, cartID uint) error {
	items, err := s.cartRepo.GetUserCart(ctx, userID)
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.CartID == cartID {
			return nil
		}
	}
	return repository.ErrNotFound
}
