package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"abc-retail-backend/internal/model"
)

type CartRepository interface {
	GetUserCart(ctx context.Context, userID uint) ([]*model.CartItem, error)
	// Add upserts by (user, product): an existing line gets the quantity
	// summed onto it and keeps its original unit price; otherwise a new
	// line is created. A duplicate line for the pair is never created.
	Add(ctx context.Context, item *model.CartItem) (*model.CartItem, error)
	UpdateQuantity(ctx context.Context, cartID uint, quantity int) error
	Remove(ctx context.Context, cartID uint) error
	Clear(ctx context.Context, userID uint) error
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{db: db}
}

func (r *cartRepoImpl) GetUserCart(ctx context.Context, userID uint) ([]*model.CartItem, error) {
	var items []*model.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_added DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("get cart for user %d: %w", userID, err)
	}
	return items, nil
}

func (r *cartRepoImpl) Add(ctx context.Context, item *model.CartItem) (*model.CartItem, error) {
	var existing model.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		item.DateAdded = time.Now().UTC()
		if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
			return nil, fmt.Errorf("add cart item: %w", err)
		}
		return item, nil
	}
	if err != nil {
		return nil, fmt.Errorf("check cart item: %w", err)
	}

	// Merge into the existing line; the captured price is not refreshed.
	existing.Quantity += item.Quantity
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return nil, fmt.Errorf("merge cart item: %w", err)
	}
	return &existing, nil
}

func (r *cartRepoImpl) UpdateQuantity(ctx context.Context, cartID uint, quantity int) error {
	res := r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("cart_id = ?", cartID).
		Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("update cart quantity: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *cartRepoImpl) Remove(ctx context.Context, cartID uint) error {
	res := r.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&model.CartItem{})
	if res.Error != nil {
		return fmt.Errorf("remove cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *cartRepoImpl) Clear(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.CartItem{}).Error
}
