package persistence

import (
	"context"
	"errors"

	"github.com/farmbasket/backend/internal/domain/catalog"
	"github.com/farmbasket/backend/internal/domain/order"
	"github.com/farmbasket/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCheckoutStore persists a new order and decrements product stock in a
// single transaction. The decrement is conditional on sufficient stock, so
// two concurrent checkouts for the last unit cannot both succeed.
type GormCheckoutStore struct {
	db *gorm.DB
}

// NewGormCheckoutStore creates a new GormCheckoutStore
func NewGormCheckoutStore(db *gorm.DB) *GormCheckoutStore {
	return &GormCheckoutStore{db: db}
}

// CreateOrder decrements stock for every line and inserts the order with its
// items. Any failed decrement rolls back the whole transaction.
func (s *GormCheckoutStore) CreateOrder(ctx context.Context, o *order.Order) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range o.Items {
			result := tx.Exec(
				"UPDATE products SET stock = stock - ?, updated_at = NOW() WHERE id = ? AND stock >= ?",
				item.Quantity, item.ProductID, item.Quantity,
			)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return s.insufficientStockError(tx, item.ProductID, item.Quantity)
			}
		}

		if err := tx.Create(o).Error; err != nil {
			return err
		}

		return nil
	})
}

// insufficientStockError re-reads the product to report the exact shortfall.
// The read happens inside the doomed transaction, so the stock it sees is the
// one the decrement was refused against.
func (s *GormCheckoutStore) insufficientStockError(tx *gorm.DB, productID uuid.UUID, requested int64) error {
	var product catalog.Product
	if err := tx.Select("id", "stock").First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.ErrNotFound
		}
		return err
	}
	return shared.NewInsufficientStockError(productID.String(), requested, product.Stock)
}

// GormStockAdjuster applies back-office stock deltas with the same guard the
// checkout path uses: stock never goes negative.
type GormStockAdjuster struct {
	db *gorm.DB
}

// NewGormStockAdjuster creates a new GormStockAdjuster
func NewGormStockAdjuster(db *gorm.DB) *GormStockAdjuster {
	return &GormStockAdjuster{db: db}
}

// AdjustStock shifts the product stock by a signed delta and returns the new
// level. A subtraction below zero is refused with an insufficient stock error.
func (a *GormStockAdjuster) AdjustStock(ctx context.Context, productID uuid.UUID, delta int64) (int64, error) {
	var newStock int64
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Exec(
			"UPDATE products SET stock = stock + ?, updated_at = NOW() WHERE id = ? AND stock + ? >= 0",
			delta, productID, delta,
		)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var product catalog.Product
			if err := tx.Select("id", "stock").First(&product, "id = ?", productID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return shared.ErrNotFound
				}
				return err
			}
			return shared.NewInsufficientStockError(productID.String(), -delta, product.Stock)
		}

		var levels []int64
		if err := tx.Model(&catalog.Product{}).
			Where("id = ?", productID).
			Pluck("stock", &levels).Error; err != nil {
			return err
		}
		if len(levels) > 0 {
			newStock = levels[0]
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newStock, nil
}
