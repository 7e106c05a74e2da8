package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/farmbasket/backend/internal/domain/order"
	"github.com/farmbasket/backend/internal/domain/shared"
	"github.com/farmbasket/backend/internal/domain/shared/valueobject"
	"github.com/farmbasket/backend/internal/domain/shipping"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutOrder(t *testing.T, quantity int64) *order.Order {
	t.Helper()
	address, err := valueobject.NewShippingAddress("Maria Papadopoulou", "Leoforos Mesogeion 210", "Athens", "11527", "+306971234567")
	require.NoError(t, err)

	o, err := order.NewOrder("FM-2026-00042", uuid.New(), address, []order.ItemSpec{
		{ProductID: uuid.New(), Title: "Extra Virgin Olive Oil 500ml", UnitPrice: 700, UnitWeight: 650, Quantity: quantity},
	}, shipping.Quote{Cost: 350, Carrier: "Standard Courier", ETADays: 2, Region: "Attica Metro"})
	require.NoError(t, err)
	return o
}

func TestGormCheckoutStore_CreateOrder(t *testing.T) {
	t.Run("decrements stock and inserts the order atomically", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		store := NewGormCheckoutStore(db)

		o := newCheckoutOrder(t, 2)
		productID := o.Items[0].ProductID

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE products SET stock = stock - \$1, updated_at = NOW\(\) WHERE id = \$2 AND stock >= \$3`).
			WithArgs(int64(2), productID, int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "orders"`).
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(1))
		mock.ExpectExec(`INSERT INTO "order_items"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := store.CreateOrder(context.Background(), o)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back everything when a decrement is refused", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		store := NewGormCheckoutStore(db)

		o := newCheckoutOrder(t, 5)
		productID := o.Items[0].ProductID

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE products SET stock = stock - \$1, updated_at = NOW\(\) WHERE id = \$2 AND stock >= \$3`).
			WithArgs(int64(5), productID, int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT "id","stock" FROM "products" WHERE id = \$1`).
			WithArgs(productID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "stock"}).AddRow(productID, 3))
		mock.ExpectRollback()

		err := store.CreateOrder(context.Background(), o)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
		assert.Equal(t, int64(5), domainErr.Details["requested"])
		assert.Equal(t, int64(3), domainErr.Details["available"])
		assert.Equal(t, int64(2), domainErr.Details["shortfall"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormStockAdjuster_AdjustStock(t *testing.T) {
	t.Run("applies the delta and returns the new level", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		adjuster := NewGormStockAdjuster(db)

		productID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE products SET stock = stock \+ \$1, updated_at = NOW\(\) WHERE id = \$2 AND stock \+ \$3 >= 0`).
			WithArgs(int64(-4), productID, int64(-4)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT "stock" FROM "products" WHERE id = \$1`).
			WithArgs(productID).
			WillReturnRows(sqlmock.NewRows([]string{"stock"}).AddRow(6))
		mock.ExpectCommit()

		newStock, err := adjuster.AdjustStock(context.Background(), productID, -4)

		require.NoError(t, err)
		assert.Equal(t, int64(6), newStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("refuses to drive stock negative", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		adjuster := NewGormStockAdjuster(db)

		productID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE products SET stock = stock \+ \$1, updated_at = NOW\(\) WHERE id = \$2 AND stock \+ \$3 >= 0`).
			WithArgs(int64(-5), productID, int64(-5)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT "id","stock" FROM "products" WHERE id = \$1`).
			WithArgs(productID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "stock"}).AddRow(productID, 3))
		mock.ExpectRollback()

		_, err := adjuster.AdjustStock(context.Background(), productID, -5)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
