package handler

import (
	"context"
	"net/http"
	"testing"

	appCatalog "github.com/farmbasket/backend/internal/application/catalog"
	"github.com/farmbasket/backend/internal/domain/partner"
	"github.com/farmbasket/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProducerRepository implements partner.ProducerRepository for testing
type MockProducerRepository struct {
	mock.Mock
}

func (m *MockProducerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Producer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Producer), args.Error(1)
}

func (m *MockProducerRepository) FindByCode(ctx context.Context, code string) (*partner.Producer, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Producer), args.Error(1)
}

func (m *MockProducerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Producer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Producer), args.Error(1)
}

func (m *MockProducerRepository) FindActive(ctx context.Context, filter shared.Filter) ([]partner.Producer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Producer), args.Error(1)
}

func (m *MockProducerRepository) Save(ctx context.Context, producer *partner.Producer) error {
	args := m.Called(ctx, producer)
	return args.Error(0)
}

func (m *MockProducerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProducerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProducerRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

var _ partner.ProducerRepository = (*MockProducerRepository)(nil)

// MockStockAdjuster implements the conditional stock delta boundary
type MockStockAdjuster struct {
	mock.Mock
}

func (m *MockStockAdjuster) AdjustStock(ctx context.Context, productID uuid.UUID, delta int64) (int64, error) {
	args := m.Called(ctx, productID, delta)
	return args.Get(0).(int64), args.Error(1)
}

func newTestProducer(t *testing.T) *partner.Producer {
	t.Helper()
	p, err := partner.NewProducer("OLV-01", "Olive Grove Co-op")
	require.NoError(t, err)
	p.ClearDomainEvents()
	return p
}

func setupProductRouter(products *MockProductRepository, producers *MockProducerRepository, adjuster *MockStockAdjuster) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := appCatalog.NewProductService(products, producers, adjuster)

	r := gin.New()
	NewProductHandler(svc).RegisterRoutes(r.Group("/api/v1/admin"))
	return r
}

func TestProductHandler_Create(t *testing.T) {
	t.Run("creates a listing", func(t *testing.T) {
		producer := newTestProducer(t)

		products := new(MockProductRepository)
		producers := new(MockProducerRepository)
		producers.On("FindByID", mock.Anything, producer.ID).Return(producer, nil)
		products.On("ExistsByCode", mock.Anything, "OIL-500").Return(false, nil)
		products.On("Save", mock.Anything, mock.Anything).Return(nil)

		r := setupProductRouter(products, producers, new(MockStockAdjuster))
		w := postJSON(t, r, "/api/v1/admin/products", gin.H{
			"code":        "OIL-500",
			"title":       "Extra Virgin Olive Oil 500ml",
			"producer_id": producer.ID,
			"unit_price":  1250,
			"unit_weight": 650,
		})

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := decodeResponse(t, w)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "OIL-500", data["code"])
		assert.Equal(t, "active", data["status"])
	})

	t.Run("duplicate code is 409", func(t *testing.T) {
		producer := newTestProducer(t)

		products := new(MockProductRepository)
		producers := new(MockProducerRepository)
		producers.On("FindByID", mock.Anything, producer.ID).Return(producer, nil)
		products.On("ExistsByCode", mock.Anything, "OIL-500").Return(true, nil)

		r := setupProductRouter(products, producers, new(MockStockAdjuster))
		w := postJSON(t, r, "/api/v1/admin/products", gin.H{
			"code":        "OIL-500",
			"title":       "Extra Virgin Olive Oil 500ml",
			"producer_id": producer.ID,
			"unit_price":  1250,
			"unit_weight": 650,
		})

		require.Equal(t, http.StatusConflict, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, "ALREADY_EXISTS", resp.Error.Code)
	})
}

func TestProductHandler_AdjustStock(t *testing.T) {
	producer := newTestProducer(t)
	product := newCatalogProduct(t, producer.ID, "OIL-500", 1250, 650, 10)

	t.Run("applies the delta", func(t *testing.T) {
		products := new(MockProductRepository)
		adjuster := new(MockStockAdjuster)
		products.On("FindByID", mock.Anything, product.ID).Return(&product, nil)
		adjuster.On("AdjustStock", mock.Anything, product.ID, int64(-4)).Return(int64(6), nil)

		r := setupProductRouter(products, new(MockProducerRepository), adjuster)
		w := postJSON(t, r, "/api/v1/admin/products/"+product.ID.String()+"/stock", gin.H{
			"delta": -4,
		})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := decodeResponse(t, w)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, float64(6), data["stock"])
	})

	t.Run("refused negative result is 409", func(t *testing.T) {
		products := new(MockProductRepository)
		adjuster := new(MockStockAdjuster)
		products.On("FindByID", mock.Anything, product.ID).Return(&product, nil)
		adjuster.On("AdjustStock", mock.Anything, product.ID, int64(-20)).
			Return(int64(0), shared.NewInsufficientStockError(product.ID.String(), 20, 10))

		r := setupProductRouter(products, new(MockProducerRepository), adjuster)
		w := postJSON(t, r, "/api/v1/admin/products/"+product.ID.String()+"/stock", gin.H{
			"delta": -20,
		})

		require.Equal(t, http.StatusConflict, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, "INSUFFICIENT_STOCK", resp.Error.Code)
	})
}
