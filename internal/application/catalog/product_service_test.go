package catalog

import (
	"context"
	"testing"

	"github.com/farmbasket/backend/internal/domain/catalog"
	"github.com/farmbasket/backend/internal/domain/partner"
	"github.com/farmbasket/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByProducer(ctx context.Context, producerID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, producerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindActive(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

// MockProducerRepository is a mock implementation of partner.ProducerRepository
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

// MockStockAdjuster is a mock implementation of StockAdjuster
type MockStockAdjuster struct {
	mock.Mock
}

func (m *MockStockAdjuster) AdjustStock(ctx context.Context, productID uuid.UUID, delta int64) (int64, error) {
	args := m.Called(ctx, productID, delta)
	return args.Get(0).(int64), args.Error(1)
}

func newActiveProducer(t *testing.T) *partner.Producer {
	t.Helper()
	producer, err := partner.NewProducer("OLIVECO", "Olive Grove Collective")
	require.NoError(t, err)
	producer.ClearDomainEvents()
	return producer
}

func newStockedProduct(t *testing.T, producerID uuid.UUID, stock int64) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(producerID, "OIL-500", "Extra Virgin Olive Oil 500ml", 1250, 650)
	require.NoError(t, err)
	require.NoError(t, product.SetStock(stock))
	product.ClearDomainEvents()
	return product
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a listing with initial stock", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		producerRepo := new(MockProducerRepository)
		producer := newActiveProducer(t)

		producerRepo.On("FindByID", ctx, producer.ID).Return(producer, nil)
		productRepo.On("ExistsByCode", ctx, "HONEY-1KG").Return(false, nil)
		productRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		svc := NewProductService(productRepo, producerRepo, new(MockStockAdjuster))
		resp, err := svc.Create(ctx, CreateProductRequest{
			Code:         "honey-1kg",
			Title:        "Thyme Honey 1kg",
			Description:  "Raw thyme honey from Crete",
			ProducerID:   producer.ID,
			UnitPrice:    1890,
			UnitWeight:   1100,
			InitialStock: 40,
		})

		require.NoError(t, err)
		assert.Equal(t, "HONEY-1KG", resp.Code)
		assert.Equal(t, int64(40), resp.Stock)
		assert.Equal(t, "Raw thyme honey from Crete", resp.Description)
		assert.Equal(t, string(catalog.ProductStatusActive), resp.Status)
		productRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate code", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		producerRepo := new(MockProducerRepository)
		producer := newActiveProducer(t)

		producerRepo.On("FindByID", ctx, producer.ID).Return(producer, nil)
		productRepo.On("ExistsByCode", ctx, "OIL-500").Return(true, nil)

		svc := NewProductService(productRepo, producerRepo, new(MockStockAdjuster))
		_, err := svc.Create(ctx, CreateProductRequest{
			Code:       "OIL-500",
			Title:      "Extra Virgin Olive Oil 500ml",
			ProducerID: producer.ID,
			UnitPrice:  1250,
			UnitWeight: 650,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects inactive producer", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		producerRepo := new(MockProducerRepository)
		producer := newActiveProducer(t)
		require.NoError(t, producer.Deactivate())

		producerRepo.On("FindByID", ctx, producer.ID).Return(producer, nil)

		svc := NewProductService(productRepo, producerRepo, new(MockStockAdjuster))
		_, err := svc.Create(ctx, CreateProductRequest{
			Code:       "OIL-500",
			Title:      "Extra Virgin Olive Oil 500ml",
			ProducerID: producer.ID,
			UnitPrice:  1250,
			UnitWeight: 650,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		productRepo.AssertNotCalled(t, "ExistsByCode", mock.Anything, mock.Anything)
	})
}

func TestProductService_AdjustStock(t *testing.T) {
	ctx := context.Background()

	t.Run("applies the delta through the adjuster", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		adjuster := new(MockStockAdjuster)
		product := newStockedProduct(t, uuid.New(), 10)

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		adjuster.On("AdjustStock", ctx, product.ID, int64(-4)).Return(int64(6), nil)

		svc := NewProductService(productRepo, new(MockProducerRepository), adjuster)
		resp, err := svc.AdjustStock(ctx, product.ID, AdjustStockRequest{Delta: -4})

		require.NoError(t, err)
		assert.Equal(t, int64(6), resp.Stock)
		adjuster.AssertExpectations(t)
	})

	t.Run("rejects zero delta without touching the repository", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		adjuster := new(MockStockAdjuster)

		svc := NewProductService(productRepo, new(MockProducerRepository), adjuster)
		_, err := svc.AdjustStock(ctx, uuid.New(), AdjustStockRequest{Delta: 0})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
		productRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("propagates insufficient stock from the adjuster", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		adjuster := new(MockStockAdjuster)
		product := newStockedProduct(t, uuid.New(), 3)

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		adjuster.On("AdjustStock", ctx, product.ID, int64(-5)).
			Return(int64(0), shared.NewInsufficientStockError(product.ID.String(), 5, 3))

		svc := NewProductService(productRepo, new(MockProducerRepository), adjuster)
		_, err := svc.AdjustStock(ctx, product.ID, AdjustStockRequest{Delta: -5})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
	})
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("updates only the provided fields", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		product := newStockedProduct(t, uuid.New(), 10)

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		productRepo.On("Save", ctx, product).Return(nil)

		newPrice := int64(1390)
		svc := NewProductService(productRepo, new(MockProducerRepository), new(MockStockAdjuster))
		resp, err := svc.Update(ctx, product.ID, UpdateProductRequest{UnitPrice: &newPrice})

		require.NoError(t, err)
		assert.Equal(t, int64(1390), resp.UnitPrice)
		assert.Equal(t, "Extra Virgin Olive Oil 500ml", resp.Title)
	})

	t.Run("rejects invalid weight", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		product := newStockedProduct(t, uuid.New(), 10)

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

		badWeight := int64(0)
		svc := NewProductService(productRepo, new(MockProducerRepository), new(MockStockAdjuster))
		_, err := svc.Update(ctx, product.ID, UpdateProductRequest{UnitWeight: &badWeight})

		require.Error(t, err)
		productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestProductService_StatusChanges(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivate then activate", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		product := newStockedProduct(t, uuid.New(), 10)

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		productRepo.On("Save", ctx, product).Return(nil)

		svc := NewProductService(productRepo, new(MockProducerRepository), new(MockStockAdjuster))

		resp, err := svc.Deactivate(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, string(catalog.ProductStatusInactive), resp.Status)

		resp, err = svc.Activate(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, string(catalog.ProductStatusActive), resp.Status)
	})

	t.Run("archived is terminal", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		product := newStockedProduct(t, uuid.New(), 10)

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		productRepo.On("Save", ctx, product).Return(nil)

		svc := NewProductService(productRepo, new(MockProducerRepository), new(MockStockAdjuster))

		_, err := svc.Archive(ctx, product.ID)
		require.NoError(t, err)

		_, err = svc.Activate(ctx, product.ID)
		require.Error(t, err)
	})
}

func TestProductService_List(t *testing.T) {
	ctx := context.Background()
	producerID := uuid.New()

	productRepo := new(MockProductRepository)
	product := newStockedProduct(t, producerID, 10)

	productRepo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Page == 1 && f.PageSize == 20 &&
			f.Filters["producer_id"] == producerID &&
			f.Filters["status"] == string(catalog.ProductStatusActive)
	})).Return([]catalog.Product{*product}, nil)
	productRepo.On("Count", ctx, mock.Anything).Return(int64(1), nil)

	svc := NewProductService(productRepo, new(MockProducerRepository), new(MockStockAdjuster))
	items, total, err := svc.List(ctx, ProductListFilter{ProducerID: &producerID, ActiveOnly: true})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "OIL-500", items[0].Code)
}
