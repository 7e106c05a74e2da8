package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	appOrder "github.com/farmbasket/backend/internal/application/order"
	"github.com/farmbasket/backend/internal/domain/order"
	"github.com/farmbasket/backend/internal/domain/shared"
	"github.com/farmbasket/backend/internal/domain/shared/valueobject"
	"github.com/farmbasket/backend/internal/domain/shipping"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPlacedOrder(t *testing.T) *order.Order {
	t.Helper()
	address, err := valueobject.NewShippingAddress(
		"Maria Papadaki", "Ermou 12", "Athens", "11527", "+302101234567")
	require.NoError(t, err)

	o, err := order.NewOrder("FM-2026-00042", uuid.New(), address, []order.ItemSpec{
		{ProductID: uuid.New(), Title: "Thyme Honey 450g", UnitPrice: 700, UnitWeight: 500, Quantity: 2},
	}, shipping.Quote{Cost: 350, Carrier: shipping.CarrierStandard, ETADays: 2, Region: shipping.RegionAtticaMetro})
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}

func setupOrderRouter(orders *MockOrderRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := appOrder.NewService(orders)

	r := gin.New()
	api := r.Group("/api/v1")
	NewTrackingHandler(svc).RegisterRoutes(api)
	NewOrderHandler(svc).RegisterRoutes(api.Group("/admin"))
	return r
}

func TestTrackingHandler_Track(t *testing.T) {
	t.Run("resolves a token to the public projection", func(t *testing.T) {
		placed := newPlacedOrder(t)

		orders := new(MockOrderRepository)
		orders.On("FindByTrackingToken", mock.Anything, placed.TrackingToken).Return(placed, nil)

		r := setupOrderRouter(orders)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/track/"+placed.TrackingToken, nil))

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "FM-2026-00042", data["order_number"])
		assert.Equal(t, "PENDING", data["status"])
		assert.Equal(t, "Order received", data["status_label"])

		// The public projection must never leak address or totals
		assert.NotContains(t, data, "address")
		assert.NotContains(t, data, "total")
		assert.NotContains(t, data, "tracking_token")
	})

	t.Run("unknown token is 404", func(t *testing.T) {
		orders := new(MockOrderRepository)
		orders.On("FindByTrackingToken", mock.Anything, "missing-token").Return(nil, shared.ErrNotFound)

		r := setupOrderRouter(orders)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/track/missing-token", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestOrderHandler_List(t *testing.T) {
	placed := newPlacedOrder(t)

	orders := new(MockOrderRepository)
	orders.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["status"] == "PENDING" && f.Page == 1 && f.PageSize == 20
	})).Return([]order.Order{*placed}, nil)
	orders.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)

	r := setupOrderRouter(orders)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders?status=PENDING", nil))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(1), resp.Meta.Total)

	rows := resp.Data.([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "FM-2026-00042", row["order_number"])
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	t.Run("legal transition", func(t *testing.T) {
		placed := newPlacedOrder(t)

		orders := new(MockOrderRepository)
		orders.On("FindByID", mock.Anything, placed.ID).Return(placed, nil)
		orders.On("UpdateStatus", mock.Anything, placed.ID, order.StatusPending, order.StatusPaid, "").Return(nil)

		r := setupOrderRouter(orders)
		w := putJSON(t, r, "/api/v1/admin/orders/"+placed.ID.String()+"/status", gin.H{
			"status": "PAID",
		})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := decodeResponse(t, w)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "PAID", data["status"])
		orders.AssertExpectations(t)
	})

	t.Run("illegal transition is 409 with endpoints", func(t *testing.T) {
		placed := newPlacedOrder(t)
		placed.Status = order.StatusDelivered

		orders := new(MockOrderRepository)
		orders.On("FindByID", mock.Anything, placed.ID).Return(placed, nil)

		r := setupOrderRouter(orders)
		w := putJSON(t, r, "/api/v1/admin/orders/"+placed.ID.String()+"/status", gin.H{
			"status": "PAID",
		})

		require.Equal(t, http.StatusConflict, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, "ILLEGAL_TRANSITION", resp.Error.Code)
		assert.Equal(t, "DELIVERED", resp.Error.Details["from"])
		assert.Equal(t, "PAID", resp.Error.Details["to"])
		orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown status is 400", func(t *testing.T) {
		orders := new(MockOrderRepository)
		r := setupOrderRouter(orders)
		w := putJSON(t, r, "/api/v1/admin/orders/"+uuid.NewString()+"/status", gin.H{
			"status": "TELEPORTED",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
