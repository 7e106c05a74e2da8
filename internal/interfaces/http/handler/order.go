package handler

import (
	appOrder "github.com/farmbasket/backend/internal/application/order"
	"github.com/farmbasket/backend/internal/domain/order"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles the admin order endpoints
type OrderHandler struct {
	BaseHandler
	orderService *appOrder.Service
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *appOrder.Service) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// RegisterRoutes registers order routes on the admin API group
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.GET("", h.List)
		orders.GET("/:id", h.Get)
		orders.PUT("/:id/status", h.UpdateStatus)
	}
}

// OrderListRequest carries the admin order listing query parameters
type OrderListRequest struct {
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Status     string `form:"status"`
	ProducerID string `form:"producer_id" binding:"omitempty,uuid"`
}

// List godoc
// @Summary      List orders
// @Description  Lists orders with status and producer filters
// @Tags         orders
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        status query string false "Order status filter"
// @Param        producer_id query string false "Producer filter"
// @Success      200 {object} dto.Response{data=[]order.ListItemResponse}
// @Security     BearerAuth
// @Router       /admin/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var req OrderListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := appOrder.ListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
	}
	if req.Status != "" {
		status := order.Status(req.Status)
		if !status.IsValid() {
			h.BadRequest(c, "Unknown order status: "+req.Status)
			return
		}
		filter.Status = &status
	}
	if req.ProducerID != "" {
		producerID, err := uuid.Parse(req.ProducerID)
		if err != nil {
			h.BadRequest(c, "Invalid producer ID format")
			return
		}
		filter.ProducerID = &producerID
	}

	orders, total, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, orders, total, page, pageSize)
}

// Get godoc
// @Summary      Get an order
// @Description  Returns the full admin view of an order including address and timeline
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} dto.Response{data=order.Response}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	result, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// UpdateStatus godoc
// @Summary      Transition an order
// @Description  Moves the order through its lifecycle. Cancellations restock every line in the same transaction.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID"
// @Param        request body order.UpdateStatusRequest true "Target status and optional reason"
// @Success      200 {object} dto.Response{data=order.Response}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req appOrder.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.orderService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
