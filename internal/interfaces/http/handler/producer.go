package handler

import (
	"context"

	"github.com/farmbasket/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProducerHandler handles the admin producer endpoints
type ProducerHandler struct {
	BaseHandler
	producerService *partner.ProducerService
}

// NewProducerHandler creates a new ProducerHandler
func NewProducerHandler(producerService *partner.ProducerService) *ProducerHandler {
	return &ProducerHandler{producerService: producerService}
}

// RegisterRoutes registers producer routes on the admin API group
func (h *ProducerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	producers := rg.Group("/producers")
	{
		producers.POST("", h.Create)
		producers.GET("", h.List)
		producers.GET("/:id", h.Get)
		producers.PUT("/:id", h.Update)
		producers.POST("/:id/activate", h.Activate)
		producers.POST("/:id/deactivate", h.Deactivate)
		producers.POST("/:id/suspend", h.Suspend)
	}
}

// ProducerListRequest carries the producer listing query parameters
type ProducerListRequest struct {
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search     string `form:"search"`
	ActiveOnly bool   `form:"active_only"`
}

// Create godoc
// @Summary      Register a producer
// @Tags         producers
// @Accept       json
// @Produce      json
// @Param        request body partner.CreateProducerRequest true "Producer registration request"
// @Success      201 {object} dto.Response{data=partner.ProducerResponse}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/producers [post]
func (h *ProducerHandler) Create(c *gin.Context) {
	var req partner.CreateProducerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.producerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List godoc
// @Summary      List producers
// @Tags         producers
// @Produce      json
// @Param        page query int false "Page number"
// @Param        active_only query bool false "Only active producers"
// @Param        search query string false "Search in name, code and region"
// @Success      200 {object} dto.Response{data=[]partner.ProducerResponse}
// @Security     BearerAuth
// @Router       /admin/producers [get]
func (h *ProducerHandler) List(c *gin.Context) {
	var req ProducerListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := partner.ProducerListFilter{
		Page:       req.Page,
		PageSize:   req.PageSize,
		OrderBy:    req.OrderBy,
		OrderDir:   req.OrderDir,
		Search:     req.Search,
		ActiveOnly: req.ActiveOnly,
	}

	producers, total, err := h.producerService.List(c.Request.Context(), filter)
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
	h.SuccessWithMeta(c, producers, total, page, pageSize)
}

// Get godoc
// @Summary      Get a producer
// @Tags         producers
// @Produce      json
// @Param        id path string true "Producer ID"
// @Success      200 {object} dto.Response{data=partner.ProducerResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/producers/{id} [get]
func (h *ProducerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid producer ID format")
		return
	}

	result, err := h.producerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Update godoc
// @Summary      Update a producer
// @Tags         producers
// @Accept       json
// @Produce      json
// @Param        id path string true "Producer ID"
// @Param        request body partner.UpdateProducerRequest true "Fields to update"
// @Success      200 {object} dto.Response{data=partner.ProducerResponse}
// @Security     BearerAuth
// @Router       /admin/producers/{id} [put]
func (h *ProducerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid producer ID format")
		return
	}

	var req partner.UpdateProducerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.producerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Activate godoc
// @Summary      Activate a producer
// @Tags         producers
// @Produce      json
// @Param        id path string true "Producer ID"
// @Success      200 {object} dto.Response{data=partner.ProducerResponse}
// @Security     BearerAuth
// @Router       /admin/producers/{id}/activate [post]
func (h *ProducerHandler) Activate(c *gin.Context) {
	h.changeStatus(c, h.producerService.Activate)
}

// Deactivate godoc
// @Summary      Deactivate a producer
// @Tags         producers
// @Produce      json
// @Param        id path string true "Producer ID"
// @Success      200 {object} dto.Response{data=partner.ProducerResponse}
// @Security     BearerAuth
// @Router       /admin/producers/{id}/deactivate [post]
func (h *ProducerHandler) Deactivate(c *gin.Context) {
	h.changeStatus(c, h.producerService.Deactivate)
}

// Suspend godoc
// @Summary      Suspend a producer
// @Description  Suspension hides all the producer's listings until reactivated
// @Tags         producers
// @Produce      json
// @Param        id path string true "Producer ID"
// @Success      200 {object} dto.Response{data=partner.ProducerResponse}
// @Security     BearerAuth
// @Router       /admin/producers/{id}/suspend [post]
func (h *ProducerHandler) Suspend(c *gin.Context) {
	h.changeStatus(c, h.producerService.Suspend)
}

func (h *ProducerHandler) changeStatus(c *gin.Context, change func(ctx context.Context, id uuid.UUID) (*partner.ProducerResponse, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid producer ID format")
		return
	}

	result, err := change(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
