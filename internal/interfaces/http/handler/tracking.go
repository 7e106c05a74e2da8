package handler

import (
	appOrder "github.com/farmbasket/backend/internal/application/order"
	"github.com/gin-gonic/gin"
)

// TrackingHandler exposes public order tracking by token. The token is
// the only credential; responses carry no address or pricing data.
type TrackingHandler struct {
	BaseHandler
	orderService *appOrder.Service
}

// NewTrackingHandler creates a new TrackingHandler
func NewTrackingHandler(orderService *appOrder.Service) *TrackingHandler {
	return &TrackingHandler{orderService: orderService}
}

// RegisterRoutes registers tracking routes on the public API group
func (h *TrackingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/track/:token", h.Track)
}

// Track godoc
// @Summary      Track an order
// @Description  Resolves a tracking token to the buyer-facing order projection
// @Tags         tracking
// @Produce      json
// @Param        token path string true "Tracking token"
// @Success      200 {object} dto.Response{data=order.TrackingResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /track/{token} [get]
func (h *TrackingHandler) Track(c *gin.Context) {
	result, err := h.orderService.Track(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
