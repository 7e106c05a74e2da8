package handler

import (
	"github.com/farmbasket/backend/internal/domain/shipping"
	"github.com/gin-gonic/gin"
)

// ShippingHandler exposes the public shipping estimator
type ShippingHandler struct {
	BaseHandler
	estimator *shipping.Estimator
}

// NewShippingHandler creates a new ShippingHandler
func NewShippingHandler(estimator *shipping.Estimator) *ShippingHandler {
	return &ShippingHandler{estimator: estimator}
}

// RegisterRoutes registers shipping routes on the public API group
func (h *ShippingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/shipping/estimate", h.Estimate)
}

// EstimateRequest carries the estimator inputs as query parameters
type EstimateRequest struct {
	WeightGrams int64  `form:"weight_grams" binding:"required,gt=0"`
	PostalCode  string `form:"postal_code" binding:"required"`
}

// Estimate godoc
// @Summary      Estimate shipping
// @Description  Computes the deterministic shipping quote for a parcel weight and destination postal code
// @Tags         shipping
// @Produce      json
// @Param        weight_grams query int true "Total parcel weight in grams"
// @Param        postal_code query string true "Destination postal code"
// @Success      200 {object} dto.Response{data=shipping.Quote}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /shipping/estimate [get]
func (h *ShippingHandler) Estimate(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	quote, err := h.estimator.Quote(req.WeightGrams, req.PostalCode)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, quote)
}
