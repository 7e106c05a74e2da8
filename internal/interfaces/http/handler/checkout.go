package handler

import (
	"github.com/farmbasket/backend/internal/application/checkout"
	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles the public checkout and cart validation endpoints
type CheckoutHandler struct {
	BaseHandler
	checkoutService *checkout.Service
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// RegisterRoutes registers checkout routes on the public API group
func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/checkout", h.Checkout)
	rg.POST("/cart/validate", h.ValidateCart)
}

// Checkout godoc
// @Summary      Place an order
// @Description  Validates the cart, re-prices it from the catalog, decrements stock and creates the order atomically
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request body checkout.CheckoutRequest true "Checkout payload"
// @Success      201 {object} dto.Response{data=checkout.OrderResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req checkout.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	placed, err := h.checkoutService.Checkout(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, placed)
}

// ValidateCart godoc
// @Summary      Validate a cart
// @Description  Checks the single-producer rule against the current catalog before checkout is offered
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request body checkout.CartValidationRequest true "Cart lines"
// @Success      200 {object} dto.Response{data=checkout.CartValidationResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /cart/validate [post]
func (h *CheckoutHandler) ValidateCart(c *gin.Context) {
	var req checkout.CartValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.checkoutService.ValidateCart(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
