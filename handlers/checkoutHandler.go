package handlers

import (
	"ClinicDesk/models"
	"ClinicDesk/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkout *services.CheckoutService
	preview  *services.CartPreviewService
}

func NewCheckoutHandler(checkout *services.CheckoutService, preview *services.CartPreviewService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, preview: preview}
}

// Checkout creates one appointment per visit group derived from the cart.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var cart models.Cart
	if err := c.ShouldBindJSON(&cart); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.checkout.Checkout(c, cart)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Preview prices and groups the cart without creating anything, so the desk
// can show the total and the visit split while the cart is being edited.
func (h *CheckoutHandler) Preview(c *gin.Context) {
	var cart models.Cart
	if err := c.ShouldBindJSON(&cart); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	preview, err := h.preview.Preview(c, cart)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}
