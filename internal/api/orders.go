package api

import (
	"net/http"

	"github.com/ItaloOlivier/shopcrypto/internal/order"
	"github.com/ItaloOlivier/shopcrypto/internal/user"
	"github.com/ItaloOlivier/shopcrypto/internal/utils"

	"github.com/gin-gonic/gin"
)

// Checkout is the order intake endpoint. Guests and authenticated sessions
// both land here; identity resolution happens in the service.
func (h *Handler) Checkout(c *gin.Context) {
	var input order.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	res, err := h.orders.Checkout(c.Request.Context(), input)
	if err != nil {
		status, msg := errStatus(err)
		if status == http.StatusInternalServerError {
			msg = "Failed to create order"
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"orderNumber": res.OrderNumber,
		"orderId":     res.OrderID,
	})
}

func (h *Handler) GetOrder(c *gin.Context) {
	ctx := c.Request.Context()
	requesterID, _ := utils.GetUserIDFromContext(ctx)
	isAdmin := utils.GetUserRoleFromContext(ctx) == string(user.RoleAdmin)

	o, err := h.orders.GetByOrderNumber(ctx, c.Param("orderNumber"), requesterID, isAdmin)
	if err != nil {
		status, msg := errStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*o))
}

func (h *Handler) MyOrders(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orders, err := h.orders.ListByUser(ctx, userID)
	if err != nil {
		status, msg := errStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, toOrderResponses(orders))
}
