package handlers

import (
	"errors"
	"net/http"

	"restaurant-ops-api/config"
	"restaurant-ops-api/models"
	"restaurant-ops-api/report"
	"restaurant-ops-api/statemachine"
	"restaurant-ops-api/store"

	"github.com/gin-gonic/gin"
)

type PlaceOrderRequest struct {
	Items []struct {
		ID  uint `json:"id" binding:"required"`
		Qty int  `json:"qty" binding:"required,min=1"`
	} `json:"items" binding:"dive"`
	Customer report.Customer `json:"customer"`
}

// PlaceOrder stores an order and its line items atomically (public)
func PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No items"})
		return
	}

	lines := make([]store.OrderLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, store.OrderLine{ItemID: it.ID, Qty: it.Qty})
	}

	order, err := store.PlaceOrder(c.Request.Context(), config.DB, req.Customer, lines, Now())
	if err != nil {
		if errors.Is(err, store.ErrUnknownItem) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		serverError(c, "Failed to save order", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order saved successfully",
		"order":   store.ToReportOrder(order),
	})
}

// GetOrders lists every order, most recent first (owner)
func GetOrders(c *gin.Context) {
	orders, err := store.Orders(c.Request.Context(), config.DB)
	if err != nil {
		serverError(c, "Failed to load orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status"`
	Note   string             `json:"note"`
}

// UpdateOrderStatus sets an order's kitchen status (owner)
func UpdateOrderStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || statemachine.CanTransitionOrder(req.Status) != nil {
		fail(c, http.StatusBadRequest, "Invalid status")
		return
	}

	prev, err := store.SetOrderStatus(c.Request.Context(), config.DB, id, req.Status, req.Note, Now())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(c, http.StatusNotFound, "Not found")
			return
		}
		serverError(c, "Failed to update order status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"previous_status": prev,
		"current_status":  req.Status,
	})
}

// GetOrderHistory returns the status audit trail of one order (owner)
func GetOrderHistory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	db := config.DB.WithContext(c.Request.Context())

	var count int64
	if err := db.Model(&models.Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
		serverError(c, "Failed to load order", err)
		return
	}
	if count == 0 {
		fail(c, http.StatusNotFound, "Not found")
		return
	}

	var history []models.OrderStatusHistory
	if err := db.Where("order_id = ?", id).Order("id asc").Find(&history).Error; err != nil {
		serverError(c, "Failed to load order history", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order_id": id, "count": len(history), "history": history})
}
