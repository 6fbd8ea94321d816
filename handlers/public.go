package handlers

import (
	"net/http"

	"restaurant-ops-api/models"
	"restaurant-ops-api/report"
	"restaurant-ops-api/statemachine"

	"github.com/gin-gonic/gin"
)

// Health check endpoint
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Restaurant Ordering & Operations API",
		"version": "1.0.0",
	})
}

func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "🍛 Welcome to the Restaurant Ordering & Operations API",
		"docs":    "/status-info",
		"health":  "/health",
		"exports": report.ExportKinds,
	})
}

// GetStatusInfo describes the order and reservation lifecycles
func GetStatusInfo(c *gin.Context) {
	reservation := []gin.H{}
	for _, from := range []models.ReservationStatus{models.ReservationPending, models.ReservationAccepted, models.ReservationRejected} {
		reservation = append(reservation, gin.H{
			"from": from,
			"to":   statemachine.ValidReservationTransitionsFrom(from),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"order_statuses":          statemachine.OrderStatuses(),
		"order_transitions":       "any status may follow any other",
		"reservation_transitions": reservation,
		"terminal_reservation":    []models.ReservationStatus{models.ReservationAccepted, models.ReservationRejected},
	})
}
