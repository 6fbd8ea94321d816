package handlers

import (
	"errors"
	"net/http"

	"restaurant-ops-api/config"
	"restaurant-ops-api/models"
	"restaurant-ops-api/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReservationRequest struct {
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone" binding:"required"`
	Date   string `json:"date" binding:"required,datetime=2006-01-02"`
	Time   string `json:"time" binding:"required,datetime=15:04"`
	People int    `json:"people" binding:"required,min=1"`
}

// CreateReservation books a table; it starts as Pending (public)
func CreateReservation(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	now := Now().UTC()
	reservation := models.Reservation{
		ID:        now.UnixMilli(),
		Name:      req.Name,
		Phone:     req.Phone,
		Date:      req.Date,
		Time:      req.Time,
		People:    req.People,
		Status:    models.ReservationPending,
		CreatedAt: now,
	}

	err := config.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		var n int64
		for {
			if err := tx.Model(&models.Reservation{}).Where("id = ?", reservation.ID).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				break
			}
			reservation.ID++
		}
		return tx.Create(&reservation).Error
	})
	if err != nil {
		serverError(c, "Failed to save reservation", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservation": reservation})
}

// GetReservations lists bookings, latest date and time first (owner)
func GetReservations(c *gin.Context) {
	var reservations []models.Reservation
	query := config.DB.WithContext(c.Request.Context())
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("date desc").Order("time desc").Find(&reservations).Error; err != nil {
		serverError(c, "Failed to load reservations", err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

type UpdateReservationStatusRequest struct {
	Status models.ReservationStatus `json:"status"`
}

// UpdateReservationStatus accepts or rejects a pending booking (owner)
func UpdateReservationStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !statemachine.IsReservationDecision(req.Status) {
		fail(c, http.StatusBadRequest, "Invalid status")
		return
	}

	db := config.DB.WithContext(c.Request.Context())
	var reservation models.Reservation
	if err := db.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Not found")
			return
		}
		serverError(c, "Failed to load reservation", err)
		return
	}

	if err := statemachine.CanTransitionReservation(reservation.Status, req.Status); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success":           false,
			"message":           "Invalid state transition",
			"reason":            err.Error(),
			"current_status":    reservation.Status,
			"valid_next_states": statemachine.ValidReservationTransitionsFrom(reservation.Status),
		})
		return
	}

	now := Now().UTC()
	// only updates while the status is still the one checked above
	result := db.Model(&models.Reservation{}).
		Where("id = ? AND status = ?", id, reservation.Status).
		Updates(map[string]any{"status": req.Status, "updated_at": now})
	if result.Error != nil {
		serverError(c, "Failed to update reservation", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		fail(c, http.StatusConflict, "Reservation was already decided")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
