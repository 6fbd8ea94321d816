package handlers

import (
	"errors"
	"net/http"
	"strings"

	"restaurant-ops-api/config"
	"restaurant-ops-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuItemRequest struct {
	Name        string          `json:"name"`
	Price       int             `json:"price" binding:"gte=0"`
	Type        models.MenuType `json:"type"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
}

// GetMenu returns the whole catalog (public)
func GetMenu(c *gin.Context) {
	var items []models.MenuItem
	if err := config.DB.WithContext(c.Request.Context()).Order("id asc").Find(&items).Error; err != nil {
		serverError(c, "Failed to load menu", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddMenuItem adds a catalog item, filling defaults for missing fields
func AddMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		req.Name = "New Item"
	}
	if req.Type == "" {
		req.Type = models.MenuVeg
	}
	if !req.Type.Valid() {
		fail(c, http.StatusBadRequest, "Invalid type. Must be: veg or nonveg")
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Price:       req.Price,
		Type:        req.Type,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := config.DB.WithContext(c.Request.Context()).Create(&item).Error; err != nil {
		serverError(c, "Failed to add menu item", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": item})
}

// UpdateMenuItem replaces every editable field of a catalog item
func UpdateMenuItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	db := config.DB.WithContext(c.Request.Context())

	var item models.MenuItem
	if err := db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Not found")
			return
		}
		serverError(c, "Failed to load menu item", err)
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Type != "" && !req.Type.Valid() {
		fail(c, http.StatusBadRequest, "Invalid type. Must be: veg or nonveg")
		return
	}
	if req.Type == "" {
		req.Type = item.Type
	}

	item.Name = req.Name
	item.Price = req.Price
	item.Type = req.Type
	item.Description = req.Description
	item.ImageURL = req.ImageURL
	if err := db.Save(&item).Error; err != nil {
		serverError(c, "Failed to update menu item", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": item})
}

// DeleteMenuItem removes a catalog item; past orders keep their snapshot
func DeleteMenuItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := config.DB.WithContext(c.Request.Context()).Delete(&models.MenuItem{}, id).Error; err != nil {
		serverError(c, "Failed to delete menu item", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
