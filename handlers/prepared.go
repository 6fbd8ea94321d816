package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"restaurant-ops-api/config"
	"restaurant-ops-api/report"
	"restaurant-ops-api/store"

	"github.com/gin-gonic/gin"
)

// SavePrepared records the quantities prepared for a day (owner).
// The body is {date?, items:{id:qty}} or a bare {id:qty} map; date
// defaults to today. A second save for the same date replaces the map.
func SavePrepared(c *gin.Context) {
	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	date := report.TodayKey(Now())
	if raw, ok := body["date"]; ok {
		var d string
		if err := json.Unmarshal(raw, &d); err != nil {
			fail(c, http.StatusBadRequest, "Invalid date")
			return
		}
		if d != "" {
			if _, err := time.Parse("2006-01-02", d); err != nil {
				fail(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
				return
			}
			date = d
		}
		delete(body, "date")
	}

	var itemsRaw []byte
	if raw, ok := body["items"]; ok {
		itemsRaw = raw
	} else {
		b, err := json.Marshal(body)
		if err != nil {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		itemsRaw = b
	}

	items := store.ParseQuantities(itemsRaw)
	if err := store.SavePrepared(c.Request.Context(), config.DB, date, items); err != nil {
		serverError(c, "Failed to save prepared quantities", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Prepared quantities saved", "date": date})
}

// GetPrepared lists every prepared entry, most recent date first (owner)
func GetPrepared(c *gin.Context) {
	entries, err := store.PreparedEntries(c.Request.Context(), config.DB)
	if err != nil {
		serverError(c, "Failed to load prepared entries", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
