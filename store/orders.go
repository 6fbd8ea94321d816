package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"restaurant-ops-api/models"
	"restaurant-ops-api/report"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrUnknownItem = errors.New("unknown menu item")
	ErrNoItems     = errors.New("order has no items")
)

// OrderLine is a requested catalog item and quantity
type OrderLine struct {
	ItemID uint
	Qty    int
}

// PlaceOrder inserts the order header, its line items and the first
// status-history row in one transaction. Line items copy the catalog's
// current name and price. Nothing is written if any step fails.
func PlaceOrder(ctx context.Context, db *gorm.DB, customer report.Customer, lines []OrderLine, now time.Time) (models.Order, error) {
	if len(lines) == 0 {
		return models.Order{}, ErrNoItems
	}

	order := models.Order{
		CustomerName:  customer.Name,
		CustomerPhone: customer.Phone,
		Status:        models.StatusPending,
		Time:          now.UTC(),
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, l := range lines {
			var item models.MenuItem
			if err := tx.First(&item, l.ItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %d", ErrUnknownItem, l.ItemID)
				}
				return err
			}
			order.Items = append(order.Items, models.OrderItem{
				ItemID: item.ID,
				Name:   item.Name,
				Price:  item.Price,
				Qty:    l.Qty,
			})
		}

		id, err := nextOrderID(tx, now)
		if err != nil {
			return err
		}
		order.ID = id

		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Create(&models.OrderStatusHistory{
			OrderID:  order.ID,
			ToStatus: models.StatusPending,
			Note:     "Order placed by customer",
		}).Error
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// nextOrderID uses the creation time in milliseconds, stepping forward
// past any id already taken within the same millisecond
func nextOrderID(tx *gorm.DB, now time.Time) (int64, error) {
	id := now.UnixMilli()
	for {
		var n int64
		if err := tx.Model(&models.Order{}).Where("id = ?", id).Count(&n).Error; err != nil {
			return 0, err
		}
		if n == 0 {
			return id, nil
		}
		id++
	}
}

// SetOrderStatus moves an order to status and appends a history row.
// It returns the previous status.
func SetOrderStatus(ctx context.Context, db *gorm.DB, id int64, status models.OrderStatus, note string, now time.Time) (models.OrderStatus, error) {
	var prev models.OrderStatus
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		prev = order.Status
		updated := now.UTC()
		if err := tx.Model(&order).Updates(map[string]any{"status": status, "updated_at": updated}).Error; err != nil {
			return err
		}
		return tx.Create(&models.OrderStatusHistory{
			OrderID:    order.ID,
			FromStatus: prev,
			ToStatus:   status,
			Note:       note,
		}).Error
	})
	return prev, err
}

// SavePrepared upserts the entry for date. The stored item map is replaced
// as a whole, so the last writer for a date wins.
func SavePrepared(ctx context.Context, db *gorm.DB, date string, items map[uint]int) error {
	raw := make(map[string]int, len(items))
	for id, qty := range items {
		raw[strconv.FormatUint(uint64(id), 10)] = qty
	}
	body, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	entry := models.PreparedEntry{Date: date, Items: datatypes.JSON(body)}
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"items"}),
	}).Create(&entry).Error
}
