package models

import "gorm.io/datatypes"

// PreparedEntry holds the quantities cooked for one day, keyed by item id.
// There is exactly one entry per date; saving again replaces the whole map.
type PreparedEntry struct {
	Date  string         `json:"date" gorm:"primaryKey"`
	Items datatypes.JSON `json:"items" gorm:"not null"`
}
