package models

import "time"

// OrderStatus is the kitchen-facing state of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusPreparing OrderStatus = "Preparing"
	StatusReady     OrderStatus = "Ready"
	StatusCompleted OrderStatus = "Completed"
)

// Order header. ID is derived from the creation time in milliseconds.
type Order struct {
	ID            int64                `json:"id" gorm:"primaryKey;autoIncrement:false"`
	CustomerName  string               `json:"customer_name"`
	CustomerPhone string               `json:"customer_phone" gorm:"index"`
	Status        OrderStatus          `json:"status" gorm:"not null;default:'Pending'"`
	Time          time.Time            `json:"time" gorm:"not null;index"`
	UpdatedAt     *time.Time           `json:"updatedAt" gorm:"autoUpdateTime:false"`
	Items         []OrderItem          `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	StatusHistory []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem is a frozen copy of a catalog item taken when the order was placed
type OrderItem struct {
	ID      uint   `json:"-" gorm:"primaryKey"`
	OrderID int64  `json:"-" gorm:"not null;index"`
	ItemID  uint   `json:"id" gorm:"not null"`
	Name    string `json:"name" gorm:"not null"`
	Price   int    `json:"price" gorm:"not null"` // snapshot price at time of order
	Qty     int    `json:"qty" gorm:"not null"`
}

// OrderStatusHistory records every status change of an order
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    int64       `json:"order_id" gorm:"not null;index"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
