package models

import "time"

type ReservationStatus string

const (
	ReservationPending  ReservationStatus = "Pending"
	ReservationAccepted ReservationStatus = "Accepted"
	ReservationRejected ReservationStatus = "Rejected"
)

// Reservation is a table booking. Date is YYYY-MM-DD and Time is HH:MM.
type Reservation struct {
	ID        int64             `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name      string            `json:"name" gorm:"not null"`
	Phone     string            `json:"phone" gorm:"not null"`
	Date      string            `json:"date" gorm:"not null;index"`
	Time      string            `json:"time" gorm:"not null"`
	People    int               `json:"people" gorm:"not null"`
	Status    ReservationStatus `json:"status" gorm:"not null;default:'Pending'"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt *time.Time        `json:"updatedAt" gorm:"autoUpdateTime:false"`
}
