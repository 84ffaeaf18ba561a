package domain

import "time"

type Store struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" binding:"required" gorm:"not null"`
	Location      string    `json:"location" binding:"required" gorm:"not null"`
	ContactNumber string    `json:"contact_number,omitempty"`
	Website       string    `json:"website,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
