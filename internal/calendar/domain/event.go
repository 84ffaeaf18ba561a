package domain

import "time"

type CalendarEvent struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" binding:"required" gorm:"not null"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date" binding:"required"`
	StartTime   string    `json:"start_time,omitempty"`
	EndTime     string    `json:"end_time,omitempty"`
	Location    string    `json:"location,omitempty"`
	Type        string    `json:"type" binding:"required,oneof=Birthday Event Task Work Other"`
	Owner       string    `json:"owner" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
