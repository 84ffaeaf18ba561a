package repository

import (
	"errors"
	"time"

	calendardomain "homehub-backend/internal/calendar/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(event *calendardomain.CalendarEvent) error
	FindByOwner(owner string) ([]*calendardomain.CalendarEvent, error)
	FindByID(id string) (*calendardomain.CalendarEvent, error)
	Update(event *calendardomain.CalendarEvent) error
	Delete(id string) (bool, error)
}

// eventRepository implements EventRepository using GORM
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new GORM-based EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(event *calendardomain.CalendarEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()
	return r.db.Create(event).Error
}

func (r *eventRepository) FindByOwner(owner string) ([]*calendardomain.CalendarEvent, error) {
	var events []*calendardomain.CalendarEvent
	err := r.db.Where("owner = ?", owner).Order("date ASC").Find(&events).Error
	return events, err
}

func (r *eventRepository) FindByID(id string) (*calendardomain.CalendarEvent, error) {
	var event calendardomain.CalendarEvent
	err := r.db.Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Update(event *calendardomain.CalendarEvent) error {
	event.UpdatedAt = time.Now()
	return r.db.Save(event).Error
}

func (r *eventRepository) Delete(id string) (bool, error) {
	result := r.db.Delete(&calendardomain.CalendarEvent{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
