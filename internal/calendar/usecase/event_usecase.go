package usecase

import (
	"errors"

	calendardomain "homehub-backend/internal/calendar/domain"
	"homehub-backend/internal/calendar/repository"
)

var ErrEventNotFound = errors.New("event not found")

// EventUsecase defines the calendar event business logic contract
type EventUsecase interface {
	CreateEvent(owner string, event *calendardomain.CalendarEvent) error
	GetEvents(owner string) ([]*calendardomain.CalendarEvent, error)
	GetEventByID(id string) (*calendardomain.CalendarEvent, error)
	UpdateEvent(id string, event *calendardomain.CalendarEvent) (*calendardomain.CalendarEvent, error)
	DeleteEvent(id string) error
}

type eventUsecase struct {
	eventRepo repository.EventRepository
}

// NewEventUsecase creates a new instance of eventUsecase
func NewEventUsecase(eventRepo repository.EventRepository) EventUsecase {
	return &eventUsecase{eventRepo: eventRepo}
}

func (u *eventUsecase) CreateEvent(owner string, event *calendardomain.CalendarEvent) error {
	event.Owner = owner
	return u.eventRepo.Create(event)
}

func (u *eventUsecase) GetEvents(owner string) ([]*calendardomain.CalendarEvent, error) {
	return u.eventRepo.FindByOwner(owner)
}

func (u *eventUsecase) GetEventByID(id string) (*calendardomain.CalendarEvent, error) {
	event, err := u.eventRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

func (u *eventUsecase) UpdateEvent(id string, event *calendardomain.CalendarEvent) (*calendardomain.CalendarEvent, error) {
	existing, err := u.eventRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrEventNotFound
	}

	event.ID = existing.ID
	event.Owner = existing.Owner
	event.CreatedAt = existing.CreatedAt
	if err := u.eventRepo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (u *eventUsecase) DeleteEvent(id string) error {
	deleted, err := u.eventRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEventNotFound
	}
	return nil
}
