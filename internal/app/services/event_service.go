package services

import (
	"context"
	"strings"

	"github.com/melisd/campushub/internal/app/models"
	"github.com/melisd/campushub/internal/app/models/dto"
	"github.com/melisd/campushub/internal/app/repositories"
)

// EventService handles business logic for campus events
type EventService struct {
	eventRepo *repositories.EventRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo *repositories.EventRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

// CreateEvent registers a new event. creatorID comes from the
// authenticated caller, never from the request body.
func (s *EventService) CreateEvent(ctx context.Context, creatorID int64, req *dto.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Date:        req.Date,
		Location:    strings.TrimSpace(req.Location),
		CreatedBy:   creatorID,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// GetEventByID retrieves an event by ID
func (s *EventService) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// GetAllEvents lists all events in chronological order
func (s *EventService) GetAllEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.GetAll(ctx)
}

// UpdateEvent applies a partial update to an existing event
func (s *EventService) UpdateEvent(ctx context.Context, id int64, req *dto.UpdateEventRequest) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Location != nil {
		event.Location = strings.TrimSpace(*req.Location)
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// DeleteEvent removes an event by ID
func (s *EventService) DeleteEvent(ctx context.Context, id int64) error {
	return s.eventRepo.Delete(ctx, id)
}
