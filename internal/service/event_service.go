package service

import (
	"context"

	"invtrack/internal/dto"
	"invtrack/internal/model"
	"invtrack/internal/repository"
)

type EventService interface {
	Create(ctx context.Context, req dto.CreateEventRequest) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
}

type eventService struct {
	repo repository.EventRepository
}

func NewEventService(repo repository.EventRepository) EventService {
	return &eventService{repo: repo}
}

func (s *eventService) Create(ctx context.Context, req dto.CreateEventRequest) (*model.Event, error) {
	event := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context) ([]model.Event, error) {
	return s.repo.List(ctx)
}
