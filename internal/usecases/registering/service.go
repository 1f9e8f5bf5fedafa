package registering

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/duarte550/crmCRIback/infrastructure/repository"
	"github.com/duarte550/crmCRIback/internal/domain"
	"github.com/duarte550/crmCRIback/pkg/utils"
)

const missingFieldsMessage = "Please provide all required fields."

// Registrar cria os registros que o CRM grava diretamente: eventos de timeline e tarefas
type Registrar interface {
	CreateTimelineEvent(ctx context.Context, request domain.TimelineEventRequest) (*domain.TimelineEvent, error)
	CreateTask(ctx context.Context, request domain.TaskRequest) (*domain.Task, error)
}

type Service struct {
	timelineRepository repository.TimelineRepository
	taskRepository     repository.TaskRepository
	now                func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	timelineRepository repository.TimelineRepository,
	taskRepository repository.TaskRepository,
	opts ...Option,
) Registrar {
	s := &Service{
		timelineRepository: timelineRepository,
		taskRepository:     taskRepository,
		now:                time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) CreateTimelineEvent(ctx context.Context, request domain.TimelineEventRequest) (*domain.TimelineEvent, error) {
	required := []struct {
		field string
		value string
	}{
		{"title", request.Title},
		{"summary", request.Summary},
		{"fullDescription", request.FullDescription},
		{"responsible", request.Responsible},
		{"type", request.Type},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, domain.NewValidationError(r.field, missingFieldsMessage)
		}
	}
	if request.GroupID <= 0 {
		return nil, domain.NewValidationError("groupId", missingFieldsMessage)
	}

	event := domain.TimelineEvent{
		GroupID:         request.GroupID,
		Date:            s.now(),
		Title:           request.Title,
		Summary:         request.Summary,
		FullDescription: request.FullDescription,
		Responsible:     request.Responsible,
		Type:            request.Type,
	}

	created, err := s.timelineRepository.Insert(ctx, event)
	if errors.Is(err, domain.ErrInsertNotReread) {
		logrus.WithError(err).WithField("groupID", request.GroupID).Warn("Evento de timeline gravado, mas não relido")
		return &event, nil
	}
	if err != nil {
		logrus.WithError(err).WithField("groupID", request.GroupID).Error("Erro ao criar evento de timeline")
		return nil, err
	}

	return created, nil
}

func (s *Service) CreateTask(ctx context.Context, request domain.TaskRequest) (*domain.Task, error) {
	if strings.TrimSpace(request.Date) == "" {
		return nil, domain.NewValidationError("date", missingFieldsMessage)
	}
	if request.GroupID <= 0 {
		return nil, domain.NewValidationError("groupId", missingFieldsMessage)
	}
	if strings.TrimSpace(request.Title) == "" {
		return nil, domain.NewValidationError("title", missingFieldsMessage)
	}

	date, err := utils.ParseDate(strings.TrimSpace(request.Date))
	if err != nil {
		return nil, domain.NewValidationError("date", "date must use the YYYY-MM-DD format.")
	}

	task := domain.Task{
		GroupID:     request.GroupID,
		Date:        *date,
		Title:       request.Title,
		Priority:    request.Priority,
		Type:        request.Type,
		Responsible: request.Responsible,
		Status:      domain.TaskStatusPending,
	}

	created, err := s.taskRepository.Insert(ctx, task)
	if errors.Is(err, domain.ErrInsertNotReread) {
		logrus.WithError(err).WithField("groupID", request.GroupID).Warn("Tarefa gravada, mas não relida")
		return &task, nil
	}
	if err != nil {
		logrus.WithError(err).WithField("groupID", request.GroupID).Error("Erro ao criar tarefa")
		return nil, err
	}

	return created, nil
}
