package registering

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/duarte550/crmCRIback/infrastructure/repository/mocks"
	"github.com/duarte550/crmCRIback/internal/domain"
)

var fixedNow = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (Registrar, *mocks.MockTimelineRepository, *mocks.MockTaskRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	timelineRepo := mocks.NewMockTimelineRepository(ctrl)
	taskRepo := mocks.NewMockTaskRepository(ctrl)

	return NewService(timelineRepo, taskRepo, WithClock(func() time.Time { return fixedNow })), timelineRepo, taskRepo
}

func validTimelineRequest() domain.TimelineEventRequest {
	return domain.TimelineEventRequest{
		GroupID:         1,
		Title:           "Reunião trimestral",
		Summary:         "Apresentação de resultados",
		FullDescription: "Reunião com a diretoria financeira.",
		Responsible:     "Ana",
		Type:            "meeting",
	}
}

func TestService_CreateTimelineEventRequiresEveryField(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*domain.TimelineEventRequest)
		wantField string
	}{
		{name: "title", mutate: func(r *domain.TimelineEventRequest) { r.Title = "" }, wantField: "title"},
		{name: "summary", mutate: func(r *domain.TimelineEventRequest) { r.Summary = " " }, wantField: "summary"},
		{name: "fullDescription", mutate: func(r *domain.TimelineEventRequest) { r.FullDescription = "" }, wantField: "fullDescription"},
		{name: "responsible", mutate: func(r *domain.TimelineEventRequest) { r.Responsible = "" }, wantField: "responsible"},
		{name: "type", mutate: func(r *domain.TimelineEventRequest) { r.Type = "" }, wantField: "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Sem expectativas no repositório: a validação falha antes de qualquer insert
			service, _, _ := newTestService(t)

			request := validTimelineRequest()
			tt.mutate(&request)

			event, err := service.CreateTimelineEvent(context.Background(), request)

			assert.Nil(t, event)
			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestService_CreateTimelineEvent(t *testing.T) {
	service, timelineRepo, _ := newTestService(t)

	timelineRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, event domain.TimelineEvent) (*domain.TimelineEvent, error) {
			assert.Equal(t, fixedNow, event.Date)
			assert.Equal(t, int64(1), event.GroupID)
			assert.Equal(t, "meeting", event.Type)
			event.ID = 15
			return &event, nil
		},
	)

	created, err := service.CreateTimelineEvent(context.Background(), validTimelineRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(15), created.ID)
}

func TestService_CreateTaskValidation(t *testing.T) {
	tests := []struct {
		name      string
		request   domain.TaskRequest
		wantField string
	}{
		{
			name:      "sem data",
			request:   domain.TaskRequest{GroupID: 1, Title: "Cobrar covenants"},
			wantField: "date",
		},
		{
			name:      "sem grupo",
			request:   domain.TaskRequest{Date: "2026-11-01", Title: "Cobrar covenants"},
			wantField: "groupId",
		},
		{
			name:      "sem título",
			request:   domain.TaskRequest{Date: "2026-11-01", GroupID: 1},
			wantField: "title",
		},
		{
			name:      "data inválida",
			request:   domain.TaskRequest{Date: "amanhã", GroupID: 1, Title: "Cobrar covenants"},
			wantField: "date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newTestService(t)

			task, err := service.CreateTask(context.Background(), tt.request)

			assert.Nil(t, task)
			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestService_CreateTaskDefaultsToPending(t *testing.T) {
	service, _, taskRepo := newTestService(t)

	priority := "Alta"
	taskRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, task domain.Task) (*domain.Task, error) {
			assert.Equal(t, domain.TaskStatusPending, task.Status)
			assert.True(t, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC).Equal(task.Date))
			require.NotNil(t, task.Priority)
			assert.Equal(t, "Alta", *task.Priority)
			task.ID = 4
			return &task, nil
		},
	)

	created, err := service.CreateTask(context.Background(), domain.TaskRequest{
		Date:     "2026-11-01",
		GroupID:  1,
		Title:    "Cobrar covenants",
		Priority: &priority,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), created.ID)
}

func TestService_CreateRecordsSurviveFailedReread(t *testing.T) {
	service, timelineRepo, taskRepo := newTestService(t)

	timelineRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewRereadError("timeline.reler_inserido", domain.ErrNoRowReturned))
	taskRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewRereadError("tarefas.reler_inserida", errors.New("warehouse timeout")))

	event, err := service.CreateTimelineEvent(context.Background(), validTimelineRequest())
	require.NoError(t, err)
	assert.Equal(t, "Reunião trimestral", event.Title)
	assert.Equal(t, fixedNow, event.Date)

	task, err := service.CreateTask(context.Background(), domain.TaskRequest{
		Date:    "2026-11-01",
		GroupID: 1,
		Title:   "Cobrar covenants",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cobrar covenants", task.Title)
	assert.Equal(t, domain.TaskStatusPending, task.Status)
}

func TestService_CreateTimelineEventPropagatesInsertFailure(t *testing.T) {
	service, timelineRepo, _ := newTestService(t)

	insertErr := &domain.QueryError{Op: "timeline.inserir", Err: errors.New("table locked")}
	timelineRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil, insertErr)

	event, err := service.CreateTimelineEvent(context.Background(), validTimelineRequest())

	assert.Nil(t, event)
	assert.ErrorIs(t, err, insertErr)
}
