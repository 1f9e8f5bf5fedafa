package aggregating

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/duarte550/crmCRIback/internal/domain"
)

// Ícones (path SVG) exibidos pelo frontend para cada origem da agenda
var eventIcons = map[domain.EventSource]string{
	domain.EventSourceReview: "M20 6h-8l-2-2H4c-1.1 0-1.99.9-1.99 2L2 18c0 1.1.9 2 2 2h16c1.1 0 2-.9 2-2V8c0-1.1-.9-2-2-2zm-5 3c1.1 0 2 .9 2 2s-.9 2-2 2-2-.9-2-2 .9-2 2-2zm4 8H7l2.5-3.5 2 2.5 1.5-2z",
	domain.EventSourceVisit:  "M12 2C8.13 2 5 5.13 5 9c0 5.25 7 13 7 13s7-7.75 7-13c0-3.87-3.13-7-7-7zm0 9.5c-1.38 0-2.5-1.12-2.5-2.5s1.12-2.5 2.5-2.5 2.5 1.12 2.5 2.5-1.12 2.5-2.5 2.5z",
	domain.EventSourceRule:   "M19.43 12.98c.04-.32.07-.64.07-.98s-.03-.66-.07-.98l2.11-1.65c.19-.15.24-.42.12-.64l-2-3.46c-.12-.22-.39-.3-.61-.22l-2.49 1c-.52-.4-1.08-.73-1.69-.98l-.38-2.65C14.46 2.18 14.25 2 14 2h-4c-.25 0-.46.18-.49.42l-.38 2.65c-.61.25-1.17.59-1.69.98l-2.49-1c-.23-.09-.49 0-.61.22l-2 3.46c-.13.22-.07.49.12.64l2.11 1.65c-.04.32-.07.65-.07.98s.03.66.07.98l-2.11 1.65c-.19.15-.24.42-.12.64l2 3.46c.12.22.39.3.61.22l2.49 1c.52.4 1.08.73 1.69.98l.38 2.65c.03.24.24.42.49.42h4c.25 0 .46-.18.49-.42l.38-2.65c.61-.25 1.17-.59 1.69-.98l2.49 1c.23.09.49 0 .61-.22l2-3.46c.12-.22.07-.49-.12-.64l-2.11-1.65zM12 15.5c-1.93 0-3.5-1.57-3.5-3.5s1.57-3.5 3.5-3.5 3.5 1.57 3.5 3.5-1.57 3.5-3.5 3.5z",
	domain.EventSourceTask:   "M3 13h2v-2H3v2zm0 4h2v-2H3v2zm0-8h2V7H3v2zm4 4h14v-2H7v2zm0 4h14v-2H7v2zm0-8h14V7H7v2z",
}

const systemGroupName = "Sistema"

// collectEvents busca as quatro origens em paralelo, filtra cada uma a partir
// de today, une e ordena por data. Nenhuma origem é limitada antes da união.
func (s *Service) collectEvents(ctx context.Context, today time.Time) ([]domain.Event, error) {
	var reviews, visits, rules, tasks []domain.EventRow

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		reviews, err = s.eventSourceRepository.UpcomingReviews(gctx, today)
		return err
	})
	g.Go(func() (err error) {
		visits, err = s.eventSourceRepository.UpcomingVisits(gctx, today)
		return err
	})
	g.Go(func() (err error) {
		rules, err = s.eventSourceRepository.UpcomingRules(gctx, today)
		return err
	})
	g.Go(func() (err error) {
		tasks, err = s.eventSourceRepository.PendingTasks(gctx, today)
		return err
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Error("Erro ao buscar eventos da agenda")
		return nil, err
	}

	events := make([]domain.Event, 0, len(reviews)+len(visits)+len(rules)+len(tasks))
	events = appendUpcoming(events, today, domain.EventSourceReview, reviews)
	events = appendUpcoming(events, today, domain.EventSourceVisit, visits)
	events = appendUpcoming(events, today, domain.EventSourceRule, rules)
	events = appendUpcoming(events, today, domain.EventSourceTask, tasks)

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})

	return events, nil
}

func appendUpcoming(events []domain.Event, today time.Time, source domain.EventSource, rows []domain.EventRow) []domain.Event {
	for _, row := range rows {
		if isBeforeDay(row.Date, today) {
			continue
		}
		events = append(events, toEvent(source, row))
	}
	return events
}

func toEvent(source domain.EventSource, row domain.EventRow) domain.Event {
	event := domain.Event{
		Date:    row.Date,
		GroupID: row.GroupID,
		Icon:    eventIcons[source],
	}

	groupName := ""
	if row.GroupName != nil {
		groupName = *row.GroupName
	}

	switch source {
	case domain.EventSourceReview:
		event.ID = fmt.Sprintf("rev-%d", row.ID)
		event.Title = "Próxima Revisão - " + groupName
		event.GroupName = groupName
		event.Type = "Revisão"
	case domain.EventSourceVisit:
		event.ID = fmt.Sprintf("vis-%d", row.ID)
		event.Title = "Próxima Visita - " + groupName
		event.GroupName = groupName
		event.Type = "Visita"
	case domain.EventSourceRule:
		event.ID = fmt.Sprintf("rul-%d", row.ID)
		event.Title = row.Title
		event.GroupName = systemGroupName
		event.GroupID = nil
		event.Type = "Regra"
	case domain.EventSourceTask:
		event.ID = fmt.Sprintf("task-%d", row.ID)
		event.Title = row.Title
		event.GroupName = groupName
		event.Type = "Tarefa"
	}

	return event
}

// isBeforeDay compara apenas a data do calendário de t com today
func isBeforeDay(t, today time.Time) bool {
	y1, m1, d1 := t.Date()
	y2, m2, d2 := today.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}
