package domain

import "time"

type EventSource string

const (
	EventSourceReview EventSource = "review"
	EventSourceVisit  EventSource = "visit"
	EventSourceRule   EventSource = "rule"
	EventSourceTask   EventSource = "task"
)

// Event é um item da agenda unificada (revisões, visitas, regras e tarefas)
type Event struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Title     string    `json:"title"`
	GroupName string    `json:"groupName"`
	GroupID   *int64    `json:"groupId"`
	Type      string    `json:"type"`
	Icon      string    `json:"icon"`
}

// EventRow é a projeção comum das quatro fontes antes da montagem do Event
type EventRow struct {
	ID        int64     `mapstructure:"id"`
	Date      time.Time `mapstructure:"date"`
	Title     string    `mapstructure:"title"`
	GroupName *string   `mapstructure:"group_name"`
	GroupID   *int64    `mapstructure:"group_id"`
}
