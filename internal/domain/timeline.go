package domain

import "time"

const TimelineTypeWatchlist = "watchlist"

// TimelineEvent é um registro do histórico (append-only) de um grupo
type TimelineEvent struct {
	ID              int64     `json:"id" mapstructure:"id"`
	GroupID         int64     `json:"groupId" mapstructure:"group_id"`
	Date            time.Time `json:"date" mapstructure:"date"`
	Title           string    `json:"title" mapstructure:"title"`
	Summary         string    `json:"summary" mapstructure:"summary"`
	FullDescription string    `json:"fullDescription" mapstructure:"full_description"`
	Responsible     string    `json:"responsible" mapstructure:"responsible"`
	Type            string    `json:"type" mapstructure:"type"`
}

type TimelineEventRequest struct {
	GroupID         int64  `json:"-"`
	Title           string `json:"title"`
	Summary         string `json:"summary"`
	FullDescription string `json:"fullDescription"`
	Responsible     string `json:"responsible"`
	Type            string `json:"type"`
}

type WatchlistEventRequest struct {
	GroupID         int64           `json:"-"`
	Title           string          `json:"title"`
	FullDescription string          `json:"fullDescription"`
	Responsible     string          `json:"responsible"`
	NewStatus       WatchlistStatus `json:"newStatus"`
}
