// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "github.com/shopspring/decimal"

type WatchlistStatus string

const (
	WatchlistStatusOK        WatchlistStatus = "ok"
	WatchlistStatusAttention WatchlistStatus = "attention"
	WatchlistStatusProblem   WatchlistStatus = "problem"
	WatchlistStatusCritical  WatchlistStatus = "critical"
)

// WatchlistStatuses são os status que colocam um grupo em acompanhamento
var WatchlistStatuses = []WatchlistStatus{
	WatchlistStatusAttention,
	WatchlistStatusProblem,
	WatchlistStatusCritical,
}

func (s WatchlistStatus) IsValid() bool {
	switch s {
	case WatchlistStatusOK, WatchlistStatusAttention, WatchlistStatusProblem, WatchlistStatusCritical:
		return true
	}
	return false
}

type EconomicGroup struct {
	ID              int64           `json:"id" mapstructure:"id"`
	Name            string          `json:"name" mapstructure:"name"`
	Description     *string         `json:"description" mapstructure:"description"`
	CurrentVolume   decimal.Decimal `json:"currentVolume" mapstructure:"current_volume"`
	WatchlistStatus WatchlistStatus `json:"watchlistStatus" mapstructure:"watchlist_status"`
}

// GroupDetail é a visão composta de um grupo econômico
type GroupDetail struct {
	Group      EconomicGroup       `json:"group"`
	Operations []Operation         `json:"operations"`
	Timeline   []TimelineEvent     `json:"timeline"`
	Properties []PropertyGuarantee `json:"properties"`
	Review     ReviewStatus        `json:"review"`
}
