package domain

import "github.com/shopspring/decimal"

type WatchlistGroup struct {
	ID              int64           `json:"id" mapstructure:"id"`
	Name            string          `json:"name" mapstructure:"name"`
	WatchlistStatus WatchlistStatus `json:"watchlistStatus" mapstructure:"watchlist_status"`
	CurrentVolume   decimal.Decimal `json:"currentVolume" mapstructure:"current_volume"`
	LastObservation string          `json:"lastObservation" mapstructure:"-"`
}

// WatchlistSummary agrupa "attention" e "problem" sob attention
type WatchlistSummary struct {
	OK        int64 `json:"ok" mapstructure:"ok"`
	Attention int64 `json:"attention" mapstructure:"attention"`
	Critical  int64 `json:"critical" mapstructure:"critical"`
}
