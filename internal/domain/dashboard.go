package domain

import "github.com/shopspring/decimal"

type Metric struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

type MetricsView struct {
	Metrics        []Metric `json:"metrics"`
	UpcomingEvents []Event  `json:"upcomingEvents"`
}

// DashboardTotals são os agregados escalares calculados no banco
type DashboardTotals struct {
	TotalOperations int64               `mapstructure:"total_operations"`
	OverdueTasks    int64               `mapstructure:"overdue_tasks"`
	HealthyVolume   decimal.NullDecimal `mapstructure:"healthy_volume"`
	WatchlistVolume decimal.NullDecimal `mapstructure:"watchlist_volume"`
}
