package scheduler

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duarte550/crmCRIback/internal/config"
	"github.com/duarte550/crmCRIback/internal/domain"
	"github.com/duarte550/crmCRIback/pkg/metrics"
)

type fakeSummaryProvider struct {
	summary *domain.WatchlistSummary
	err     error
	calls   int
}

func (f *fakeSummaryProvider) Summary(context.Context) (*domain.WatchlistSummary, error) {
	f.calls++
	return f.summary, f.err
}

func newGaugeService(provider SummaryProvider, enabled bool) *WatchlistGaugeService {
	return NewWatchlistGaugeService(provider, &config.Config{
		WatchlistGauge: config.WatchlistGauge{CronSchedule: "*/10 * * * *", Enabled: enabled},
	})
}

func TestWatchlistGaugeService_Refresh(t *testing.T) {
	provider := &fakeSummaryProvider{summary: &domain.WatchlistSummary{OK: 7, Attention: 4, Critical: 2}}
	service := newGaugeService(provider, true)

	service.Refresh(context.Background())

	expected := `
# HELP crm_cri_watchlist_groups Quantidade de grupos econômicos por status de watchlist.
# TYPE crm_cri_watchlist_groups gauge
crm_cri_watchlist_groups{status="attention"} 4
crm_cri_watchlist_groups{status="critical"} 2
crm_cri_watchlist_groups{status="ok"} 7
`
	require.NoError(t, testutil.GatherAndCompare(metrics.Registry, strings.NewReader(expected), "crm_cri_watchlist_groups"))

	refreshedAt, failed := service.Status()
	assert.False(t, failed)
	assert.False(t, refreshedAt.IsZero())
}

func TestWatchlistGaugeService_RefreshFailure(t *testing.T) {
	provider := &fakeSummaryProvider{err: &domain.ConnectionError{Err: errors.New("connection refused")}}
	service := newGaugeService(provider, true)

	service.Refresh(context.Background())

	refreshedAt, failed := service.Status()
	assert.True(t, failed)
	assert.True(t, refreshedAt.IsZero())
	assert.Equal(t, 1, provider.calls)
}

func TestWatchlistGaugeService_StartDisabled(t *testing.T) {
	provider := &fakeSummaryProvider{}
	service := newGaugeService(provider, false)

	require.NoError(t, service.Start(context.Background()))
	assert.Equal(t, 0, provider.calls)
}

func TestWatchlistGaugeService_StartInvalidCron(t *testing.T) {
	service := NewWatchlistGaugeService(&fakeSummaryProvider{}, &config.Config{
		WatchlistGauge: config.WatchlistGauge{CronSchedule: "not a cron", Enabled: true},
	})

	assert.Error(t, service.Start(context.Background()))
}
