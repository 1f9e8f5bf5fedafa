package database

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duarte550/crmCRIback/internal/domain"
)

func TestDecode_OperationRowsWithNullTitulos(t *testing.T) {
	due := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)
	records := []Record{
		{
			"id":          int64(10),
			"group_id":    int64(1),
			"description": "CRI Residencial",
			"volume":      "12500000.00",
			"due_date":    due,
			"titulo_id":   nil,
			"taxa":        nil,
		},
		{
			"id":            int64(11),
			"group_id":      int64(1),
			"volume":        float64(300),
			"titulo_id":     int64(5),
			"codigo_cetip":  "22E1234567",
			"taxa":          "7.25",
			"titulo_rating": "AA",
			"vencimento":    "2030-05-15",
		},
	}

	var rows []domain.OperationRow
	require.NoError(t, Decode(records, &rows))
	require.Len(t, rows, 2)

	assert.Equal(t, int64(10), rows[0].ID)
	assert.True(t, rows[0].Volume.Valid)
	assert.True(t, decimal.RequireFromString("12500000").Equal(rows[0].Volume.Decimal))
	require.NotNil(t, rows[0].DueDate)
	assert.True(t, due.Equal(*rows[0].DueDate))
	assert.Nil(t, rows[0].TituloID)
	assert.False(t, rows[0].TituloTaxa.Valid)

	require.NotNil(t, rows[1].TituloID)
	assert.Equal(t, int64(5), *rows[1].TituloID)
	assert.True(t, decimal.NewFromFloat(7.25).Equal(rows[1].TituloTaxa.Decimal))
	require.NotNil(t, rows[1].TituloVencimento)
	assert.Equal(t, "2030-05-15", rows[1].TituloVencimento.Format("2006-01-02"))
	assert.True(t, decimal.NewFromInt(300).Equal(rows[1].Volume.Decimal))
}

func TestDecode_NullSumStaysInvalid(t *testing.T) {
	var totals domain.DashboardTotals
	require.NoError(t, Decode(Record{
		"total_operations": int64(42),
		"overdue_tasks":    int64(3),
		"healthy_volume":   nil,
		"watchlist_volume": "2500000.00",
	}, &totals))

	assert.Equal(t, int64(42), totals.TotalOperations)
	assert.Equal(t, int64(3), totals.OverdueTasks)
	assert.False(t, totals.HealthyVolume.Valid)
	assert.True(t, totals.WatchlistVolume.Valid)
	assert.True(t, decimal.NewFromInt(2500000).Equal(totals.WatchlistVolume.Decimal))
}

func TestDecode_InvalidDate(t *testing.T) {
	var event domain.TimelineEvent
	err := Decode(Record{"id": int64(1), "date": "ontem"}, &event)
	assert.Error(t, err)
}
