package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "data simples", input: "2026-11-01", want: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)},
		{name: "timestamp rfc3339", input: "2026-11-01T12:30:00Z", want: time.Date(2026, 11, 1, 12, 30, 0, 0, time.UTC)},
		{name: "vazia", input: "", want: time.Time{}},
		{name: "formato brasileiro não é aceito", input: "01/11/2026", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(*got))
		})
	}
}
