package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate aceita datas simples (YYYY-MM-DD) ou timestamps RFC3339 enviados pelo frontend
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr == "" {
		return &date, nil
	}

	for _, layout := range []string{DateLayout, time.RFC3339Nano} {
		if parsed, err := time.Parse(layout, dateStr); err == nil {
			date = parsed
			return &date, nil
		}
	}

	return nil, fmt.Errorf("data inválida: %q", dateStr)
}
