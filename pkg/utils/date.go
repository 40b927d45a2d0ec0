package utils

import (
	"strings"
	"time"
)

// ParseDate lê datas no formato YYYY-MM-DD
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(time.DateOnly, strings.TrimSpace(dateStr))
}
