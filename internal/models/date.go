package models

import (
	"strings"
	"time"
)

// DayLayout is the day-month-year format campaign dates are submitted in.
const DayLayout = "02-01-2006"

// ParseDay parses a DD-MM-YYYY string into UTC midnight of that day.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, strings.TrimSpace(s), time.UTC)
}
