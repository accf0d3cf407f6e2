package domain

import (
	"fmt"
	"strings"
)

// ParseFrequency accepts the wire/flag spelling of a frequency. An empty
// string means daily.
func ParseFrequency(value string) (Frequency, error) {
	switch strings.ToLower(value) {
	case "", "daily", "d":
		return FrequencyDaily, nil
	case "weekly", "w":
		return FrequencyWeekly, nil
	case "monthly", "m":
		return FrequencyMonthly, nil
	default:
		return "", fmt.Errorf("unknown frequency %q", value)
	}
}

// ParseChartType accepts the wire/flag spelling of a chart type. An empty
// string means line.
func ParseChartType(value string) (ChartType, error) {
	switch strings.ToLower(value) {
	case "", "line":
		return ChartLine, nil
	case "area":
		return ChartArea, nil
	default:
		return "", fmt.Errorf("unknown chart type %q", value)
	}
}
