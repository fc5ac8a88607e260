package domain

import (
	"fmt"
	"strings"
)

// MeasureType describes how a food portion is measured.
type MeasureType int

const (
	MeasureCount MeasureType = iota + 1
	MeasureWeight
	MeasureVolume
)

// String returns a human-readable measure type.
func (m MeasureType) String() string {
	switch m {
	case MeasureCount:
		return "count"
	case MeasureWeight:
		return "weight"
	case MeasureVolume:
		return "volume"
	default:
		return "unknown"
	}
}

// ParseMeasure converts "count", "weight" or "volume" to a MeasureType.
// An empty string defaults to MeasureCount.
func ParseMeasure(s string) (MeasureType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "count":
		return MeasureCount, nil
	case "weight":
		return MeasureWeight, nil
	case "volume", "litr":
		return MeasureVolume, nil
	}
	return 0, fmt.Errorf("%w: unknown measure type %q", ErrValidation, s)
}
