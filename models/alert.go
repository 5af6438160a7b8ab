package models

import "time"

// AlertType enum
type AlertType string

const (
	AlertHighFill AlertType = "high_fill"
	AlertOverflow AlertType = "overflow"
)

// AlertStatus enum
type AlertStatus string

const (
	AlertActive   AlertStatus = "active"
	AlertResolved AlertStatus = "resolved"
)

// Alert is a derived notification that a bin crossed the high-fill threshold.
// At most one active alert exists per bin; a resolved alert never reactivates,
// a fresh one is created if the bin refills.
type Alert struct {
	ID        int         `json:"id"`
	BinID     int         `json:"binId"`
	Location  string      `json:"location"`
	Area      string      `json:"area"`
	FillLevel int         `json:"fillLevel"`
	Type      AlertType   `json:"type"`
	Status    AlertStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// AlertTypeForFill picks the alert type for a fill level at or above the
// alert threshold.
func AlertTypeForFill(fillLevel int) AlertType {
	if fillLevel >= 90 {
		return AlertOverflow
	}
	return AlertHighFill
}
