package models

import "time"

// BinStatus enum
type BinStatus string

const (
	BinEmpty    BinStatus = "empty"
	BinHalf     BinStatus = "half"
	BinFull     BinStatus = "full"
	BinOverflow BinStatus = "overflow"
)

// Bin is a sensor-equipped waste receptacle. Status is always derived from
// FillLevel via StatusForFill; no code path sets one without the other.
type Bin struct {
	ID            int       `json:"id"`
	Location      string    `json:"location"`
	Area          string    `json:"area"`
	FillLevel     int       `json:"fillLevel"`
	Status        BinStatus `json:"status"`
	LastCollected time.Time `json:"lastCollected"`
	SensorBattery int       `json:"sensorBattery"`
}

// StatusForFill maps a fill percentage to its bin status. Boundaries are
// inclusive on the lower end and the mapping is total.
func StatusForFill(fillLevel int) BinStatus {
	switch {
	case fillLevel >= 90:
		return BinOverflow
	case fillLevel >= 75:
		return BinFull
	case fillLevel >= 40:
		return BinHalf
	default:
		return BinEmpty
	}
}

// SetFill updates the fill level and recomputes the derived status.
func (b *Bin) SetFill(fillLevel int) {
	b.FillLevel = fillLevel
	b.Status = StatusForFill(fillLevel)
}
