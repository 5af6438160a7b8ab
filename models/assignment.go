package models

import "time"

// Assignment is a standing route assignment of bins to a worker, shown on the
// admin dashboard.
type Assignment struct {
	WorkerID   int       `json:"workerId"`
	WorkerName string    `json:"workerName"`
	BinIDs     []int     `json:"binIds"`
	Status     string    `json:"status"`
	AssignedAt time.Time `json:"assignedAt"`
}

// CollectionStat is one day of the weekly collection history chart.
type CollectionStat struct {
	Day         string `json:"day"`
	Collections int    `json:"collections"`
}
