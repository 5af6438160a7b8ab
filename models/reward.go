package models

import "time"

// RewardLevel enum
type RewardLevel string

const (
	LevelBronze   RewardLevel = "Bronze"
	LevelSilver   RewardLevel = "Silver"
	LevelGold     RewardLevel = "Gold"
	LevelPlatinum RewardLevel = "Platinum"
)

// Points awarded per action.
const (
	PointsComplaintSubmitted = 50
	PointsMediaAttached      = 20
	PointsLocationShared     = 10
	PointsComplaintResolved  = 50
)

// RewardEntry is one line of a citizen's reward history.
type RewardEntry struct {
	Action string    `json:"action"`
	Points int       `json:"points"`
	Date   time.Time `json:"date"`
}

// Reward is a citizen's ledger: cumulative points, the level derived from
// them, and a newest-first history with unbounded growth.
type Reward struct {
	Points  int           `json:"points"`
	Level   RewardLevel   `json:"level"`
	History []RewardEntry `json:"history"`
}

// LevelForPoints derives the reward tier from a cumulative total. Thresholds
// are checked in descending order, first match wins.
func LevelForPoints(points int) RewardLevel {
	switch {
	case points >= 500:
		return LevelPlatinum
	case points >= 300:
		return LevelGold
	case points >= 100:
		return LevelSilver
	default:
		return LevelBronze
	}
}
