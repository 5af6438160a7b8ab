package config

import (
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"cleanify-be/models"
)

// seedRandSource fixes the generated parts of the seed dataset so every
// restart produces the same initial state.
const seedRandSource = 42

var binLocations = []struct {
	location string
	area     string
}{
	{"Baramati Bus Stand", "Central"},
	{"Bhigwan Road Chowk", "South"},
	{"Nira River Bridge", "East"},
	{"Katewadi Phata", "West"},
	{"Jalochi Road", "North"},
	{"Market Yard Baramati", "Central"},
	{"Shivaji Chowk", "South"},
	{"Phaltan Road", "West"},
	{"Indapur Highway Junction", "East"},
	{"Baramati Krishi Vidyapeeth", "North"},
	{"Malegaon Chowk", "Central"},
	{"Supe Road", "South"},
	{"Morgaon Road", "East"},
	{"Station Road Baramati", "West"},
	{"Karhati Phata", "North"},
}

// seed populates the store with the fixed demo dataset. Called once per store
// instance, before the store is shared, so no guard is needed.
func (s *Store) seed() {
	// Demo users
	demo := []models.User{
		{ID: 1, Name: "Admin User", Email: "admin@cleanify.com", Password: "admin123", Role: models.RoleAdmin},
		{ID: 2, Name: "Ravi Kumar", Email: "worker1@cleanify.com", Password: "worker123", Role: models.RoleWorker},
		{ID: 3, Name: "Priya Sharma", Email: "worker2@cleanify.com", Password: "worker123", Role: models.RoleWorker},
		{ID: 4, Name: "Amit Patel", Email: "citizen@cleanify.com", Password: "citizen123", Role: models.RoleCitizen},
	}
	for _, u := range demo {
		if err := u.HashPassword(); err != nil {
			log.Fatalf("seed: hashing password for %s: %v", u.Email, err)
		}
		s.Users = append(s.Users, u)
	}
	s.nextUserID = len(s.Users)

	// 15 smart bins across Baramati
	rng := rand.New(rand.NewSource(seedRandSource))
	lastCollected := time.Date(2026, 2, 16, 8, 30, 0, 0, time.UTC)
	for i, loc := range binLocations {
		fill := 5 + rng.Intn(91)
		b := models.Bin{
			ID:            i + 1,
			Location:      loc.location,
			Area:          loc.area,
			LastCollected: lastCollected,
			SensorBattery: 40 + rng.Intn(61),
		}
		b.SetFill(fill)
		s.Bins = append(s.Bins, b)
	}

	// Alerts for bins already over the threshold
	for i := range s.Bins {
		s.EnsureAlert(&s.Bins[i])
	}

	// Complaints filed by the demo citizen
	s.Complaints = []models.Complaint{
		{
			ID: 1, UserID: 4, UserName: "Amit Patel", Location: "Supe Road",
			Description: "Garbage overflow since 2 days", Status: models.ComplaintPending,
			CreatedAt: time.Date(2026, 2, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID: 2, UserID: 4, UserName: "Amit Patel", Location: "Market Yard Baramati",
			Description: "Stray dogs tearing garbage bags", Status: models.ComplaintInProgress,
			CreatedAt: time.Date(2026, 2, 14, 14, 20, 0, 0, time.UTC),
		},
		{
			ID: 3, UserID: 4, UserName: "Amit Patel", Location: "Shivaji Chowk",
			Description: "Bin is damaged and leaking", Status: models.ComplaintResolved,
			CreatedAt: time.Date(2026, 2, 13, 9, 15, 0, 0, time.UTC),
		},
	}
	s.nextComplaintID = 3

	// Reward ledger for the demo citizen
	s.Rewards[4] = &models.Reward{
		Points: 150,
		Level:  models.LevelSilver,
		History: []models.RewardEntry{
			{Action: "Complaint submitted", Points: 50, Date: time.Date(2026, 2, 15, 10, 30, 0, 0, time.UTC)},
			{Action: "Complaint submitted", Points: 50, Date: time.Date(2026, 2, 14, 14, 20, 0, 0, time.UTC)},
			{Action: "Complaint resolved", Points: 50, Date: time.Date(2026, 2, 13, 9, 15, 0, 0, time.UTC)},
		},
	}

	// Worker route assignments
	assignedAt := time.Date(2026, 2, 17, 6, 0, 0, 0, time.UTC)
	s.Assignments = []models.Assignment{
		{WorkerID: 2, WorkerName: "Ravi Kumar", BinIDs: []int{1, 5, 10}, Status: "active", AssignedAt: assignedAt},
		{WorkerID: 3, WorkerName: "Priya Sharma", BinIDs: []int{6, 11}, Status: "active", AssignedAt: assignedAt},
	}

	// Tasks assigned by admin to workers
	complaint1, complaint2 := 1, 2
	completedAt := time.Date(2026, 2, 15, 14, 30, 0, 0, time.UTC)
	note := "Area cleaned and new covered bins installed."
	s.Tasks = []models.Task{
		{
			ID: 1, WorkerID: 2, WorkerName: "Ravi Kumar", ComplaintID: &complaint1,
			Title:       "Clear overflow at Supe Road",
			Description: "Garbage overflow reported by citizen. Clear the area and sanitize.",
			Location:    "Supe Road",
			Priority:    models.PriorityHigh, Status: models.TaskInProgress,
			AssignedAt:       time.Date(2026, 2, 16, 8, 0, 0, 0, time.UTC),
			CompletionPhotos: []string{},
		},
		{
			ID: 2, WorkerID: 3, WorkerName: "Priya Sharma", ComplaintID: &complaint2,
			Title:       "Clean Market Yard area",
			Description: "Stray dogs tearing garbage bags. Clean area and install better bins.",
			Location:    "Market Yard Baramati",
			Priority:    models.PriorityMedium, Status: models.TaskCompleted,
			AssignedAt:       time.Date(2026, 2, 15, 7, 0, 0, 0, time.UTC),
			CompletedAt:      &completedAt,
			CompletionPhotos: []string{},
			CompletionNote:   &note,
		},
	}
	s.nextTaskID = 2

	// Weekly collection history for the dashboard
	s.Collections = []models.CollectionStat{
		{Day: "Mon", Collections: 12},
		{Day: "Tue", Collections: 18},
		{Day: "Wed", Collections: 15},
		{Day: "Thu", Collections: 22},
		{Day: "Fri", Collections: 19},
		{Day: "Sat", Collections: 25},
		{Day: "Sun", Collections: 8},
	}
}
