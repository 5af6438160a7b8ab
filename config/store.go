package config

import (
	"math/rand"
	"sync"
	"time"

	"cleanify-be/models"
)

// Store is the single in-process object graph shared by every request handler
// and the background simulator. One mutex guards all of it: any operation that
// reads more than one entity, or reads then writes, must run inside With so
// the simulator cannot interleave. Collections are mutated only while the
// guard is held; callers copy data out for display and re-enter the guard for
// writes.
type Store struct {
	mu sync.Mutex

	// Now and Rand are injectable for tests. Rand returns a uniform value
	// in [0, n).
	Now  func() time.Time
	Rand func(n int) int

	Users       []models.User
	Bins        []models.Bin
	Alerts      []models.Alert
	Complaints  []models.Complaint
	Tasks       []models.Task
	Rewards     map[int]*models.Reward
	Assignments []models.Assignment
	Collections []models.CollectionStat

	nextUserID      int
	nextAlertID     int
	nextComplaintID int
	nextTaskID      int
}

var (
	store *Store
	once  sync.Once
)

// GetStore returns the process-wide store, seeding it on first call.
// Re-requesting the instance returns the same object without re-seeding.
func GetStore() *Store {
	once.Do(func() {
		store = NewStore(time.Now, rand.Intn)
	})
	return store
}

// NewStore builds an independent seeded store with the given clock and random
// source. Tests use this to get deterministic instances.
func NewStore(now func() time.Time, randInt func(n int) int) *Store {
	s := &Store{
		Now:     now,
		Rand:    randInt,
		Rewards: make(map[int]*models.Reward),
	}
	s.seed()
	return s
}

// With runs fn with exclusive access to the store. The guard is released on
// every exit path; fn's error propagates unchanged.
func (s *Store) With(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// The helpers below must be called with the guard held, i.e. from inside With
// or during seeding. They are leaves: none of them re-acquires the guard.

// FindUserByEmail returns the user with the given email, or nil. Matching is
// case-sensitive.
func (s *Store) FindUserByEmail(email string) *models.User {
	for i := range s.Users {
		if s.Users[i].Email == email {
			return &s.Users[i]
		}
	}
	return nil
}

// FindUserByID returns the user with the given id, or nil.
func (s *Store) FindUserByID(id int) *models.User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// FindBin returns the bin with the given id, or nil.
func (s *Store) FindBin(id int) *models.Bin {
	for i := range s.Bins {
		if s.Bins[i].ID == id {
			return &s.Bins[i]
		}
	}
	return nil
}

// FindAlert returns the alert with the given id, or nil.
func (s *Store) FindAlert(id int) *models.Alert {
	for i := range s.Alerts {
		if s.Alerts[i].ID == id {
			return &s.Alerts[i]
		}
	}
	return nil
}

// FindComplaint returns the complaint with the given id, or nil.
func (s *Store) FindComplaint(id int) *models.Complaint {
	for i := range s.Complaints {
		if s.Complaints[i].ID == id {
			return &s.Complaints[i]
		}
	}
	return nil
}

// FindTask returns the task with the given id, or nil.
func (s *Store) FindTask(id int) *models.Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}

// AddUser assigns the next user id and appends the user.
func (s *Store) AddUser(u models.User) models.User {
	s.nextUserID++
	u.ID = s.nextUserID
	s.Users = append(s.Users, u)
	return u
}

// AddComplaint assigns the next complaint id and appends the complaint.
func (s *Store) AddComplaint(c models.Complaint) models.Complaint {
	s.nextComplaintID++
	c.ID = s.nextComplaintID
	s.Complaints = append(s.Complaints, c)
	return c
}

// AddTask assigns the next task id and appends the task.
func (s *Store) AddTask(t models.Task) models.Task {
	s.nextTaskID++
	t.ID = s.nextTaskID
	s.Tasks = append(s.Tasks, t)
	return t
}

// EnsureAlert creates an alert for the bin when its fill level is at or above
// the alert threshold and no active alert for that bin exists yet. All fill
// level changes must go through this rule; the one-active-alert-per-bin
// invariant lives in the existence check.
func (s *Store) EnsureAlert(b *models.Bin) *models.Alert {
	if b.FillLevel < 80 {
		return nil
	}
	for i := range s.Alerts {
		if s.Alerts[i].BinID == b.ID && s.Alerts[i].Status == models.AlertActive {
			return nil
		}
	}
	s.nextAlertID++
	s.Alerts = append(s.Alerts, models.Alert{
		ID:        s.nextAlertID,
		BinID:     b.ID,
		Location:  b.Location,
		Area:      b.Area,
		FillLevel: b.FillLevel,
		Type:      models.AlertTypeForFill(b.FillLevel),
		Status:    models.AlertActive,
		CreatedAt: s.Now(),
	})
	return &s.Alerts[len(s.Alerts)-1]
}

// CollectBin empties the bin, refreshes its collection timestamp, and
// resolves every active alert for it. Returns nil when the bin is unknown.
func (s *Store) CollectBin(id int) *models.Bin {
	b := s.FindBin(id)
	if b == nil {
		return nil
	}
	b.SetFill(0)
	b.LastCollected = s.Now()
	for i := range s.Alerts {
		if s.Alerts[i].BinID == id && s.Alerts[i].Status == models.AlertActive {
			s.Alerts[i].Status = models.AlertResolved
		}
	}
	return b
}

// Award adds points to the user's ledger, creating it on first use, and
// recomputes the level from the new total. History entries are inserted at
// the front and never pruned.
func (s *Store) Award(userID int, action string, points int) {
	r, ok := s.Rewards[userID]
	if !ok {
		r = &models.Reward{Level: models.LevelBronze}
		s.Rewards[userID] = r
	}
	r.Points += points
	r.Level = models.LevelForPoints(r.Points)
	r.History = append([]models.RewardEntry{{
		Action: action,
		Points: points,
		Date:   s.Now(),
	}}, r.History...)
}

// ResolveComplaint moves the complaint to resolved and pays the resolution
// bonus to its owner. Only the transition into resolved awards; resolving an
// already-resolved complaint changes nothing.
func (s *Store) ResolveComplaint(c *models.Complaint) {
	if c.Status == models.ComplaintResolved {
		return
	}
	c.Status = models.ComplaintResolved
	s.Award(c.UserID, "Complaint resolved", models.PointsComplaintResolved)
}
