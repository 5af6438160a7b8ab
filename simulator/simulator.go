// Package simulator perturbs bin fill levels on a fixed schedule, standing in
// for real IoT sensor updates.
package simulator

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"cleanify-be/config"
)

// maxIncrease is the largest fill-level bump a single tick can apply to a
// bin; each bin draws uniformly from [0, maxIncrease].
const maxIncrease = 8

// Tick advances every bin under one guarded section: draw a random increase,
// cap at 100, recompute the status and run the alert generator.
func Tick(s *config.Store) {
	_ = s.With(func() error {
		for i := range s.Bins {
			b := &s.Bins[i]
			increase := s.Rand(maxIncrease + 1)
			fill := b.FillLevel + increase
			if fill > 100 {
				fill = 100
			}
			b.SetFill(fill)
			s.EnsureAlert(b)
		}
		return nil
	})
}

// Start runs Tick on the given interval until the returned cron is stopped.
// A panicking tick is logged and the schedule continues; missed ticks are not
// retried. The @every parser floors sub-second intervals at one second, so the
// effective minimum interval is 1s.
func Start(s *config.Store, interval time.Duration) (*cron.Cron, error) {
	if interval < time.Second {
		interval = time.Second
	}
	c := cron.New(cron.WithChain(
		cron.Recover(cron.DefaultLogger),
	))
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		Tick(s)
	}); err != nil {
		return nil, err
	}
	c.Start()
	log.Printf("Simulator running every %s", interval)
	return c, nil
}
