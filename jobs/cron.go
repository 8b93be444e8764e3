package jobs

import (
	"log"
	"time"

	"jatomogu/utils"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// ReservationExpirer cancels PENDING bookings whose validity window has
// lapsed. Implemented by the booking service.
type ReservationExpirer interface {
	ExpireOverdue(now time.Time) (int64, error)
}

var reservationExpirer ReservationExpirer

// SetReservationExpirer wires the implementation used by the sweep
func SetReservationExpirer(expirer ReservationExpirer) {
	reservationExpirer = expirer
}

// InitCronJobs registers and starts the scheduled jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Expiry sweep every 10 minutes. expiresAt stays advisory for reads
	// made between sweeps.
	_, err := c.AddFunc("*/10 * * * *", func() {
		if reservationExpirer == nil {
			utils.LogError("reservation expirer not configured, skipping sweep")
			return
		}
		expired, err := reservationExpirer.ExpireOverdue(time.Now())
		if err != nil {
			utils.LogError("reservation expiry sweep failed: %v", err)
			return
		}
		if expired > 0 {
			utils.LogInfo("reservation expiry sweep released %d bookings", expired)
		}
		if expired > 0 && m != nil {
			_ = m.Broadcast([]byte("expired pending reservations released"))
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
