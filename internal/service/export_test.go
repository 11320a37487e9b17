package service

import "time"

// UseFastBcrypt lowers the hash cost for the duration of a test.
func UseFastBcrypt() (restore func()) {
	prev := bcryptCost
	bcryptCost = 4
	return func() { bcryptCost = prev }
}

// PollInterval exposes the effective poll interval.
func (d *NotificationDispatcher) PollInterval() time.Duration { return d.cfg.PollInterval }
