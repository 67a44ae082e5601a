package usecase

import "time"

// Sweeper drops per-user state that has not been touched since olderThan and
// reports how many entries it dropped.
type Sweeper interface {
	Sweep(olderThan time.Time) int
}
