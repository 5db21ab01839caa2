package conversation

import "time"

// Scheduler runs delayed callbacks. Implementations must invoke f on the same
// goroutine that drives the Session; the app controller posts them onto its
// event loop.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

// task is one delayed step of a reply sequence.
type task struct {
	stop     func() bool
	canceled bool
}

func (t *task) cancel() {
	t.canceled = true
	if t.stop != nil {
		t.stop()
	}
}
