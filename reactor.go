package future

import "time"

// A Reactor is a completion source: Schedule arranges for a [Waker] to
// be invoked when an external condition is met.
//
// The interface exists so that richer completion sources, such as an
// event-driven reactor multiplexing many interest registrations on one
// goroutine, can replace [TimerReactor] behind the same contract.
type Reactor interface {
	// Schedule arranges for w.Wake to be called exactly once after d
	// has elapsed. Schedule must not block.
	Schedule(d time.Duration, w Waker)
}

// TimerReactor is a [Reactor] whose only completion condition is the
// passage of time.
//
// Every entry is independent: each Schedule arms its own timed wait,
// which fires once and is then discarded. There is no coordination
// across entries. A fire whose computation has already completed or
// been cancelled resolves as a stale wake and is dropped by the
// executor.
type TimerReactor struct{}

// Schedule implements [Reactor].
func (TimerReactor) Schedule(d time.Duration, w Waker) {
	time.AfterFunc(d, w.Wake)
}

// defaultReactor serves the package-level Sleep convenience.
// The core API never assumes it; SleepOn takes an explicit Reactor.
var defaultReactor TimerReactor

// Sleep returns a [Future] that completes with no value once d has
// elapsed, using a shared default [TimerReactor].
func Sleep(d time.Duration) Future[struct{}] {
	return SleepOn(defaultReactor, d)
}

// SleepOn returns a [Future] that completes with no value once d has
// elapsed, registering with r on its first poll.
//
// The first poll records the deadline, hands a copy of the waker to r,
// and suspends. A later poll before the deadline suspends again without
// re-registering; the armed entry will deliver the wake. A poll after
// the deadline completes.
func SleepOn(r Reactor, d time.Duration) Future[struct{}] {
	if r == nil {
		panic("future: SleepOn called with nil Reactor")
	}
	return &sleepFuture{r: r, d: d}
}

type sleepFuture struct {
	r        Reactor
	d        time.Duration
	started  bool
	done     bool
	deadline time.Time
}

func (s *sleepFuture) Poll(w Waker) Poll[struct{}] {
	switch {
	case !s.started:
		s.started = true
		s.deadline = time.Now().Add(s.d)
		s.r.Schedule(s.d, w)
		return Pending[struct{}]()
	case s.done:
		panic("future: poll after completion")
	case time.Now().Before(s.deadline):
		// Spurious poll. The entry armed on the first poll still
		// holds a waker; do not re-register.
		return Pending[struct{}]()
	default:
		s.done = true
		return Ready(struct{}{})
	}
}
