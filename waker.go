package future

// A Waker marks one submitted computation as ready to be polled again.
//
// An [Executor] constructs a fresh Waker for every poll, bound to the
// identity of the computation being polled. A computation that returns
// a pending [Poll] hands the Waker, or a copy of it, to a completion
// source such as a [Reactor].
//
// A Waker is a small value; copying it is the clone operation, and all
// copies are bound to the same identity. A Waker may be retained across
// suspension points and may outlive the poll that produced it.
type Waker struct {
	id uint64
	rq *readyqueue
}

// Wake pushes the bound identity onto the executor's ready queue and
// unparks the executor goroutine if it is parked.
//
// Wake is safe to call from any goroutine, any number of times.
// Wakes issued while the identity is already queued coalesce into a
// single entry, and a wake for a computation that has already completed
// or been cancelled is a harmless no-op.
func (w Waker) Wake() {
	if w.rq == nil {
		panic("future: Wake on a zero Waker")
	}
	w.rq.push(w.id)
}
