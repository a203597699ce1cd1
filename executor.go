package future

// An Executor drives submitted [Future] computations to completion.
//
// All polling happens on a single goroutine: whichever goroutine calls
// [Executor.Run], [RunUntilComplete] or [BlockOn] becomes the executor
// goroutine for the duration of the call. The executor is the exclusive
// owner of its task table; only the ready queue is shared, and it is
// safe under concurrent wakes from any number of goroutines.
//
// When a polled computation suspends, the executor parks once no other
// computation is ready, and a [Waker.Wake] from any goroutine unparks
// it. Computations are polled strictly in the order their readiness was
// observed.
//
// The zero Executor is ready to use.
type Executor struct {
	rq     readyqueue
	tasks  map[uint64]*task
	nextID uint64
}

// A task is the stable slot that houses one submitted computation.
//
// The slot is allocated once, at submission. The task table stores only
// the pointer, so the table may grow, shrink or rehash without ever
// relocating the computation the slot houses. A computation that
// captured references into its own storage during a poll therefore
// stays valid until it completes.
type task struct {
	poll func(w Waker) (completed bool)
}

// A Handle identifies a submitted computation and receives its value
// when the computation completes.
//
// A Handle is a one-shot: [RunUntilComplete] consumes it. Handles are
// not safe for concurrent use; like the task table, they belong to the
// executor goroutine.
type Handle[T any] struct {
	executor *Executor
	id       uint64
	done     bool
	consumed bool
	value    T
}

// Done reports whether the computation identified by h has completed.
func (h *Handle[T]) Done() bool {
	return h.done
}

// Cancel removes the computation identified by h from the executor's
// task table. The computation is never polled again, and any wake that
// later arrives for it, a pending timer fire included, is silently
// dropped.
//
// Cancelling a completed or already cancelled computation does nothing.
// Cancel must not be called while the executor is running on another
// goroutine.
func (h *Handle[T]) Cancel() {
	delete(h.executor.tasks, h.id)
}

// Submit registers f with e, marks it immediately ready, and returns
// a [Handle] carrying its identity.
//
// Submit does not poll f; the first poll happens when the executor
// runs. Submit must not be called while e is running on another
// goroutine.
func Submit[T any](e *Executor, f Future[T]) *Handle[T] {
	if f == nil {
		panic("future: Submit called with nil Future")
	}

	id := e.nextID
	e.nextID++

	h := &Handle[T]{executor: e, id: id}

	t := &task{}
	t.poll = func(w Waker) bool {
		p := f.Poll(w)
		if !p.IsReady() {
			return false
		}
		h.done = true
		h.value = p.Value()
		return true
	}

	if e.tasks == nil {
		e.tasks = make(map[uint64]*task)
	}
	e.tasks[id] = t
	e.rq.push(id)

	return h
}

// dispatch polls the computation identified by id once.
//
// An identity whose computation is no longer in the table is stale:
// the computation completed, was cancelled, or was re-woken while
// being polled. Stale identities are skipped silently.
func (e *Executor) dispatch(id uint64) {
	t, ok := e.tasks[id]
	if !ok {
		return
	}

	delete(e.tasks, id)

	if !t.poll(Waker{id: id, rq: &e.rq}) {
		// Suspended again. Reinsert the same slot; the computation
		// never moves.
		e.tasks[id] = t
	}
}

// Run polls ready computations until none remain, parking whenever the
// ready queue is empty but suspended computations still exist. Run
// returns once the task table is empty.
//
// Run must not be called from two goroutines at the same time.
func (e *Executor) Run() {
	for {
		id, ok := e.rq.pop(false)
		if !ok {
			if len(e.tasks) == 0 {
				return
			}
			id, _ = e.rq.pop(true)
		}
		e.dispatch(id)
	}
}

// RunUntilComplete drives e on the calling goroutine until the
// computation identified by h completes, then returns its value.
// Other submitted computations make progress along the way; any still
// suspended when h completes stay in the table for a later run.
//
// The wait parks between polls; it never spins.
//
// RunUntilComplete consumes h. Consuming a Handle twice, or a Handle
// whose computation was cancelled, is a logic error and panics.
func RunUntilComplete[T any](e *Executor, h *Handle[T]) T {
	if h == nil || h.executor != e {
		panic("future: RunUntilComplete called with a foreign Handle")
	}
	if h.consumed {
		panic("future: Handle already consumed")
	}

	for !h.done {
		if _, ok := e.tasks[h.id]; !ok {
			panic("future: Handle refers to a cancelled or unknown task")
		}
		id, _ := e.rq.pop(true)
		e.dispatch(id)
	}

	h.consumed = true
	return h.value
}

// BlockOn submits f to e and drives it to completion on the calling
// goroutine, returning its value.
func BlockOn[T any](e *Executor, f Future[T]) T {
	return RunUntilComplete(e, Submit(e, f))
}
