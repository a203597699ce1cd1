package future

import "sync"

// A readyqueue holds the identities of computations awaiting a poll,
// in the order their readiness was observed.
//
// It is the only structure shared across goroutines: pushes may come
// from any goroutine (timer callbacks included), while pops happen on
// the executor goroutine only. An identity appears at most once; pushes
// for an identity already queued are dropped. Popping may park the
// calling goroutine until a push occurs.
type readyqueue struct {
	mu     sync.Mutex
	wakeup sync.Cond
	ids    fifoqueue[uint64]
	queued map[uint64]struct{}
}

func (q *readyqueue) push(id uint64) {
	q.mu.Lock()

	if q.queued == nil {
		q.queued = make(map[uint64]struct{})
	}

	if _, ok := q.queued[id]; ok {
		q.mu.Unlock()
		return
	}

	q.queued[id] = struct{}{}
	q.ids.Push(id)

	q.wakeup.Signal()
	q.mu.Unlock()
}

// pop removes and returns the oldest queued identity.
//
// If the queue is empty and park is false, pop returns immediately with
// ok == false. If park is true, pop blocks the calling goroutine until
// a push occurs.
func (q *readyqueue) pop(park bool) (id uint64, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.wakeup.L == nil {
		q.wakeup.L = &q.mu
	}

	for q.ids.Empty() {
		if !park {
			return 0, false
		}
		q.wakeup.Wait()
	}

	id = q.ids.Pop()
	delete(q.queued, id)

	return id, true
}
