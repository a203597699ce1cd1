package future

// A fifoqueue is a first-in-first-out container.
//
// Elements live in two slices. Push appends to tail; Pop drains head
// and, when head is emptied, swaps tail in. The two backing arrays are
// reused in turn, so a queue that has reached its working size stops
// allocating.
type fifoqueue[E any] struct {
	head, tail []E
}

func (q *fifoqueue[E]) Empty() bool {
	return len(q.head) == 0 && len(q.tail) == 0
}

func (q *fifoqueue[E]) Push(v E) {
	q.tail = append(q.tail, v)
}

func (q *fifoqueue[E]) Pop() (v E) {
	if len(q.head) == 0 {
		// Everything in tail is newer than anything head ever held.
		q.head, q.tail = q.tail, q.head[:0]
	}

	q.head[0], v = v, q.head[0]
	q.head = q.head[1:]

	return v
}
