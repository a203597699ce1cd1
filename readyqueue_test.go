package future

import (
	"testing"
	"time"
)

func TestReadyQueue(t *testing.T) {
	t.Run("FIFO", func(t *testing.T) {
		var q readyqueue

		q.push(3)
		q.push(1)
		q.push(2)

		for _, want := range []uint64{3, 1, 2} {
			if id, ok := q.pop(false); !ok || id != want {
				t.FailNow()
			}
		}

		if _, ok := q.pop(false); ok {
			t.FailNow()
		}
	})

	t.Run("Coalesce", func(t *testing.T) {
		var q readyqueue

		q.push(7)
		q.push(7)
		q.push(8)
		q.push(7)

		if id, _ := q.pop(false); id != 7 {
			t.FailNow()
		}
		if id, _ := q.pop(false); id != 8 {
			t.FailNow()
		}
		if _, ok := q.pop(false); ok {
			t.FailNow()
		}

		// Once popped, an identity may queue again.
		q.push(7)

		if id, ok := q.pop(false); !ok || id != 7 {
			t.FailNow()
		}
	})

	t.Run("Park", func(t *testing.T) {
		var q readyqueue

		popped := make(chan uint64)
		go func() {
			id, _ := q.pop(true)
			popped <- id
		}()

		select {
		case <-popped:
			t.FailNow()
		case <-time.After(10 * time.Millisecond):
		}

		q.push(42)

		if id := <-popped; id != 42 {
			t.FailNow()
		}
	})
}
