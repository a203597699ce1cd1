package future

// A Poll is the result of a single call to [Future.Poll].
// It either carries a completion value, or reports that the computation
// is still suspended.
type Poll[T any] struct {
	value T
	ready bool
}

// Ready returns a [Poll] carrying a completion value.
func Ready[T any](v T) Poll[T] {
	return Poll[T]{value: v, ready: true}
}

// Pending returns a [Poll] that reports no completion yet.
//
// A computation returning Pending must first have registered the
// supplied [Waker], or a copy of it, with some completion source.
// Failing to do so means the computation is never polled again.
func Pending[T any]() Poll[T] {
	return Poll[T]{}
}

// IsReady reports whether p carries a completion value.
func (p Poll[T]) IsReady() bool {
	return p.ready
}

// Value returns the completion value of p.
//
// Panics if p is pending.
func (p Poll[T]) Value() T {
	if !p.ready {
		panic("future: Value called on a pending Poll")
	}
	return p.value
}

// A Future is a suspendable computation that completes with a value of
// type T.
//
// Poll advances the computation one step and must return without
// blocking the calling goroutine. Once a poll has returned a ready
// [Poll], the computation is complete; polling it again is a logic
// error and panics.
//
// A computation may capture references into its own storage while being
// polled. Such references stay valid under an [Executor], which never
// relocates a submitted computation (see [Submit]).
type Future[T any] interface {
	Poll(w Waker) Poll[T]
}

// The Func type is an adapter to allow the use of ordinary functions as
// Futures.
type Func[T any] func(w Waker) Poll[T]

// Poll implements [Future] by calling f.
func (f Func[T]) Poll(w Waker) Poll[T] {
	return f(w)
}

const (
	stageFirst = iota
	stageSecond
	stageDone
)

// Then returns a [Future] that first drives f to completion, then
// drives the Future produced by next from f's value, and completes
// with that second value.
//
// The returned Future is an explicit state machine: it records which
// stage it is suspended in, and resumes at exactly that stage on the
// next poll.
func Then[T, U any](f Future[T], next func(T) Future[U]) Future[U] {
	if f == nil || next == nil {
		panic("future: Then called with nil argument")
	}
	return &thenFuture[T, U]{first: f, next: next}
}

type thenFuture[T, U any] struct {
	stage  int
	first  Future[T]
	next   func(T) Future[U]
	second Future[U]
}

func (t *thenFuture[T, U]) Poll(w Waker) Poll[U] {
	for {
		switch t.stage {
		case stageFirst:
			p := t.first.Poll(w)
			if !p.IsReady() {
				return Pending[U]()
			}
			t.second = t.next(p.Value())
			t.first = nil
			t.next = nil
			t.stage = stageSecond
		case stageSecond:
			p := t.second.Poll(w)
			if !p.IsReady() {
				return Pending[U]()
			}
			t.second = nil
			t.stage = stageDone
			return p
		default:
			panic("future: poll after completion")
		}
	}
}

// Map returns a [Future] that completes with fn applied to the value
// of f.
func Map[T, U any](f Future[T], fn func(T) U) Future[U] {
	if f == nil || fn == nil {
		panic("future: Map called with nil argument")
	}
	done := false
	return Func[U](func(w Waker) Poll[U] {
		if done {
			panic("future: poll after completion")
		}
		p := f.Poll(w)
		if !p.IsReady() {
			return Pending[U]()
		}
		done = true
		return Ready(fn(p.Value()))
	})
}
