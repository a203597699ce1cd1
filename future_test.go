package future_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"future"
)

// capturedWaker completes a throwaway computation just to obtain a
// valid Waker for manual polling.
func capturedWaker(t *testing.T) future.Waker {
	t.Helper()

	var myExecutor future.Executor
	var w future.Waker
	future.BlockOn(&myExecutor, future.Func[struct{}](func(waker future.Waker) future.Poll[struct{}] {
		w = waker
		return future.Ready(struct{}{})
	}))
	return w
}

func TestPoll(t *testing.T) {
	p := future.Ready(42)
	require.True(t, p.IsReady())
	require.Equal(t, 42, p.Value())

	q := future.Pending[int]()
	require.False(t, q.IsReady())
	require.PanicsWithValue(t, "future: Value called on a pending Poll", func() {
		q.Value()
	})
}

func TestThenResumesAtSuspensionPoint(t *testing.T) {
	var myExecutor future.Executor

	reactor := new(fakeReactor)

	firstPolls, secondPolls := 0, 0
	f := future.Then(
		future.Func[int](func(w future.Waker) future.Poll[int] {
			firstPolls++
			if firstPolls == 1 {
				reactor.Schedule(0, w)
				return future.Pending[int]()
			}
			return future.Ready(1)
		}),
		func(v int) future.Future[int] {
			return future.Func[int](func(w future.Waker) future.Poll[int] {
				secondPolls++
				if secondPolls == 1 {
					reactor.Schedule(0, w)
					return future.Pending[int]()
				}
				return future.Ready(v + 1)
			})
		},
	)

	h := future.Submit(&myExecutor, f)

	stop := make(chan struct{})
	go func() {
		for {
			select {
			case <-stop:
				return
			default:
				time.Sleep(time.Millisecond)
				reactor.fire()
			}
		}
	}()

	v := future.RunUntilComplete(&myExecutor, h)
	close(stop)

	require.Equal(t, 2, v)
	require.Equal(t, 2, firstPolls, "the first stage is never re-entered once ready")
	require.Equal(t, 2, secondPolls)
}

func TestMap(t *testing.T) {
	var myExecutor future.Executor

	doubled := future.Map(
		future.Func[int](func(future.Waker) future.Poll[int] { return future.Ready(21) }),
		func(v int) int { return v * 2 },
	)

	require.Equal(t, 42, future.BlockOn(&myExecutor, doubled))
}

func TestPollAfterCompletionPanics(t *testing.T) {
	w := capturedWaker(t)

	t.Run("Sleep", func(t *testing.T) {
		var myExecutor future.Executor

		s := future.Sleep(0)
		future.BlockOn(&myExecutor, s)

		require.PanicsWithValue(t, "future: poll after completion", func() {
			s.Poll(w)
		})
	})

	t.Run("Then", func(t *testing.T) {
		var myExecutor future.Executor

		f := future.Then(future.Sleep(0), func(struct{}) future.Future[int] {
			return future.Func[int](func(future.Waker) future.Poll[int] {
				return future.Ready(1)
			})
		})
		future.BlockOn(&myExecutor, f)

		require.PanicsWithValue(t, "future: poll after completion", func() {
			f.Poll(w)
		})
	})

	t.Run("Map", func(t *testing.T) {
		var myExecutor future.Executor

		f := future.Map(future.Sleep(0), func(struct{}) int { return 1 })
		future.BlockOn(&myExecutor, f)

		require.PanicsWithValue(t, "future: poll after completion", func() {
			f.Poll(w)
		})
	})
}

func TestZeroWakerPanics(t *testing.T) {
	require.PanicsWithValue(t, "future: Wake on a zero Waker", func() {
		var w future.Waker
		w.Wake()
	})
}
