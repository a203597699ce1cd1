package future_test

import (
	"fmt"
	"time"

	"future"
)

func Example() {
	var myExecutor future.Executor

	short := future.Submit(&myExecutor, future.Sleep(10*time.Millisecond))
	long := future.Submit(&myExecutor, future.Sleep(40*time.Millisecond))

	// Both timers run concurrently. Driving the executor to the first
	// completion also advances the second; the executor parks in
	// between instead of spinning.
	future.RunUntilComplete(&myExecutor, short)
	fmt.Println("short timer elapsed")

	future.RunUntilComplete(&myExecutor, long)
	fmt.Println("long timer elapsed")

	// Output:
	// short timer elapsed
	// long timer elapsed
}

func ExampleBlockOn() {
	var myExecutor future.Executor

	answer := future.Then(
		future.Sleep(10*time.Millisecond),
		func(struct{}) future.Future[int] {
			return future.Func[int](func(future.Waker) future.Poll[int] {
				return future.Ready(42)
			})
		},
	)

	fmt.Println(future.BlockOn(&myExecutor, answer))

	// Output:
	// 42
}
