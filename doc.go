// Package future is a minimal waker-driven executor for suspendable
// computations.
//
// A [Future] is a unit of work that can be polled to advance one step.
// A poll either completes with a value, or reports that the computation
// is suspended, in which case the computation must first have handed
// the supplied [Waker] to some completion source. When that source later
// invokes the waker, the computation becomes ready to be polled again.
//
// An [Executor] owns the submitted computations and drives all polling
// from a single goroutine. When no computation is ready, the executor
// parks instead of spinning; a wake from any goroutine unparks it.
// Computations are polled in the order their readiness was observed.
//
// The only completion source provided is [TimerReactor], which arms an
// independent timed wait per entry and invokes the waker exactly once
// when the duration elapses. [Reactor] is an interface so that a
// multiplexing, event-driven reactor can replace it behind the same
// Schedule contract.
//
// # Storage Stability
//
// A computation may capture references into its own storage during a
// poll. The executor therefore houses each submitted computation behind
// an individually allocated slot addressed only through its identity.
// The task table may grow or shrink, but the slot a computation lives
// in never moves between its first poll and its completion.
//
// # Misuse
//
// Polling a computation after it has completed, or consuming a [Handle]
// twice, is a logic error and panics. A wake that arrives for a
// computation that has already completed or been cancelled is not an
// error; it is silently dropped.
package future
