// Command futuredemo exercises the future package with timer-driven
// computations, mirroring the classic build-your-own-executor demos:
// several timers running concurrently on one executor goroutine, and a
// chain of timers awaited in sequence.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"future"
)

var rootCmd = &cobra.Command{
	Use:   "futuredemo",
	Short: "Demos for the waker-driven future executor",
	Long: `futuredemo drives timer futures on a single-threaded executor.

The executor polls, parks while nothing is ready, and is unparked by
timer wakes. Watch the timestamps: concurrent timers overlap, chained
timers add up.`,
	SilenceUsage: true,
}

var timersCmd = &cobra.Command{
	Use:   "timers",
	Short: "Run three timers concurrently on one executor",
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := cmd.Flags().GetDuration("base")
		if err != nil {
			return err
		}

		var executor future.Executor

		start := time.Now()

		handles := make([]*future.Handle[time.Duration], 3)
		for i := range handles {
			d := time.Duration(i+1) * base
			fmt.Printf("starting a %v timer...\n", d)
			handles[i] = future.Submit(&executor, future.Map(
				future.Sleep(d),
				func(struct{}) time.Duration { return d },
			))
		}

		for _, h := range handles {
			d := future.RunUntilComplete(&executor, h)
			fmt.Printf("%v timer elapsed at %v\n", d, time.Since(start).Round(time.Millisecond))
		}

		return nil
	},
}

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Await a sequence of timers one after another",
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := cmd.Flags().GetDuration("base")
		if err != nil {
			return err
		}
		n, err := cmd.Flags().GetInt("count")
		if err != nil {
			return err
		}

		var executor future.Executor

		start := time.Now()

		chain := future.Map(future.Sleep(base), func(struct{}) int { return 1 })
		for i := 2; i <= n; i++ {
			chain = future.Then(chain, func(done int) future.Future[int] {
				fmt.Printf("%d timers done at %v\n", done, time.Since(start).Round(time.Millisecond))
				return future.Map(future.Sleep(base), func(struct{}) int { return done + 1 })
			})
		}

		total := future.BlockOn(&executor, chain)
		fmt.Printf("%d timers done at %v\n", total, time.Since(start).Round(time.Millisecond))

		return nil
	},
}

func main() {
	rootCmd.AddCommand(timersCmd)
	rootCmd.AddCommand(chainCmd)

	rootCmd.PersistentFlags().Duration("base", 200*time.Millisecond, "base timer duration")
	chainCmd.Flags().Int("count", 5, "number of timers to chain")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
