package main

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/cnfkit/solver/dimacs"
	"github.com/cnfkit/solver/metrics"
	"github.com/cnfkit/solver/sat"
)

// benchResult is one instance's outcome, reported back to the driving
// goroutine through a mutex-guarded result slice indexed by argument
// position.
type benchResult struct {
	file   string
	status sat.Status
	stats  sat.Stats
	err    error
}

func newBenchCmd() *cobra.Command {
	var flags optionFlags
	var metricsAddr string
	var concurrency int

	cmd := &cobra.Command{
		Use:   "bench <file.cnf>...",
		Short: "Solve many instances concurrently, outside the core search",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				mu      sync.Mutex
				results = make([]benchResult, len(args))
			)

			if metricsAddr != "" {
				reg := metrics.Registry()
				for i, file := range args {
					i, file := i, file
					reg.MustRegister(metrics.NewCollector(file, func() sat.Stats {
						mu.Lock()
						defer mu.Unlock()
						return results[i].stats
					}))
				}
				go func() {
					_ = metrics.Serve(metricsAddr, reg)
				}()
			}

			g := new(errgroup.Group)
			if concurrency > 0 {
				g.SetLimit(concurrency)
			}

			for i, file := range args {
				i, file := i, file
				g.Go(func() error {
					solver := sat.NewSolver(flags.options())
					if err := dimacs.LoadInto(file, false, dimacs.SatTarget{Solver: solver}); err != nil {
						mu.Lock()
						results[i] = benchResult{file: file, err: err}
						mu.Unlock()
						return nil
					}
					status := solver.Solve()
					mu.Lock()
					results[i] = benchResult{file: file, status: status, stats: solver.Stats()}
					mu.Unlock()
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			for _, r := range results {
				if r.err != nil {
					fmt.Printf("%s: error: %v\n", r.file, r.err)
					continue
				}
				fmt.Printf("%s: %s (decisions=%d conflicts=%d restarts=%d)\n",
					r.file, r.status, r.stats.Decisions, r.stats.Conflicts, r.stats.Restarts)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve /metrics on this address while the batch runs, e.g. :9090")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "max instances solved concurrently, 0 for unbounded")
	return cmd
}
