package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cnfkit/solver/sat"
)

// restartFlag is a pflag.Value validating --restart against the two
// schedules sat.Options actually supports, so a typo fails at flag-parse
// time instead of silently falling back to the Glucose default.
type restartFlag struct {
	strategy sat.RestartStrategy
}

var _ pflag.Value = (*restartFlag)(nil)

func (r *restartFlag) String() string { return r.strategy.String() }
func (r *restartFlag) Type() string   { return "restart" }
func (r *restartFlag) Set(s string) error {
	switch s {
	case "glucose":
		r.strategy = sat.RestartGlucose
	case "luby":
		r.strategy = sat.RestartLuby
	default:
		return fmt.Errorf("restart: want \"glucose\" or \"luby\", got %q", s)
	}
	return nil
}

// optionFlags binds a subset of sat.Options to pflag flags shared by
// every subcommand that constructs a solver.
type optionFlags struct {
	vsidsDecay   float64
	restart      restartFlag
	restartBase  int64
	clauseDecay  float64
	clauseLimit  int
	glueThresh   int
	budget       int64
	timeoutMS    int64
	verbose      bool
}

func (f *optionFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Float64Var(&f.vsidsDecay, "vsids-decay", sat.DefaultOptions.VSIDSDecay, "VSIDS activity decay factor")
	f.restart.strategy = sat.RestartGlucose
	flags.Var(&f.restart, "restart", "restart strategy: glucose or luby")
	flags.Int64Var(&f.restartBase, "restart-base", sat.DefaultOptions.RestartBase, "restart base unit (conflicts)")
	flags.Float64Var(&f.clauseDecay, "clause-decay", sat.DefaultOptions.ClauseDecay, "learnt clause activity decay factor")
	flags.IntVar(&f.clauseLimit, "clause-limit", sat.DefaultOptions.LearnedClauseLimit, "learned clause database soft limit")
	flags.IntVar(&f.glueThresh, "glue-threshold", sat.DefaultOptions.GlueThreshold, "LBD at or under which a learnt clause is protected")
	flags.Int64Var(&f.budget, "conflict-budget", sat.DefaultOptions.ConflictBudget, "conflict budget, -1 for unbounded")
	flags.Int64Var(&f.timeoutMS, "timeout-ms", -1, "wall-clock timeout in milliseconds, -1 for unbounded")
	flags.BoolVar(&f.verbose, "verbose", false, "enable debug-level solver logging")
}

func (f *optionFlags) options() sat.Options {
	opts := sat.DefaultOptions
	opts.VSIDSDecay = f.vsidsDecay
	opts.RestartStrategy = f.restart.strategy
	opts.RestartBase = f.restartBase
	opts.ClauseDecay = f.clauseDecay
	opts.LearnedClauseLimit = f.clauseLimit
	opts.GlueThreshold = f.glueThresh
	opts.ConflictBudget = f.budget
	if f.timeoutMS >= 0 {
		opts.Timeout = msDuration(f.timeoutMS)
	}

	log := logrus.New()
	if f.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	opts.Logger = log
	return opts
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cnfsolve",
		Short:         "CDCL and 2-SAT solving over DIMACS CNF instances",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newSolveCmd())
	root.AddCommand(newTwoSatCmd())
	root.AddCommand(newGenCmd())
	root.AddCommand(newBenchCmd())
	return root
}
