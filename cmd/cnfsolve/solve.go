package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cnfkit/solver/dimacs"
	"github.com/cnfkit/solver/sat"
)

func newSolveCmd() *cobra.Command {
	var flags optionFlags
	var gzipped bool

	cmd := &cobra.Command{
		Use:   "solve <file.cnf>",
		Short: "Decide satisfiability of a DIMACS CNF instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			solver := sat.NewSolver(flags.options())
			if err := dimacs.LoadInto(args[0], gzipped, dimacs.SatTarget{Solver: solver}); err != nil {
				return err
			}

			status := solver.Solve()

			var model []bool
			if status == sat.StatusSat {
				model = solver.Models[len(solver.Models)-1]
			}
			if err := dimacs.WriteSolution(os.Stdout, status, model); err != nil {
				return err
			}

			st := solver.Stats()
			fmt.Fprintf(os.Stderr, "c decisions=%d propagations=%d conflicts=%d learned=%d restarts=%d reductions=%d\n",
				st.Decisions, st.Propagations, st.Conflicts, st.Learned, st.Restarts, st.Reductions)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&gzipped, "gzip", false, "treat the input file as gzip-compressed")
	return cmd
}
