package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cnfkit/solver/dimacs"
	"github.com/cnfkit/solver/twosat"
)

func newTwoSatCmd() *cobra.Command {
	var gzipped bool

	cmd := &cobra.Command{
		Use:   "twosat <file.cnf>",
		Short: "Decide a 2-SAT instance via the implication-graph/SCC core",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			solver := twosat.NewSolver(0)
			if err := dimacs.LoadInto(args[0], gzipped, dimacs.TwoSatTarget{Solver: solver}); err != nil {
				return err
			}

			result := solver.Solve()
			if !result.Satisfiable {
				fmt.Println("s UNSATISFIABLE")
				return nil
			}
			fmt.Println("s SATISFIABLE")
			fmt.Fprint(os.Stdout, "v")
			for v, positive := range result.Model {
				lit := v + 1
				if !positive {
					lit = -lit
				}
				fmt.Fprintf(os.Stdout, " %d", lit)
			}
			fmt.Println(" 0")
			return nil
		},
	}
	cmd.Flags().BoolVar(&gzipped, "gzip", false, "treat the input file as gzip-compressed")
	return cmd
}
