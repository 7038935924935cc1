package main

import (
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/cnfkit/solver/dimacs"
	"github.com/cnfkit/solver/gen"
)

func newGenCmd() *cobra.Command {
	var (
		kind       string
		pigeons    int
		holes      int
		numVars    int
		numClauses int
		k          int
		seed       uint64
		coreName   string
		outFile    string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a synthetic DIMACS CNF instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			var out *os.File
			var err error
			if outFile == "" || outFile == "-" {
				out = os.Stdout
			} else {
				out, err = os.Create(outFile)
				if err != nil {
					return err
				}
				defer out.Close()
			}

			switch kind {
			case "pigeonhole":
				return dimacs.WriteFormula(out, gen.Pigeonhole(pigeons, holes))
			case "random":
				rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
				return dimacs.WriteFormula(out, gen.RandomKSAT(numVars, numClauses, k, rng))
			case "core":
				return dimacs.WriteFormula(out, gen.UnsatCore(coreName))
			default:
				return cmd.Usage()
			}
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "pigeonhole", "instance kind: pigeonhole, random, or core")
	cmd.Flags().IntVar(&pigeons, "pigeons", 3, "pigeonhole: number of pigeons")
	cmd.Flags().IntVar(&holes, "holes", 2, "pigeonhole: number of holes")
	cmd.Flags().IntVar(&numVars, "vars", 50, "random: number of variables")
	cmd.Flags().IntVar(&numClauses, "clauses", 200, "random: number of clauses")
	cmd.Flags().IntVar(&k, "k", 3, "random: literals per clause")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random: PRNG seed")
	cmd.Flags().StringVar(&coreName, "core", "triangle", "core: one of empty-clause, unit-conflict, triangle")
	cmd.Flags().StringVar(&outFile, "out", "-", "output file, - for stdout")
	return cmd
}
