// Command cnfsolve is a CLI front end over the cnfkit/solver engine:
// solving DIMACS CNF instances (solve), deciding 2-SAT instances
// (twosat), generating synthetic benchmark instances (gen), and running
// a batch of instances concurrently with optional metrics export (bench).
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.StandardLogger().Errorf("cnfsolve: %v", err)
		os.Exit(1)
	}
}
