package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/cnfkit/solver/sat"
)

func TestCollectorReportsCurrentStats(t *testing.T) {
	stats := sat.Stats{Decisions: 10, Conflicts: 3, Learned: 2}
	c := NewCollector("instance.cnf", func() sat.Stats { return stats })

	reg := Registry()
	reg.MustRegister(c)

	count, err := testutil.GatherAndCount(reg, "cnfkit_solver_decisions_total")
	if err != nil {
		t.Fatalf("GatherAndCount: %v", err)
	}
	if count != 1 {
		t.Fatalf("cnfkit_solver_decisions_total series count = %d, want 1", count)
	}
}

func TestCollectorReflectsLiveSource(t *testing.T) {
	stats := sat.Stats{Conflicts: 1}
	c := NewCollector("instance.cnf", func() sat.Stats { return stats })

	reg := Registry()
	reg.MustRegister(c)

	conflictsValue := func() float64 {
		mfs, err := reg.Gather()
		if err != nil {
			t.Fatalf("Gather: %v", err)
		}
		for _, mf := range mfs {
			if mf.GetName() == "cnfkit_solver_conflicts_total" {
				return mf.GetMetric()[0].GetCounter().GetValue()
			}
		}
		t.Fatalf("cnfkit_solver_conflicts_total not gathered")
		return 0
	}

	before, err := testutil.GatherAndCount(reg, "cnfkit_solver_conflicts_total")
	if err != nil {
		t.Fatalf("GatherAndCount: %v", err)
	}
	if got := conflictsValue(); got != 1 {
		t.Fatalf("cnfkit_solver_conflicts_total = %v before update, want 1", got)
	}
	stats.Conflicts = 5 // Source is a closure, so Collect should pick this up live.
	after, err := testutil.GatherAndCount(reg, "cnfkit_solver_conflicts_total")
	if err != nil {
		t.Fatalf("GatherAndCount: %v", err)
	}
	if before != after {
		t.Fatalf("series count changed between scrapes: %d vs %d", before, after)
	}
	if got := conflictsValue(); got != 5 {
		t.Fatalf("cnfkit_solver_conflicts_total = %v after update, want 5", got)
	}
}
