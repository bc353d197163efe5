package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	gocrdt "github.com/lucasmehta/crdtlattice"
)

func newCounterCmd() *cobra.Command {
	var replicas int

	cmd := &cobra.Command{
		Use:   "counter",
		Short: "Run the G-Counter convergence scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCounterScenario(replicas)
		},
	}
	cmd.Flags().IntVar(&replicas, "replicas", 3, "number of simulated replicas")
	return cmd
}

func runCounterScenario(replicaCount int) error {
	if replicaCount < 1 {
		return fmt.Errorf("replicas must be >= 1, got %d", replicaCount)
	}

	counters := make([]*gocrdt.GrowOnlyCounter, replicaCount)
	ids := make([]gocrdt.ReplicaId, replicaCount)
	for i := range counters {
		counters[i] = gocrdt.NewGrowOnlyCounter()
		ids[i] = gocrdt.NewReplicaID()
		counters[i].Increment(ids[i], uint64(i+1))
	}

	slog.Info("counter scenario started", "replicas", replicaCount)

	// Every replica merges in every other replica's state, in arbitrary
	// order, and all must converge to the same total.
	for i := range counters {
		for j := range counters {
			if i == j {
				continue
			}
			counters[i].Merge(counters[j])
		}
	}

	total := counters[0].Sum()
	for i, c := range counters {
		slog.Info("replica converged", "replica", ids[i].String(), "sum", c.Sum())
		if c.Sum() != total {
			return fmt.Errorf("replica %d diverged: got %d want %d", i, c.Sum(), total)
		}
	}

	fmt.Printf("converged total: %d\n", total)
	return nil
}
