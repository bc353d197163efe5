package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	gocrdt "github.com/lucasmehta/crdtlattice"
)

func newRGACmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rga",
		Short: "Run the RGA convergence scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRGAScenario()
		},
	}
}

func runRGAScenario() error {
	alice := gocrdt.NewRGA[rune](gocrdt.NewReplicaID(), gocrdt.SystemTimeSource{})
	bob := gocrdt.NewRGA[rune](gocrdt.NewReplicaID(), gocrdt.SystemTimeSource{})

	for _, r := range "Hi" {
		alice.Insert(r)
	}
	bob.Merge(alice)

	for _, r := range "!" {
		alice.Insert(r)
	}
	for _, r := range "?" {
		bob.Insert(r)
	}

	slog.Info("rga scenario: concurrent appends on both replicas")

	alice.Merge(bob)
	bob.Merge(alice)

	if !alice.Equal(bob) {
		return fmt.Errorf("rga replicas diverged: %q vs %q", renderRunes(alice.ToSequence()), renderRunes(bob.ToSequence()))
	}

	fmt.Printf("converged sequence: %q\n", renderRunes(alice.ToSequence()))
	return nil
}

func renderRunes(rs []rune) string {
	var b strings.Builder
	for _, r := range rs {
		b.WriteRune(r)
	}
	return b.String()
}
