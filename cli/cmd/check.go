// Package cmd implements the rxn subcommands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/rxn/chem"
	"github.com/ardnew/rxn/log"
)

// Check compiles a network file and reports the result.
type Check struct {
	Source string `arg:"" help:"Network file (YAML)" type:"existingfile"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) error {
	nf, err := chem.LoadNetworkFile(c.Source)
	if err != nil {
		return err
	}

	network, err := nf.Compile(chem.WithLogger(log.Default()))
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "network ok",
		slog.String("source", c.Source),
		slog.Int("reactions", len(network.Reactions)),
	)

	fmt.Printf("%s: %d reactions, %d participants\n",
		c.Source, len(network.Reactions), len(network.Participants))

	return nil
}
