package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/rxn/cli/cmd"
)

const (
	name        = "rxn"
	description = "Compile and validate plasma chemistry reaction networks."
)

// CLI is the top-level command-line interface for rxn.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Check cmd.Check `cmd:"" help:"Compile a network file and report the first error, if any"`
	Dump  cmd.Dump  `cmd:"" help:"Compile a network file and render the reaction table"`
}

// Run executes the rxn CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon
// completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	parser, err := kong.New(&cli,
		kong.Name(name),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact: true,
				Summary: true,
			}),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cli.Log.start(ctx)

	// No-op unless built with the pprof tag and a mode is selected.
	defer cli.Pprof.start(ctx)()

	return ktx.Run()
}
