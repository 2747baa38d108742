//go:build !pprof

package cli

import (
	"context"

	"github.com/alecthomas/kong"
)

// pprofConfig is a stub when profiling support is compiled out. Build with
// the pprof tag to enable the profiling flags.
type pprofConfig struct{}

func (pprofConfig) group() kong.Group {
	var group kong.Group

	group.Key = "pprof"
	group.Title = "Profiling (pprof)"

	return group
}

func (pprofConfig) start(context.Context) (stop func()) {
	return func() {}
}
