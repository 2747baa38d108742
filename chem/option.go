package chem

import (
	"log/slog"
	"slices"
	"strconv"

	"github.com/ardnew/rxn/log"
)

// InterpolationType selects how tabulated rate coefficients are
// interpolated by the downstream consumer. The set is closed; any other
// string is a fatal configuration error.
type InterpolationType string

const (
	// InterpolationSpline is the default cubic-spline interpolation.
	InterpolationSpline InterpolationType = "spline"

	// InterpolationLinear is piecewise-linear interpolation.
	InterpolationLinear InterpolationType = "linear"
)

type config struct {
	name             string
	species          []string
	auxSpecies       []string
	electronDensity  string
	includeElectrons bool

	lumped        bool
	lumpedSpecies []string
	lumpedName    string

	balanceCheck       bool
	chargeBalanceCheck bool // recognized but inert, matching existing behavior
	numParticles       []int

	convertToMoles  bool
	convertToMeters float64

	fileLocation  string
	interpolation InterpolationType

	electronEnergy []string
	gasEnergy      []string

	eqConstants []string
	eqValues    []string
	eqVariables []string

	logger log.Logger
}

func makeConfig(opts ...Option) config {
	cfg := config{
		convertToMeters: 1,
		interpolation:   InterpolationSpline,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option configures [Parse].
type Option func(*config)

// WithName sets the network name used to prefix per-reaction auxiliary
// variable names, keeping them unique across multiple reaction blocks.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithSpecies sets the tracked (nonlinear) species list.
func WithSpecies(names ...string) Option {
	return func(c *config) { c.species = names }
}

// WithAuxSpecies sets the untracked auxiliary species list.
func WithAuxSpecies(names ...string) Option {
	return func(c *config) { c.auxSpecies = names }
}

// WithElectronDensity names the electron species.
func WithElectronDensity(name string) Option {
	return func(c *config) { c.electronDensity = name }
}

// WithIncludeElectrons enables electron-position bookkeeping on each
// reaction's reactant list.
func WithIncludeElectrons(include bool) Option {
	return func(c *config) { c.includeElectrons = include }
}

// WithLumped enables the lumped-species placeholder mechanism.
func WithLumped(enabled bool) Option {
	return func(c *config) { c.lumped = enabled }
}

// WithLumpedSpecies sets the concrete species substituted for the lumped
// placeholder.
func WithLumpedSpecies(names ...string) Option {
	return func(c *config) { c.lumpedSpecies = names }
}

// WithLumpedName sets the placeholder species name.
func WithLumpedName(name string) Option {
	return func(c *config) { c.lumpedName = name }
}

// WithBalanceCheck enables particle-conservation validation. The counts
// are positionally aligned with the tracked species list.
func WithBalanceCheck(counts ...int) Option {
	return func(c *config) {
		c.balanceCheck = true
		c.numParticles = counts
	}
}

// WithChargeBalanceCheck is recognized for compatibility but currently has
// no effect.
func WithChargeBalanceCheck(enabled bool) Option {
	return func(c *config) { c.chargeBalanceCheck = enabled }
}

// WithMoleConversion multiplies constant and expression rate coefficients
// by Avogadro's number per reaction order.
func WithMoleConversion(enabled bool) Option {
	return func(c *config) { c.convertToMoles = enabled }
}

// WithLengthFactor sets the length-unit conversion factor applied as
// factor^(3*(order-1)) to constant and expression rate coefficients.
func WithLengthFactor(factor float64) Option {
	return func(c *config) { c.convertToMeters = factor }
}

// WithFileLocation sets the directory probed for tabulated-rate files.
func WithFileLocation(dir string) Option {
	return func(c *config) { c.fileLocation = dir }
}

// WithInterpolation sets the tabulated-rate interpolation type.
func WithInterpolation(t InterpolationType) Option {
	return func(c *config) { c.interpolation = t }
}

// WithElectronEnergy names the electron energy variable(s).
func WithElectronEnergy(names ...string) Option {
	return func(c *config) { c.electronEnergy = names }
}

// WithGasEnergy names the gas energy variable(s).
func WithGasEnergy(names ...string) Option {
	return func(c *config) { c.gasEnergy = names }
}

// WithEquationConstants sets named constants available to rate
// expressions, with values positionally aligned to names.
func WithEquationConstants(names []string, values []string) Option {
	return func(c *config) {
		c.eqConstants = names
		c.eqValues = values
	}
}

// WithEquationVariables names solver variables that may appear in rate
// expressions and are resolved at solve time.
func WithEquationVariables(names ...string) Option {
	return func(c *config) { c.eqVariables = names }
}

// WithLogger sets the logger used for construction diagnostics.
func WithLogger(l log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// validate rejects configurations that cannot produce a usable network,
// before any reaction text is touched.
func (c *config) validate() error {
	if c.interpolation != InterpolationSpline &&
		c.interpolation != InterpolationLinear {
		return ErrConfig.With(
			slog.String("interpolation_type", string(c.interpolation)),
			slog.String("reason", "only 'spline' or 'linear' interpolations are possible"),
		)
	}

	if c.lumped && len(c.lumpedSpecies) == 0 {
		return ErrConfig.With(
			slog.String("reason", "lumped species enabled, but the list of lumped species is not set"),
		)
	}

	if c.lumped && c.lumpedName == "" {
		return ErrConfig.With(
			slog.String("reason", "lumped species enabled, but no lumped placeholder name is set"),
		)
	}

	if c.balanceCheck && len(c.numParticles) == 0 {
		return ErrConfig.With(
			slog.String("reason", "balance check enabled, but no particle counts are set; "+
				"indicate the number of particles in each species (e.g. O2 has 2, NH3 has 4)"),
		)
	}

	if c.balanceCheck && len(c.numParticles) != len(c.species) {
		return ErrConfig.With(
			slog.String("reason", "particle counts and species lists differ in length"),
			slog.Int("num_particles", len(c.numParticles)),
			slog.Int("species", len(c.species)),
		)
	}

	if c.includeElectrons && c.electronDensity == "" {
		return ErrConfig.With(
			slog.String("reason", "electron handling enabled, but electron_density does not name the electron species"),
		)
	}

	if len(c.eqConstants) != len(c.eqValues) {
		return ErrConfig.With(
			slog.String("reason", "equation constants and values differ in length"),
			slog.Int("constants", len(c.eqConstants)),
			slog.Int("values", len(c.eqValues)),
		)
	}

	for i, v := range c.eqValues {
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return ErrConfig.Wrap(err).With(
				slog.String("reason", "equation constant value is not numeric"),
				slog.String("constant", c.eqConstants[i]),
				slog.String("value", v),
			)
		}
	}

	for _, s := range c.species {
		if slices.Contains(c.auxSpecies, s) {
			return ErrConfig.With(
				slog.String("species", s),
				slog.String("reason", "included as both a species and aux species; "+
					"a species can be either a nonlinear variable or an auxiliary variable, not both"),
			)
		}
	}

	return nil
}

func (c *config) hasEnergyVariable() bool {
	return len(c.electronEnergy) > 0 || len(c.gasEnergy) > 0
}
