package chem

import (
	"os"

	"github.com/goccy/go-yaml"
)

// NetworkFile is a complete reaction-network document: the configuration
// options plus the reaction text, loadable from a single YAML file. Field
// names match the option names accepted by the upstream input format.
type NetworkFile struct {
	Name               string   `yaml:"name"`
	Species            []string `yaml:"species"`
	AuxSpecies         []string `yaml:"aux_species"`
	ElectronDensity    string   `yaml:"electron_density"`
	IncludeElectrons   bool     `yaml:"include_electrons"`
	LumpedSpecies      bool     `yaml:"lumped_species"`
	Lumped             []string `yaml:"lumped"`
	LumpedName         string   `yaml:"lumped_name"`
	BalanceCheck       bool     `yaml:"balance_check"`
	ChargeBalanceCheck bool     `yaml:"charge_balance_check"`
	NumParticles       []int    `yaml:"num_particles"`
	ConvertToMoles     bool     `yaml:"convert_to_moles"`
	ConvertToMeters    float64  `yaml:"convert_to_meters"`
	FileLocation       string   `yaml:"file_location"`
	InterpolationType  string   `yaml:"interpolation_type"`
	ElectronEnergy     []string `yaml:"electron_energy"`
	GasEnergy          []string `yaml:"gas_energy"`
	EquationConstants  []string `yaml:"equation_constants"`
	EquationValues     []string `yaml:"equation_values"`
	EquationVariables  []string `yaml:"equation_variables"`
	Reactions          string   `yaml:"reactions"`
}

// LoadNetworkFile reads and decodes a YAML network document.
func LoadNetworkFile(path string) (*NetworkFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapError(err)
	}

	return DecodeNetworkFile(data)
}

// DecodeNetworkFile decodes a YAML network document from bytes.
func DecodeNetworkFile(data []byte) (*NetworkFile, error) {
	var nf NetworkFile

	if err := yaml.Unmarshal(data, &nf); err != nil {
		return nil, ErrConfig.Wrap(err)
	}

	return &nf, nil
}

// Options maps the document fields onto [Parse] options.
func (nf *NetworkFile) Options() []Option {
	opts := []Option{
		WithName(nf.Name),
		WithSpecies(nf.Species...),
		WithAuxSpecies(nf.AuxSpecies...),
		WithElectronDensity(nf.ElectronDensity),
		WithIncludeElectrons(nf.IncludeElectrons),
		WithLumped(nf.LumpedSpecies),
		WithLumpedSpecies(nf.Lumped...),
		WithLumpedName(nf.LumpedName),
		WithChargeBalanceCheck(nf.ChargeBalanceCheck),
		WithMoleConversion(nf.ConvertToMoles),
		WithFileLocation(nf.FileLocation),
		WithElectronEnergy(nf.ElectronEnergy...),
		WithGasEnergy(nf.GasEnergy...),
		WithEquationConstants(nf.EquationConstants, nf.EquationValues),
		WithEquationVariables(nf.EquationVariables...),
	}

	if nf.BalanceCheck {
		opts = append(opts, WithBalanceCheck(nf.NumParticles...))
	}

	// An omitted length factor means no conversion, not a zero factor.
	if nf.ConvertToMeters != 0 {
		opts = append(opts, WithLengthFactor(nf.ConvertToMeters))
	}

	if nf.InterpolationType != "" {
		opts = append(opts,
			WithInterpolation(InterpolationType(nf.InterpolationType)))
	}

	return opts
}

// Compile parses the document's reaction text with its own options.
func (nf *NetworkFile) Compile(opts ...Option) (*Network, error) {
	return Parse(nf.Reactions, append(nf.Options(), opts...)...)
}

// networkName joins a non-empty network name to the auxiliary-variable
// prefix with the separator the input format uses.
func networkName(name string) string {
	if name == "" {
		return ""
	}

	return name + "_"
}
