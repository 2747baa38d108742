package chem

import (
	"slices"

	"github.com/expr-lang/expr/vm"
)

// RateKind identifies how a reaction's rate coefficient is obtained.
type RateKind int

const (
	// RateConstant is a literal numeric rate coefficient.
	RateConstant RateKind = iota

	// RateEquation is an algebraic expression evaluated at solve time.
	RateEquation

	// RateEEDF is an externally tabulated coefficient resolved against the
	// electron energy distribution function.
	RateEEDF
)

// String returns the canonical name of the rate kind.
func (k RateKind) String() string {
	switch k {
	case RateConstant:
		return "Constant"
	case RateEquation:
		return "Equation"
	case RateEEDF:
		return "EEDF"
	default:
		return "Unknown"
	}
}

// Rate is the rate-coefficient source of a single reaction.
// Exactly one kind applies; Value is NaN unless Kind is [RateConstant].
type Rate struct {
	Kind RateKind

	// Value is the unit-converted constant coefficient, or NaN.
	Value float64

	// Expr is the expression source with the unit-conversion suffix
	// appended. Empty unless Kind is [RateEquation].
	Expr string

	// Program is the compiled form of Expr.
	Program *vm.Program
}

// NoSuperelastic marks a reaction that was not synthesized from a
// reversible one.
const NoSuperelastic = -1

// Reaction is one row of the compiled network.
type Reaction struct {
	// Equation is the trimmed textual form, e.g. "em + Ar -> em + Ar*".
	Equation string

	// Reactants and Products are ordered species tokens. A doubly
	// consumed species appears twice.
	Reactants []string
	Products  []string

	Rate Rate

	// ThresholdEnergy is the energy change in eV. Zero unless a bracket
	// was present; negated on superelastic reactions.
	ThresholdEnergy float64

	// EnergyChange reports whether an energy bracket was present at all,
	// including "[elastic]" and explicit zero values.
	EnergyChange bool

	// Elastic overrides energy bookkeeping for elastic collisions.
	Elastic bool

	// Reversible reports whether the equation used <=> or <->.
	Reversible bool

	// SuperelasticOf is the index of the originating reversible reaction,
	// or [NoSuperelastic]. The forward rate source is shared through this
	// back-reference rather than duplicated.
	SuperelasticOf int

	// LumpedTemplate marks a reaction containing the lumped placeholder
	// that was replaced by concrete per-species reactions. Templates are
	// excluded from downstream kernel construction.
	LumpedTemplate bool

	// Identifier is the parenthesized lookup tag. For EEDF reactions it is
	// rewritten to the resolved file name (including any probed suffix).
	Identifier string

	// AuxName and CoefficientName are the auxiliary-variable names the
	// downstream consumer registers per reaction.
	AuxName         string
	CoefficientName string

	// Stoichiometry maps each tracked species appearing in this reaction
	// to its net signed coefficient.
	Stoichiometry map[string]int

	// ElectronIndex is the reactant position of the electron species when
	// electron handling is enabled, else zero.
	ElectronIndex int
}

// Buildable reports whether downstream kernel construction should
// instantiate this reaction.
func (r *Reaction) Buildable() bool { return !r.LumpedTemplate }

// Order is the number of reactant tokens, i.e. the kinetic order used for
// unit conversion.
func (r *Reaction) Order() int { return len(r.Reactants) }

// Network is the fully expanded, validated reaction list together with the
// participant registry. It is immutable once returned by [Parse].
type Network struct {
	// Reactions holds every parsed and synthesized reaction in index
	// order. Indices recorded during expansion remain valid because the
	// list is append-only.
	Reactions []Reaction

	// Participants is the sorted deduplicated set of every token
	// appearing as reactant or product anywhere in the network.
	Participants []string

	species      []string
	auxSpecies   []string
	speciesIndex []int   // index into Participants per tracked species
	coefficients [][]int // per reaction, aligned with Participants
	byKind       map[RateKind][]int
}

// Species returns the tracked species names in configuration order.
func (n *Network) Species() []string { return slices.Clone(n.species) }

// AuxSpecies returns the untracked auxiliary species names.
func (n *Network) AuxSpecies() []string { return slices.Clone(n.auxSpecies) }

// ParticipantIndex returns the stable index of a participant token.
func (n *Network) ParticipantIndex(name string) (int, bool) {
	return slices.BinarySearch(n.Participants, name)
}

// SpeciesIndex returns the participant index of the i-th tracked species,
// or -1 if that species never appears in any reaction.
func (n *Network) SpeciesIndex(i int) int {
	if i < 0 || i >= len(n.speciesIndex) {
		return -1
	}

	return n.speciesIndex[i]
}

// Coefficient returns the net stoichiometric coefficient of a participant
// in reaction i, computed against the global participant registry.
func (n *Network) Coefficient(i int, participant string) int {
	j, ok := n.ParticipantIndex(participant)
	if !ok || i < 0 || i >= len(n.coefficients) {
		return 0
	}

	return n.coefficients[i][j]
}

// OfKind returns the indices of all reactions with the given rate kind, in
// ascending order.
func (n *Network) OfKind(k RateKind) []int {
	return slices.Clone(n.byKind[k])
}

// NumOfKind returns the number of reactions with the given rate kind.
func (n *Network) NumOfKind(k RateKind) int { return len(n.byKind[k]) }
