package chem

import (
	"math"
	"slices"
)

// expandLumped replaces every reaction whose reactant list contains the
// lumped placeholder with one concrete reaction per configured lumped
// species, substituting the placeholder on both sides. Templates stay in
// the list, flagged non-instantiable, so previously recorded indices
// remain valid; concrete reactions are appended after all parsed ones.
func expandLumped(reactions []Reaction, cfg *config) ([]Reaction, error) {
	if !cfg.lumped {
		return reactions, nil
	}

	var templates []int

	for i := range reactions {
		if slices.Contains(reactions[i].Reactants, cfg.lumpedName) {
			reactions[i].LumpedTemplate = true
			templates = append(templates, i)
		}
	}

	for _, ti := range templates {
		t := reactions[ti]

		for _, species := range cfg.lumpedSpecies {
			reactants := substitute(t.Reactants, cfg.lumpedName, species)
			products := substitute(t.Products, cfg.lumpedName, species)

			// Rate coefficient, kind, and expression are copied verbatim
			// from the template.
			reactions = append(reactions, Reaction{
				Equation:        joinEquation(reactants, products),
				Reactants:       reactants,
				Products:        products,
				Rate:            t.Rate,
				ThresholdEnergy: t.ThresholdEnergy,
				EnergyChange:    t.EnergyChange,
				Elastic:         t.Elastic,
				Reversible:      t.Reversible,
				SuperelasticOf:  NoSuperelastic,
				Identifier:      t.Identifier,
			})
		}
	}

	return reactions, nil
}

func substitute(tokens []string, placeholder, species string) []string {
	out := make([]string, len(tokens))

	for i, tok := range tokens {
		if tok == placeholder {
			out[i] = species
		} else {
			out[i] = tok
		}
	}

	return out
}

// synthesizeSuperelastic appends, for every reversible reaction, the
// reverse reaction with reactant and product lists swapped (order
// preserved), threshold energy negated, and a back-reference to the
// forward reaction. Lumped templates are skipped; their concrete
// expansions carry the reversible flag and are synthesized instead.
//
// The rate source is not duplicated: synthesized reactions keep the
// forward kind and expression but a NaN value, and downstream consumers
// resolve the actual coefficient through SuperelasticOf.
func synthesizeSuperelastic(reactions []Reaction) []Reaction {
	parsed := len(reactions)

	for i := range parsed {
		fwd := &reactions[i]
		if !fwd.Reversible || fwd.LumpedTemplate {
			continue
		}

		rate := fwd.Rate
		rate.Value = math.NaN()

		reactions = append(reactions, Reaction{
			Equation:        joinEquation(fwd.Products, fwd.Reactants),
			Reactants:       slices.Clone(fwd.Products),
			Products:        slices.Clone(fwd.Reactants),
			Rate:            rate,
			ThresholdEnergy: -fwd.ThresholdEnergy,
			EnergyChange:    fwd.EnergyChange,
			SuperelasticOf:  i,
		})
	}

	return reactions
}
