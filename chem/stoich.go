package chem

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// computeStoichiometry builds the global participant registry from every
// token across all reactions (after expansion), derives per-reaction
// coefficients against it, and restricts each reaction's exposed
// stoichiometry to tracked species. Untracked background and auxiliary
// species are dropped from the per-reaction map even though they still
// influence rate scaling.
func (n *Network) computeStoichiometry(cfg *config) {
	var all []string

	for i := range n.Reactions {
		all = append(all, n.Reactions[i].Reactants...)
		all = append(all, n.Reactions[i].Products...)
	}

	slices.Sort(all)
	n.Participants = slices.Compact(all)

	n.coefficients = make([][]int, len(n.Reactions))

	for i := range n.Reactions {
		r := &n.Reactions[i]

		coeff := make([]int, len(n.Participants))

		for _, tok := range r.Reactants {
			if j, ok := slices.BinarySearch(n.Participants, tok); ok {
				coeff[j]--
			}
		}

		for _, tok := range r.Products {
			if j, ok := slices.BinarySearch(n.Participants, tok); ok {
				coeff[j]++
			}
		}

		n.coefficients[i] = coeff

		// Tracked species only. A species appearing on both sides stays
		// in the map with coefficient zero, mirroring the per-reaction
		// participant lists the consumer iterates.
		r.Stoichiometry = make(map[string]int)

		for _, species := range cfg.species {
			if n.occurs(r, species) {
				r.Stoichiometry[species] = count(r.Products, species) -
					count(r.Reactants, species)
			}
		}

		if cfg.includeElectrons && cfg.electronDensity != "" {
			for k, tok := range r.Reactants {
				if tok == cfg.electronDensity {
					r.ElectronIndex = k
				}
			}
		}
	}

	// Stable index of each tracked species in the participant registry,
	// or -1 for a species that never appears in any reaction.
	n.speciesIndex = make([]int, len(cfg.species))

	for i, species := range cfg.species {
		if j, ok := slices.BinarySearch(n.Participants, species); ok {
			n.speciesIndex[i] = j
		} else {
			n.speciesIndex[i] = -1
		}
	}
}

func (n *Network) occurs(r *Reaction, species string) bool {
	return slices.Contains(r.Reactants, species) ||
		slices.Contains(r.Products, species)
}

func count(tokens []string, name string) int {
	c := 0

	for _, tok := range tokens {
		if tok == name {
			c++
		}
	}

	return c
}

// checkEnergyVariables rejects networks whose reactions declare energy
// changes when no electron or gas energy variable is configured to absorb
// them.
func (n *Network) checkEnergyVariables(cfg *config) error {
	if cfg.hasEnergyVariable() {
		return nil
	}

	for i := range n.Reactions {
		if n.Reactions[i].EnergyChange {
			return ErrEnergyMissing.With(
				slog.String("equation", n.Reactions[i].Equation),
			)
		}
	}

	return nil
}

// checkBalance verifies particle conservation for every instantiable
// reaction: the summed particle counts of reactants and products must
// match, skipping the electron species since electron-impact collisions
// are exempt. All unbalanced equations are collected and reported together
// in one fatal diagnostic.
func (n *Network) checkBalance(cfg *config) error {
	if !cfg.balanceCheck {
		return nil
	}

	weight := make(map[string]int, len(cfg.species))
	for i, species := range cfg.species {
		weight[species] = cfg.numParticles[i]
	}

	var faulty []string

	for i := range n.Reactions {
		r := &n.Reactions[i]
		if r.LumpedTemplate {
			continue
		}

		rSum, err := particleSum(r, r.Reactants, weight, cfg)
		if err != nil {
			return err
		}

		pSum, err := particleSum(r, r.Products, weight, cfg)
		if err != nil {
			return err
		}

		if rSum != pSum {
			faulty = append(faulty, r.Equation)
		}
	}

	if len(faulty) > 0 {
		return ErrUnbalanced.With(
			slog.String("equations", "\n    "+strings.Join(faulty, "\n    ")),
			slog.Int("count", len(faulty)),
		)
	}

	return nil
}

// particleSum adds up the particle weights of the given side of a
// reaction. A non-electron token without a configured weight means the
// species list is incomplete, which would silently corrupt the sums, so
// it fails with a diagnostic naming the closest configured species.
func particleSum(
	r *Reaction,
	tokens []string,
	weight map[string]int,
	cfg *config,
) (int, error) {
	sum := 0

	for _, tok := range tokens {
		if tok == cfg.electronDensity {
			continue
		}

		w, ok := weight[tok]
		if !ok {
			attrs := []slog.Attr{
				slog.String("species", tok),
				slog.String("equation", r.Equation),
				slog.String("reason", "species has no particle count; "+
					"balance checking requires every non-electron participant "+
					"to appear in the species list"),
			}

			if matches := fuzzy.Find(tok, cfg.species); len(matches) > 0 {
				attrs = append(attrs,
					slog.String("closest", matches[0].Str))
			}

			return 0, ErrConfig.With(attrs...)
		}

		sum += w
	}

	return sum, nil
}

// indexKinds records reaction indices per rate kind for the downstream
// consumer.
func (n *Network) indexKinds() {
	n.byKind = make(map[RateKind][]int, 3)

	for i := range n.Reactions {
		k := n.Reactions[i].Rate.Kind
		n.byKind[k] = append(n.byKind[k], i)
	}
}
