package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ardnew/rxn/chem"
	"github.com/ardnew/rxn/log"
)

// Dump compiles a network file and renders the expanded reaction table.
type Dump struct {
	Source string `arg:"" help:"Network file (YAML)" type:"existingfile"`
}

// Run executes the dump command.
func (d *Dump) Run(_ context.Context) error {
	nf, err := chem.LoadNetworkFile(d.Source)
	if err != nil {
		return err
	}

	network, err := nf.Compile(chem.WithLogger(log.Default()))
	if err != nil {
		return err
	}

	header := lipgloss.NewStyle().Bold(true)
	dim := lipgloss.NewStyle().Faint(true)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}

			if row >= 0 && row < len(network.Reactions) &&
				!network.Reactions[row].Buildable() {
				return dim
			}

			return lipgloss.NewStyle()
		}).
		Headers("#", "EQUATION", "KIND", "RATE", "ENERGY", "NOTES")

	for i := range network.Reactions {
		r := &network.Reactions[i]

		t.Row(
			strconv.Itoa(i),
			r.Equation,
			r.Rate.Kind.String(),
			rateColumn(r),
			strconv.FormatFloat(r.ThresholdEnergy, 'g', -1, 64),
			notesColumn(r),
		)
	}

	fmt.Println(t)

	return nil
}

func rateColumn(r *chem.Reaction) string {
	switch r.Rate.Kind {
	case chem.RateConstant:
		return strconv.FormatFloat(r.Rate.Value, 'g', -1, 64)
	case chem.RateEquation:
		return r.Rate.Expr
	case chem.RateEEDF:
		if r.Identifier != "" {
			return r.Identifier
		}

		return "EEDF"
	default:
		return ""
	}
}

func notesColumn(r *chem.Reaction) string {
	switch {
	case r.LumpedTemplate:
		return "lumped template"
	case r.SuperelasticOf != chem.NoSuperelastic:
		return "superelastic of " + strconv.Itoa(r.SuperelasticOf)
	case r.Elastic:
		return "elastic"
	case r.Reversible:
		return "reversible"
	default:
		return ""
	}
}
