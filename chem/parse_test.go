package chem

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"
)

func TestParse_RoundTrip(t *testing.T) {
	n, err := Parse("A + B -> C : 1e-10", WithSpecies("A", "B", "C"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if len(n.Reactions) != 1 {
		t.Fatalf("expected 1 reaction, got %d", len(n.Reactions))
	}

	r := n.Reactions[0]

	if !slices.Equal(r.Reactants, []string{"A", "B"}) {
		t.Errorf("reactants = %v", r.Reactants)
	}

	if !slices.Equal(r.Products, []string{"C"}) {
		t.Errorf("products = %v", r.Products)
	}

	if r.Rate.Kind != RateConstant {
		t.Errorf("rate kind = %v, want Constant", r.Rate.Kind)
	}

	if math.Abs(r.Rate.Value-1e-10) > 1e-25 {
		t.Errorf("rate value = %v, want 1e-10", r.Rate.Value)
	}

	if r.Reversible {
		t.Error("reaction marked reversible")
	}

	if r.Equation != "A + B -> C" {
		t.Errorf("equation = %q", r.Equation)
	}
}

func TestParse_TokenInvariants(t *testing.T) {
	text := `
A + B -> C + D : 1.0
E + E = F : 2.0
G <-> H + H : 3.0
`

	n, err := Parse(text, WithSpecies("A", "B", "C", "D", "E", "F", "G", "H"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	separators := []string{"+", "=", "->", "=>", "<=>", "<->"}

	for i, r := range n.Reactions {
		if len(r.Reactants)+len(r.Products) < 2 {
			t.Errorf("reaction %d has %d total terms", i,
				len(r.Reactants)+len(r.Products))
		}

		for _, tok := range append(slices.Clone(r.Reactants), r.Products...) {
			if slices.Contains(separators, tok) {
				t.Errorf("reaction %d contains separator token %q", i, tok)
			}
		}
	}
}

func TestParse_Comments(t *testing.T) {
	text := `
# this line is skipped
   # so is this one
A -> B : 1.0
`

	n, err := Parse(text, WithSpecies("A", "B"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if len(n.Reactions) != 1 {
		t.Fatalf("expected 1 reaction, got %d", len(n.Reactions))
	}
}

// A '#' that is not the first non-blank character is ordinary reaction
// text, not a trailing comment. This pins existing behavior.
func TestParse_MidlineHashIsNotComment(t *testing.T) {
	n, err := Parse("A + B# -> C : 1.0", WithSpecies("A", "C"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if !slices.Contains(n.Reactions[0].Reactants, "B#") {
		t.Errorf("reactants = %v, want B# token preserved",
			n.Reactions[0].Reactants)
	}
}

func TestParse_MissingColon(t *testing.T) {
	_, err := Parse("A + B -> C")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("err = %v, want ErrParse", err)
	}
}

func TestParse_BadThreshold(t *testing.T) {
	_, err := Parse("A -> B : 1.0 [bogus]",
		WithSpecies("A", "B"), WithElectronEnergy("Te"))
	if !errors.Is(err, ErrThreshold) {
		t.Fatalf("err = %v, want ErrThreshold", err)
	}

	if !strings.Contains(err.Error(), "threshold") {
		t.Errorf("error message %q does not mention threshold", err)
	}
}

func TestParse_ElasticBracket(t *testing.T) {
	n, err := Parse("em + Ar -> em + Ar : 1e-8 [elastic]",
		WithSpecies("em"), WithElectronEnergy("Te"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	r := n.Reactions[0]

	if !r.Elastic {
		t.Error("elastic flag not set")
	}

	if r.ThresholdEnergy != 0 {
		t.Errorf("threshold = %v, want 0", r.ThresholdEnergy)
	}
}

func TestParse_ThresholdEnergy(t *testing.T) {
	n, err := Parse("em + Ar -> em + em + Ar+ : EEDF [15.76]",
		WithSpecies("em", "Ar+"), WithElectronEnergy("Te"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if got := n.Reactions[0].ThresholdEnergy; got != 15.76 {
		t.Errorf("threshold = %v, want 15.76", got)
	}
}

// A parenthesized identifier can coexist with a bracketed energy value:
// the rate field ends at '(' when it precedes '['.
func TestParseLine_IdentifierBeforeBracket(t *testing.T) {
	ln, err := parseLine(1, "em + Ar -> em + em + Ar+ : EEDF (ioniz) [15.76]")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if ln.rateSpec != "EEDF" {
		t.Errorf("rateSpec = %q, want EEDF", ln.rateSpec)
	}

	if ln.identifier != "ioniz" {
		t.Errorf("identifier = %q, want ioniz", ln.identifier)
	}

	if ln.threshold != "15.76" {
		t.Errorf("threshold = %q, want 15.76", ln.threshold)
	}
}

func TestParseLine_BracketWithoutIdentifier(t *testing.T) {
	ln, err := parseLine(1, "em + Ar -> em + Ar* : 5e-9 [11.5]")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if ln.rateSpec != "5e-9" {
		t.Errorf("rateSpec = %q, want 5e-9", ln.rateSpec)
	}

	if ln.identifier != "" {
		t.Errorf("identifier = %q, want empty", ln.identifier)
	}
}

func TestParseLine_BraceExpression(t *testing.T) {
	ln, err := parseLine(1, "A + B -> C : {1e-4*exp(10)}")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if !ln.hasExpr {
		t.Fatal("expression not captured")
	}

	if ln.exprSource != "1e-4*exp(10)" {
		t.Errorf("exprSource = %q", ln.exprSource)
	}
}

func TestParse_NoReactants(t *testing.T) {
	_, err := Parse("-> C : 1.0", WithSpecies("C"))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("err = %v, want ErrParse", err)
	}
}

func TestParse_AuxNames(t *testing.T) {
	n, err := Parse("A -> B : 1.0\nB -> A : 2.0",
		WithSpecies("A", "B"), WithName("argon"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if got := n.Reactions[0].AuxName; got != "argon_reaction_rate0" {
		t.Errorf("aux name = %q", got)
	}

	if got := n.Reactions[1].CoefficientName; got != "rate_constant1" {
		t.Errorf("coefficient name = %q", got)
	}
}
