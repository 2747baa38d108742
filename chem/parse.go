package chem

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Parse compiles reaction text into a validated [Network].
//
// Construction is strictly sequential: line tokenization, rate
// classification, lumped expansion, superelastic synthesis, stoichiometry,
// then the optional balance check and tabulated-rate file resolution. The
// first inconsistency aborts with a non-nil error and no network.
func Parse(text string, opts ...Option) (*Network, error) {
	cfg := makeConfig(opts...)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	lines, err := splitLines(text)
	if err != nil {
		return nil, err
	}

	reactions := make([]Reaction, 0, len(lines))

	for _, ln := range lines {
		r, err := ln.reaction(&cfg)
		if err != nil {
			return nil, err
		}

		reactions = append(reactions, r)
	}

	reactions, err = expandLumped(reactions, &cfg)
	if err != nil {
		return nil, err
	}

	reactions = synthesizeSuperelastic(reactions)

	prefix := networkName(cfg.name)

	for i := range reactions {
		reactions[i].AuxName = prefix + "reaction_rate" + strconv.Itoa(i)
		reactions[i].CoefficientName = "rate_constant" + strconv.Itoa(i)
	}

	n := &Network{
		Reactions:  reactions,
		species:    cfg.species,
		auxSpecies: cfg.auxSpecies,
	}

	n.computeStoichiometry(&cfg)

	if err := n.checkEnergyVariables(&cfg); err != nil {
		return nil, err
	}

	if err := n.checkBalance(&cfg); err != nil {
		return nil, err
	}

	if err := n.resolveRateFiles(&cfg); err != nil {
		return nil, err
	}

	n.indexKinds()

	cfg.logger.LogAttrs(context.Background(), slog.LevelDebug,
		"network compiled",
		slog.Int("reactions", len(n.Reactions)),
		slog.Int("participants", len(n.Participants)),
		slog.Int("constant", n.NumOfKind(RateConstant)),
		slog.Int("equation", n.NumOfKind(RateEquation)),
		slog.Int("eedf", n.NumOfKind(RateEEDF)),
	)

	return n, nil
}

// ParseReader reads all of r and compiles it with [Parse].
func ParseReader(r io.Reader, opts ...Option) (*Network, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, WrapError(err)
	}

	return Parse(string(data), opts...)
}

// line is one tokenized reaction record prior to classification.
type line struct {
	number   int    // 1-based source line number
	equation string // trimmed text before ':'
	rateSpec string // trimmed text between ':' and '(' or '['

	threshold string // raw bracket contents
	hasEnergy bool

	exprSource string // raw brace contents
	hasExpr    bool

	identifier string

	reactants  []string
	products   []string
	reversible bool
}

// splitLines breaks raw reaction text into per-line records.
//
// A line is skipped only when its first non-blank character is '#'. A '#'
// anywhere else is ordinary reaction text and is NOT treated as a trailing
// comment; a comment appended to a valid line would corrupt rate parsing.
// This matches long-standing behavior and is deliberately not "fixed".
func splitLines(text string) ([]line, error) {
	var lines []line

	for num, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		ln, err := parseLine(num+1, trimmed)
		if err != nil {
			return nil, err
		}

		lines = append(lines, ln)
	}

	return lines, nil
}

// fieldEnd treats an absent delimiter as "end of line" so field slicing
// mirrors substring-to-npos semantics.
func fieldEnd(idx, length int) int {
	if idx < 0 {
		return length
	}

	return idx
}

// enclosed returns the text between start and its closing delimiter at
// end. A missing or out-of-order closer yields the rest of the line.
func enclosed(text string, start, end int) string {
	stop := fieldEnd(end, len(text))
	if stop < start+1 {
		stop = len(text)
	}

	return text[start+1 : stop]
}

// parseLine splits a single reaction line into its fields:
//
//	equation : rate (identifier) [threshold] {expression}
//
// The first ':' separates equation from rate spec. The rate field ends at
// the first '(' when one occurs before the first '[', otherwise at the
// first '[' — this lets a parenthesized identifier coexist with a
// bracketed energy value. Braces take precedence over both for rate
// classification.
func parseLine(number int, text string) (line, error) {
	ln := line{number: number}

	colon := strings.IndexByte(text, ':')
	if colon < 0 {
		return ln, ErrParse.With(
			slog.Int("line", number),
			slog.String("text", text),
			slog.String("reason", "missing ':' between equation and rate coefficient"),
		)
	}

	bracket := strings.IndexByte(text, '[')
	bracketEnd := strings.IndexByte(text, ']')
	brace := strings.IndexByte(text, '{')
	braceEnd := strings.IndexByte(text, '}')
	paren := strings.IndexByte(text, '(')
	parenEnd := strings.IndexByte(text, ')')

	ln.equation = strings.TrimSpace(text[:colon])

	rateEnd := fieldEnd(bracket, len(text))
	if paren >= 0 && paren < fieldEnd(bracket, len(text)) {
		rateEnd = paren
	}

	if rateEnd < colon+1 {
		rateEnd = colon + 1
	}

	ln.rateSpec = strings.TrimSpace(text[colon+1 : rateEnd])

	if bracket >= 0 {
		ln.hasEnergy = true
		ln.threshold = enclosed(text, bracket, bracketEnd)
	}

	if brace >= 0 {
		ln.hasExpr = true
		ln.exprSource = enclosed(text, brace, braceEnd)
	}

	// A parenthesized tag identifies the reaction (and its lookup-table
	// file) only when the rate is not a brace expression.
	if paren >= 0 && !ln.hasExpr {
		ln.identifier = enclosed(text, paren, parenEnd)
	}

	if err := ln.tokenizeEquation(); err != nil {
		return ln, err
	}

	return ln, nil
}

// tokenizeEquation splits the equation substring into reactant and product
// tokens. '+' tokens are dropped; the first arrow token switches the
// active side, and the reversible arrows also flag the reaction for
// superelastic synthesis.
func (ln *line) tokenizeEquation() error {
	onReactants := true

	for _, tok := range strings.Fields(ln.equation) {
		switch tok {
		case "+":
			continue
		case "=", "->", "=>":
			ln.reversible = false
			onReactants = false

			continue
		case "<=>", "<->":
			ln.reversible = true
			onReactants = false

			continue
		}

		if onReactants {
			ln.reactants = append(ln.reactants, tok)
		} else {
			ln.products = append(ln.products, tok)
		}
	}

	if len(ln.reactants) == 0 {
		return ErrParse.With(
			slog.Int("line", ln.number),
			slog.String("equation", ln.equation),
			slog.String("reason", "reaction has no reactants"),
		)
	}

	return nil
}

// reaction classifies the tokenized line into a [Reaction].
func (ln *line) reaction(cfg *config) (Reaction, error) {
	r := Reaction{
		Equation:       ln.equation,
		Reactants:      ln.reactants,
		Products:       ln.products,
		Reversible:     ln.reversible,
		SuperelasticOf: NoSuperelastic,
		Identifier:     ln.identifier,
		EnergyChange:   ln.hasEnergy,
	}

	switch strings.TrimSpace(ln.threshold) {
	case "":
		r.ThresholdEnergy = 0
	case "elastic":
		r.ThresholdEnergy = 0
		r.Elastic = true
	default:
		v, err := strconv.ParseFloat(strings.TrimSpace(ln.threshold), 64)
		if err != nil {
			return r, ErrThreshold.Wrap(err).With(
				slog.Int("line", ln.number),
				slog.String("equation", ln.equation),
				slog.String("threshold", ln.threshold),
			)
		}

		r.ThresholdEnergy = v
	}

	rate, err := classifyRate(ln, cfg)
	if err != nil {
		return r, err
	}

	r.Rate = rate

	return r, nil
}

// joinEquation renders reactant and product token lists back into
// canonical equation text.
func joinEquation(reactants, products []string) string {
	return fmt.Sprintf("%s -> %s",
		strings.Join(reactants, " + "),
		strings.Join(products, " + "),
	)
}
