package chem

import (
	"log/slog"
	"math"
	"strconv"

	"github.com/expr-lang/expr"
)

// Avogadro's number, applied when mole conversion is requested.
const avogadro = 6.022e23

// conversionFactor computes the unit-conversion multiplier for a rate
// coefficient of the given kinetic order. An n-th order coefficient's
// units scale as (concentration)^(1-n), so the exponent is order-1.
func (c *config) conversionFactor(order int) float64 {
	n := float64(order - 1)

	na := 1.0
	if c.convertToMoles {
		na = avogadro
	}

	return math.Pow(na, n) * math.Pow(c.convertToMeters, 3*n)
}

// classifyRate assigns exactly one rate kind to a tokenized line and
// applies unit conversion. Precedence follows the original convention:
// the literal EEDF, then a brace-delimited expression, then a numeric
// constant. Anything else is fatal.
func classifyRate(ln *line, cfg *config) (Rate, error) {
	factor := cfg.conversionFactor(len(ln.reactants))

	switch {
	case ln.rateSpec == "EEDF":
		return Rate{Kind: RateEEDF, Value: math.NaN()}, nil

	case ln.hasExpr:
		// The conversion factor rides along as a literal multiplicative
		// suffix so the expression stays self-contained downstream.
		source := ln.exprSource + "*" +
			strconv.FormatFloat(factor, 'g', -1, 64)

		program, err := expr.Compile(source, expr.Env(cfg.exprEnv()))
		if err != nil {
			return Rate{}, ErrExprCompile.Wrap(err).With(
				slog.Int("line", ln.number),
				slog.String("equation", ln.equation),
				slog.String("source", source),
			)
		}

		return Rate{
			Kind:    RateEquation,
			Value:   math.NaN(),
			Expr:    source,
			Program: program,
		}, nil

	default:
		v, err := strconv.ParseFloat(ln.rateSpec, 64)
		if err != nil {
			return Rate{}, ErrRateSpec.With(
				slog.Int("line", ln.number),
				slog.String("rate", ln.rateSpec),
				slog.String("accepted", "constant (A + B -> C : 10), "+
					"equation (A + B -> C : {1e-4*exp(10)}), "+
					"or EEDF (A + B -> C : EEDF)"),
			)
		}

		return Rate{Kind: RateConstant, Value: v * factor}, nil
	}
}

// exprEnv builds the compilation environment for rate expressions:
// configured constants bound to their numeric values, solver variables and
// energy variables bound to float64 exemplars, and the usual math
// builtins.
func (c *config) exprEnv() map[string]any {
	env := map[string]any{
		"exp":  math.Exp,
		"log":  math.Log,
		"log2": math.Log2,
		"sqrt": math.Sqrt,
		"pow":  math.Pow,
	}

	for i, name := range c.eqConstants {
		// Values were validated numeric in config.validate.
		v, _ := strconv.ParseFloat(c.eqValues[i], 64)
		env[name] = v
	}

	for _, name := range c.eqVariables {
		env[name] = float64(0)
	}

	for _, name := range c.electronEnergy {
		env[name] = float64(0)
	}

	for _, name := range c.gasEnergy {
		env[name] = float64(0)
	}

	return env
}
