// Package chem compiles a textual reaction-network description into a
// validated in-memory chemistry model.
//
// A network is written one reaction per line:
//
//	em + Ar -> em + em + Ar+  : EEDF [15.76] (ionization)
//	Ar* + Ar* -> Ar+ + Ar + em : 5e-10
//	em + Ar <=> em + Ar*       : {1.2e-8 * exp(-11.5/Te)} [11.5]
//
// The text before the colon is the reaction equation. The rate specification
// after the colon takes one of three forms: a numeric constant, an algebraic
// expression in curly braces, or the literal EEDF naming an externally
// tabulated coefficient. Square brackets carry the threshold (gain/loss)
// energy in eV, or the word elastic. Parentheses carry an identifier used to
// locate the tabulated-rate file for EEDF reactions. Lines whose first
// non-blank character is '#' are skipped.
//
// [Parse] runs the full pipeline — line tokenization, rate classification,
// lumped-species expansion, superelastic synthesis, stoichiometry, and the
// optional particle-balance check — and returns an immutable [Network].
// Every inconsistency it detects is a fatal configuration error: either the
// whole network is valid, or nothing is handed downstream.
package chem
