// Package quotient computes the four zerofier-inverse codewords and
// composes them with an AIR constraint evaluator to build the quotient
// table (spec §4.9), grounded on core/field_batch.go's batch-inversion
// idiom.
package quotient

import (
	"github.com/vybium/starkcore/internal/starkcore/air"
	"github.com/vybium/starkcore/internal/starkcore/bfield"
	"github.com/vybium/starkcore/internal/starkcore/domain"
	"github.com/vybium/starkcore/internal/starkcore/xfield"
)

// Zerofiers holds the four zerofier-inverse codewords over the quotient
// domain Q, given the trace domain's length T and generator g (spec §4.9).
type Zerofiers struct {
	Initial     []xfield.Element
	Consistency []xfield.Element
	Transition  []xfield.Element
	Terminal    []xfield.Element
}

// Compute evaluates the four zerofiers directly at every point of q (not
// their inverses) and then batch-inverts each of the four codewords
// separately (one field inversion per codeword), matching the teacher's
// BatchInversion idiom (core/field_batch.go) of accumulating many
// inversions into a single one.
func Compute(q domain.Domain, traceDomain domain.Domain) Zerofiers {
	T := uint64(traceDomain.Length)
	gInv := traceDomain.Generator.Inv()

	points := q.Elements()
	n := len(points)

	initial := make([]bfield.Element, n)
	consistency := make([]bfield.Element, n)
	transition := make([]bfield.Element, n)
	terminal := make([]bfield.Element, n)

	for i, x := range points {
		initial[i] = x.Sub(bfield.One)
		consistency[i] = x.Exp(T).Sub(bfield.One)
		transition[i] = x.Exp(T).Sub(bfield.One) // same vanishing set as consistency; the (x - g^-1) numerator is applied after inversion
		terminal[i] = x.Sub(gInv)
	}

	initialInv := bfield.BatchInverse(initial)
	consistencyInv := bfield.BatchInverse(consistency)
	transitionDenomInv := bfield.BatchInverse(transition)
	terminalInv := bfield.BatchInverse(terminal)

	out := Zerofiers{
		Initial:     liftAll(initialInv),
		Consistency: liftAll(consistencyInv),
		Transition:  make([]xfield.Element, n),
		Terminal:    liftAll(terminalInv),
	}
	for i, x := range points {
		numerator := x.Sub(gInv)
		out.Transition[i] = xfield.FromB(numerator.Mul(transitionDenomInv[i]))
	}
	return out
}

func liftAll(elements []bfield.Element) []xfield.Element {
	out := make([]xfield.Element, len(elements))
	for i, e := range elements {
		out[i] = xfield.FromB(e)
	}
	return out
}

// Section names the four output slices of the quotient table, in the fixed
// order spec §4.9 requires.
type Section struct {
	Kind air.QuotientSection
	Data [][]xfield.Element // Data[i] is constraint i's codeword over Q
}

// AllQuotients implements spec §4.9's all_quotients: allocate the four
// sections (sized from the AIR's published constraint counts), fill each
// sequentially (each section's own fill is itself embarrassingly parallel
// per constraint, spec §5), and return them in {initial, consistency,
// transition, terminal} order.
func AllQuotients(a air.AIR, baseQ, extQ [][]xfield.Element, traceDomain, quotientDomain domain.Domain, challenges []xfield.Element) []Section {
	z := Compute(quotientDomain, traceDomain)
	n := quotientDomain.Length

	initial := allocSection(a.NumQuotients(air.Initial), n)
	a.FillInitial(baseQ, extQ, initial, z.Initial, challenges)

	consistency := allocSection(a.NumQuotients(air.Consistency), n)
	a.FillConsistency(baseQ, extQ, consistency, z.Consistency, challenges)

	transition := allocSection(a.NumQuotients(air.Transition), n)
	a.FillTransition(baseQ, extQ, transition, z.Transition, challenges, traceDomain, quotientDomain)

	terminal := allocSection(a.NumQuotients(air.Terminal), n)
	a.FillTerminal(baseQ, extQ, terminal, z.Terminal, challenges)

	return []Section{
		{Kind: air.Initial, Data: initial},
		{Kind: air.Consistency, Data: consistency},
		{Kind: air.Transition, Data: transition},
		{Kind: air.Terminal, Data: terminal},
	}
}

func allocSection(numConstraints, rows int) [][]xfield.Element {
	out := make([][]xfield.Element, numConstraints)
	for i := range out {
		out[i] = make([]xfield.Element, rows)
	}
	return out
}

// NumQuotients returns the total column count across all four sections, the
// width of the quotient table spec §4.9 describes.
func NumQuotients(a air.AIR) int {
	return a.NumQuotients(air.Initial) + a.NumQuotients(air.Consistency) + a.NumQuotients(air.Transition) + a.NumQuotients(air.Terminal)
}
