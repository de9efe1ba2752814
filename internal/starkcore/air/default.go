package air

import (
	"github.com/vybium/starkcore/internal/starkcore/domain"
	"github.com/vybium/starkcore/internal/starkcore/tables"
	"github.com/vybium/starkcore/internal/starkcore/xfield"
)

// DefaultAIR is a small, honest constraint set covering the nine
// non-degree-lowering tables with exactly one constraint per table per
// section. It exists so the quotient engine has a concrete collaborator to
// drive end to end; per spec §1 the real per-table AIR constraint logic is
// an external collaborator and out of scope for this repo.
type DefaultAIR struct{}

var nonDegreeLowering = tables.NonDegreeLoweringTables()

// NumQuotients returns one constraint per non-degree-lowering table for
// every section.
func (DefaultAIR) NumQuotients(section QuotientSection) int {
	return len(nonDegreeLowering)
}

// FillInitial checks that each table's first ext column vanishes: a common
// real initial-constraint shape (running sums/permutation arguments start
// at zero).
func (DefaultAIR) FillInitial(baseQ, extQ [][]xfield.Element, out [][]xfield.Element, zerofierInv []xfield.Element, challenges []xfield.Element) {
	for i, t := range nonDegreeLowering {
		r := tables.ExtColumnRange(t)
		col := extQ[r.Start]
		for row := range col {
			out[i][row] = col[row].Mul(zerofierInv[row])
		}
	}
}

// FillConsistency checks that each table's first base column is boolean
// (x^2 - x = 0), a toy shape standing in for a real per-table consistency
// constraint; the ext columns are not read.
func (DefaultAIR) FillConsistency(baseQ, extQ [][]xfield.Element, out [][]xfield.Element, zerofierInv []xfield.Element, challenges []xfield.Element) {
	for i, t := range nonDegreeLowering {
		br := tables.BaseColumnRange(t)
		col := baseQ[br.Start]
		for row := range col {
			diff := col[row].Square().Sub(col[row])
			out[i][row] = diff.Mul(zerofierInv[row])
		}
	}
}

// FillTransition compares each table's first base column at row r against
// the same column at the trace-domain-shifted row, via the integer stride
// between quotientDomain and traceDomain.
func (DefaultAIR) FillTransition(baseQ, extQ [][]xfield.Element, out [][]xfield.Element, zerofierInv []xfield.Element, challenges []xfield.Element, traceDomain, quotientDomain domain.Domain) {
	stride := domain.Stride(quotientDomain, traceDomain)
	n := len(zerofierInv)
	for i, t := range nonDegreeLowering {
		br := tables.BaseColumnRange(t)
		col := baseQ[br.Start]
		for row := 0; row < n; row++ {
			nextRow := (row + stride) % n
			diff := col[nextRow].Sub(col[row])
			out[i][row] = diff.Mul(zerofierInv[row])
		}
	}
}

// FillTerminal checks that each table's first ext column equals the first
// Fiat-Shamir challenge at the trace's last point, a toy stand-in for real
// running-sum terminal constraints.
func (DefaultAIR) FillTerminal(baseQ, extQ [][]xfield.Element, out [][]xfield.Element, zerofierInv []xfield.Element, challenges []xfield.Element) {
	var bound xfield.Element
	if len(challenges) > 0 {
		bound = challenges[0]
	}
	for i, t := range nonDegreeLowering {
		r := tables.ExtColumnRange(t)
		col := extQ[r.Start]
		for row := range col {
			diff := col[row].Sub(bound)
			out[i][row] = diff.Mul(zerofierInv[row])
		}
	}
}
