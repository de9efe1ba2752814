package master

import (
	"github.com/vybium/starkcore/internal/starkcore/air"
	"github.com/vybium/starkcore/internal/starkcore/digest"
	"github.com/vybium/starkcore/internal/starkcore/domain"
	"github.com/vybium/starkcore/internal/starkcore/merkle"
	"github.com/vybium/starkcore/internal/starkcore/polynomial"
	"github.com/vybium/starkcore/internal/starkcore/randgen"
	"github.com/vybium/starkcore/internal/starkcore/sponge"
	"github.com/vybium/starkcore/internal/starkcore/tables"
	"github.com/vybium/starkcore/internal/starkcore/xfield"
)

// ExtTable is the X-valued extension half of a proof's Master matrix,
// derived from a committed BaseTable plus Fiat-Shamir challenges (spec
// §4.7). Its own lifecycle mirrors BaseTable's from Randomized onward.
type ExtTable struct {
	state State

	domains domain.ProverDomains

	physical *Matrix[xfield.Element] // randomized_trace_len x (NUM_EXT_COLUMNS + numRandomizerPolys)
	extended *Matrix[xfield.Element] // eval_domain.Length x same column count
	polys    []polynomial.Polynomial[xfield.Element]

	numRandomizerPolynomials int
	tree                     *merkle.Tree
}

// Extend implements spec §4.7: allocate the ext randomized-trace matrix,
// fill the trailing randomizer columns with uniform X randomness, extend
// each of the nine non-degree-lowering tables from its base view, then fill
// DegreeLowering's derived ext columns.
func Extend(base *BaseTable, extender air.TableExtender, degreeLowering air.DegreeLowering, challenges []xfield.Element, numRandomizerPolynomials int) *ExtTable {
	requireAtLeast(base.state, Padded, "Extend")

	numCols := tables.NumExtColumns() + numRandomizerPolynomials
	physical := NewMatrix[xfield.Element](base.physical.Rows, numCols)

	for c := tables.NumExtColumns(); c < numCols; c++ {
		col := physical.Column(c)
		for row := range col {
			col[row] = randgen.XElement()
		}
	}

	for _, id := range tables.NonDegreeLoweringTables() {
		baseCols := base.physical.ColumnsInRange(tables.BaseColumnRange(id))
		extCols := physical.ColumnsInRange(tables.ExtColumnRange(id))
		extender.Extend(id, baseCols, extCols, challenges)
	}

	degreeLowering.FillDerivedExtColumns(base.physical.AllColumns(), physical.ColumnsInRange(tables.ColumnRange{Start: 0, End: tables.NumExtColumns()}), challenges)

	return &ExtTable{
		state:                    Padded,
		domains:                  base.domains,
		physical:                 physical,
		numRandomizerPolynomials: numRandomizerPolynomials,
	}
}

// RandomizeTrace re-randomizes the stride-offset rows of the ext matrix,
// mirroring BaseTable.RandomizeTrace but over X values; Extend has already
// filled stride offset 0 (the real extended rows) and the trailing
// randomizer columns.
func (e *ExtTable) RandomizeTrace() {
	requireExactly(e.state, Padded, "RandomizeTrace")
	u := domain.Stride(e.domains.RandomizedTrace, e.domains.Trace)
	for offset := 1; offset < u; offset++ {
		for col := 0; col < e.physical.Cols; col++ {
			for row := offset; row < e.physical.Rows; row += u {
				e.physical.Set(row, col, randgen.XElement())
			}
		}
	}
	e.state = Randomized
}

// LowDegreeExtendAllColumns mirrors BaseTable's, without the B-to-X lift
// since the ext matrix is already X-valued.
func (e *ExtTable) LowDegreeExtendAllColumns() {
	requireAtLeast(e.state, Randomized, "LowDegreeExtendAllColumns")

	evalDomain := e.domains.EvalDomain()
	extended := NewMatrix[xfield.Element](evalDomain.Length, e.physical.Cols)
	polys := make([]polynomial.Polynomial[xfield.Element], e.physical.Cols)

	for col := 0; col < e.physical.Cols; col++ {
		values := append([]xfield.Element(nil), e.physical.Column(col)...)
		poly := domain.Interpolate(e.domains.RandomizedTrace, values, xfield.One, func(x xfield.Element) xfield.Element { return x.Inv() }, xfield.FromB)
		codeword := domain.Evaluate(evalDomain, poly, xfield.FromB)
		copy(extended.Column(col), codeword)
		polys[col] = poly
	}

	e.extended = extended
	e.polys = polys
	e.state = Extended
}

// MerkleTree hashes every FRI-domain row by reinterpreting each X as its
// three B coefficients, concatenated (spec §4.8).
func (e *ExtTable) MerkleTree() *merkle.Tree {
	requireExactly(e.state, Extended, "MerkleTree")

	friTable := e.FriDomainTable()
	n := friTable.NumRows()
	leaves := make([]digest.Digest, n)
	for row := 0; row < n; row++ {
		leaves[row] = sponge.HashExtRow(friTable.Row(row))
	}
	e.tree = merkle.New(leaves)
	e.state = Committed
	return e.tree
}

// Table returns the trace-domain view of sub-table id's ext columns.
func (e *ExtTable) Table(id tables.ID) *StridedView[xfield.Element] {
	requireAtLeast(e.state, Randomized, "Table")
	u := domain.Stride(e.domains.RandomizedTrace, e.domains.Trace)
	return NewStridedView(e.physical, 0, u, e.domains.Trace.Length, tables.ExtColumnRange(id))
}

// QuotientDomainTable mirrors BaseTable's.
func (e *ExtTable) QuotientDomainTable() *StridedView[xfield.Element] {
	requireAtLeast(e.state, Extended, "QuotientDomainTable")
	return e.domainTable(e.domains.Quotient)
}

// FriDomainTable mirrors BaseTable's.
func (e *ExtTable) FriDomainTable() *StridedView[xfield.Element] {
	requireAtLeast(e.state, Extended, "FriDomainTable")
	return e.domainTable(e.domains.FRI)
}

func (e *ExtTable) domainTable(d domain.Domain) *StridedView[xfield.Element] {
	if e.extended == nil {
		panic("master: low-degree extended columns must be computed first")
	}
	eval := e.domains.EvalDomain()
	stride := domain.Stride(eval, d)
	return NewStridedView(e.extended, 0, stride, d.Length, tables.ColumnRange{Start: 0, End: e.extended.Cols})
}

// InterpolationPolynomials returns the memoized per-column polynomials,
// excluding the trailing randomizer columns (spec §4.7: "only the first
// NUM_EXT_COLUMNS polynomials are evaluated").
func (e *ExtTable) InterpolationPolynomials() []polynomial.Polynomial[xfield.Element] {
	requireAtLeast(e.state, Extended, "InterpolationPolynomials")
	return e.polys[:tables.NumExtColumns()]
}

// Row evaluates only the first NUM_EXT_COLUMNS interpolation polynomials at
// x; the randomizer columns never contribute to the out-of-domain row.
func (e *ExtTable) Row(x xfield.Element) []xfield.Element {
	requireAtLeast(e.state, Extended, "Row")
	polys := e.InterpolationPolynomials()
	out := make([]xfield.Element, len(polys))
	for i, p := range polys {
		out[i] = p.Eval(x)
	}
	return out
}

// Domains exposes the four derived arithmetic domains.
func (e *ExtTable) Domains() domain.ProverDomains { return e.domains }

// State returns the table's current lifecycle state.
func (e *ExtTable) State() State { return e.state }

// NumColumns returns the physical matrix's column count, including
// randomizer columns.
func (e *ExtTable) NumColumns() int { return e.physical.Cols }
