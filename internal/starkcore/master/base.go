package master

import (
	"fmt"

	"github.com/vybium/starkcore/internal/starkcore/air"
	"github.com/vybium/starkcore/internal/starkcore/bfield"
	"github.com/vybium/starkcore/internal/starkcore/digest"
	"github.com/vybium/starkcore/internal/starkcore/domain"
	"github.com/vybium/starkcore/internal/starkcore/merkle"
	"github.com/vybium/starkcore/internal/starkcore/polynomial"
	"github.com/vybium/starkcore/internal/starkcore/randgen"
	"github.com/vybium/starkcore/internal/starkcore/sponge"
	"github.com/vybium/starkcore/internal/starkcore/tables"
	"github.com/vybium/starkcore/internal/starkcore/vm"
	"github.com/vybium/starkcore/internal/starkcore/xfield"
)

// BaseTable fills, pads, randomizes, low-degree-extends, and Merkle-commits
// the base (B-valued) half of one proof's Master matrix (spec §4.5, §4.6,
// §4.8, §4.10).
type BaseTable struct {
	state State

	domains domain.ProverDomains

	physical *Matrix[bfield.Element] // randomized_trace_len x NUM_BASE_COLUMNS, until LDE
	extended *Matrix[xfield.Element] // eval_domain.Length x NUM_BASE_COLUMNS, after LDE (lifted to X)
	polys    []polynomial.Polynomial[xfield.Element]

	tableLengths [10]int
	tree         *merkle.Tree
}

// NewBaseTable implements spec §4.5 steps 1-4: derive domains from the
// AET's padded height and the trace-randomizer/quotient/FRI parameters,
// allocate the zero physical matrix. The AET's own per-table fill (step 5)
// is performed by Fill.
func NewBaseTable(trace vm.ExecutionTrace, numTraceRandomizers, quotientLen, friLen int) *BaseTable {
	paddedHeight := trace.PaddedHeight()
	doms := domain.DeriveProverDomains(paddedHeight, numTraceRandomizers, quotientLen, friLen)
	physical := NewMatrix[bfield.Element](doms.RandomizedTrace.Length, tables.NumBaseColumns())
	return &BaseTable{state: Fresh, domains: doms, physical: physical}
}

// Fill implements spec §4.5 step 5: memory-like tables first (OpStack, Ram,
// JumpStack), in whose clock-jump-difference outputs a real implementation
// would feed the Processor table; then the remaining tables in any order.
// This repo's ExecutionTrace collaborator precomputes all base columns
// directly (spec's "external AET producer" boundary), so Fill's ordering is
// preserved for texture/documentation purposes but has no data dependency
// to enforce here.
func (b *BaseTable) Fill(trace vm.ExecutionTrace) {
	requireExactly(b.state, Fresh, "Fill")

	memoryLike := []tables.ID{tables.OpStack, tables.Ram, tables.JumpStack}
	fillOrder := append(append([]tables.ID{}, memoryLike...), tables.Processor, tables.Program, tables.Hash, tables.Cascade, tables.Lookup, tables.U32)

	for _, id := range fillOrder {
		cols := trace.TableColumns(id)
		length := trace.TableLength(id)
		b.tableLengths[id] = length
		dst := b.physical.ColumnsInRange(tables.BaseColumnRange(id))
		for c, col := range cols {
			copy(dst[c][:length], col)
		}
	}
	b.state = Filled
}

// Pad implements spec §4.5's pad(): each table's padding routine is applied
// independently over its column range and stride (here sequentially; the
// column ranges are already disjoint, so a real implementation is free to
// run this loop in parallel per spec §5), followed by DegreeLowering's
// derived-column fill.
func (b *BaseTable) Pad(padder air.TablePadder, degreeLowering air.DegreeLowering) {
	requireExactly(b.state, Filled, "Pad")

	for _, id := range tables.NonDegreeLoweringTables() {
		cols := b.physical.ColumnsInRange(tables.BaseColumnRange(id))
		length := b.tableLengths[id]
		if id == tables.Processor || id == tables.JumpStack {
			length = b.mainExecutionLen()
		}
		padder.Pad(id, cols, length)
	}
	degreeLowering.FillDerivedBaseColumns(b.physical.AllColumns())
	b.state = Padded
}

// mainExecutionLen is the shared length Processor and JumpStack pad from
// (spec §4.5: "Processor and JumpStack share main_execution_len").
func (b *BaseTable) mainExecutionLen() int {
	return b.tableLengths[tables.Processor]
}

// RandomizeTrace implements spec §4.5's randomize_trace(): every stride
// offset other than 0 is overwritten with process-wide cryptographic
// randomness (never sponge-derived randomness, spec §5/§9); offset 0 (the
// real trace rows) is left untouched.
func (b *BaseTable) RandomizeTrace() {
	requireExactly(b.state, Padded, "RandomizeTrace")

	u := domain.Stride(b.domains.RandomizedTrace, b.domains.Trace)
	for offset := 1; offset < u; offset++ {
		for col := 0; col < b.physical.Cols; col++ {
			for row := offset; row < b.physical.Rows; row += u {
				b.physical.Set(row, col, randgen.Element())
			}
		}
	}
	b.state = Randomized
}

// LowDegreeExtendAllColumns implements spec §4.6: interpolate every column
// over the randomized-trace domain, evaluate over max(quotient, fri), lift
// to X (base table only), and memoize both the codeword and the polynomial.
func (b *BaseTable) LowDegreeExtendAllColumns() {
	requireExactly(b.state, Randomized, "LowDegreeExtendAllColumns")

	evalDomain := b.domains.EvalDomain()
	extended := NewMatrix[xfield.Element](evalDomain.Length, b.physical.Cols)
	polys := make([]polynomial.Polynomial[xfield.Element], b.physical.Cols)

	identity := func(e bfield.Element) bfield.Element { return e }
	for col := 0; col < b.physical.Cols; col++ {
		values := b.physical.Column(col)
		poly := domain.Interpolate(b.domains.RandomizedTrace, append([]bfield.Element(nil), values...), bfield.One, func(e bfield.Element) bfield.Element { return e.Inv() }, identity)
		xPoly := liftPolynomial(poly)
		codeword := domain.Evaluate(evalDomain, xPoly, xfield.FromB)
		copy(extended.Column(col), codeword)
		polys[col] = xPoly
	}

	b.extended = extended
	b.polys = polys
	b.state = Extended
}

func liftPolynomial(p polynomial.Polynomial[bfield.Element]) polynomial.Polynomial[xfield.Element] {
	coeffs := make([]xfield.Element, len(p.Coefficients))
	for i, c := range p.Coefficients {
		coeffs[i] = xfield.FromB(c)
	}
	return polynomial.New(coeffs)
}

// MerkleTree implements spec §4.8: hash every FRI-domain row (raw B
// sequence lifted back down is not needed here since the base table's
// physical data before lifting is exactly the B values; we hash the
// pre-lift values directly per spec's "raw B sequence" rule) and build a
// Merkle tree over the leaves.
func (b *BaseTable) MerkleTree() *merkle.Tree {
	requireExactly(b.state, Extended, "MerkleTree")

	friTable := b.FriDomainTable()
	n := friTable.NumRows()
	leaves := make([]digest.Digest, n)
	for row := 0; row < n; row++ {
		xRow := friTable.Row(row)
		bRow := make([]bfield.Element, len(xRow))
		for i, x := range xRow {
			bRow[i] = x.Coefficients[0] // base-table rows are pure B, lifted with zero higher coefficients
		}
		leaves[row] = sponge.HashRow(bRow)
	}
	b.tree = merkle.New(leaves)
	b.state = Committed
	return b.tree
}

// Table returns the trace-domain view of sub-table id.
func (b *BaseTable) Table(id tables.ID) *StridedView[bfield.Element] {
	requireAtLeast(b.state, Filled, fmt.Sprintf("Table(%s)", id))
	u := domain.Stride(b.domains.RandomizedTrace, b.domains.Trace)
	return NewStridedView(b.physical, 0, u, b.domains.Trace.Length, tables.BaseColumnRange(id))
}

// TraceTable returns the full (all-column) trace-domain view.
func (b *BaseTable) TraceTable() *StridedView[bfield.Element] {
	requireAtLeast(b.state, Filled, "TraceTable")
	u := domain.Stride(b.domains.RandomizedTrace, b.domains.Trace)
	return NewStridedView(b.physical, 0, u, b.domains.Trace.Length, tables.ColumnRange{Start: 0, End: b.physical.Cols})
}

// QuotientDomainTable returns a strided view of the post-LDE extended
// matrix at the quotient domain's resolution (spec §4.6).
func (b *BaseTable) QuotientDomainTable() *StridedView[xfield.Element] {
	requireAtLeast(b.state, Extended, "QuotientDomainTable")
	return b.domainTable(b.domains.Quotient)
}

// FriDomainTable returns a strided view of the post-LDE extended matrix at
// the FRI domain's resolution.
func (b *BaseTable) FriDomainTable() *StridedView[xfield.Element] {
	requireAtLeast(b.state, Extended, "FriDomainTable")
	return b.domainTable(b.domains.FRI)
}

func (b *BaseTable) domainTable(d domain.Domain) *StridedView[xfield.Element] {
	if b.extended == nil {
		panic("master: low-degree extended columns must be computed first")
	}
	eval := b.domains.EvalDomain()
	stride := domain.Stride(eval, d)
	return NewStridedView(b.extended, 0, stride, d.Length, tables.ColumnRange{Start: 0, End: b.extended.Cols})
}

// InterpolationPolynomials returns the memoized per-column polynomials.
func (b *BaseTable) InterpolationPolynomials() []polynomial.Polynomial[xfield.Element] {
	requireAtLeast(b.state, Extended, "InterpolationPolynomials")
	return b.polys
}

// Row evaluates every base-column interpolation polynomial at x, for the
// out-of-domain row of the transcript (spec §4.6).
func (b *BaseTable) Row(x xfield.Element) []xfield.Element {
	requireAtLeast(b.state, Extended, "Row")
	out := make([]xfield.Element, len(b.polys))
	for i, p := range b.polys {
		out[i] = p.Eval(x)
	}
	return out
}

// Domains exposes the four derived arithmetic domains.
func (b *BaseTable) Domains() domain.ProverDomains { return b.domains }

// State returns the table's current lifecycle state.
func (b *BaseTable) State() State { return b.state }

// NumColumns returns the physical matrix's column count.
func (b *BaseTable) NumColumns() int { return b.physical.Cols }
