package poly

import (
	"bytes"
	"fmt"

	"github.com/Michael-Nwachukwu/Zk-Training/common"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Folding chunks below this size are not worth spawning goroutines for
const foldingParallelThreshold = 1 << 12

// MultiLin tracks the values of a (dense i.e. not sparse) multilinear polynomial
// over the boolean hypercube. The entry at index i is the value of the polynomial
// at the point whose coordinates are the bits of i, most significant bit first,
// so the table fully determines the polynomial.
type MultiLin []fr.Element

// NewMultiLin wraps evals into a bookkeeping table. It takes ownership of the
// slice and panics if its length is not a power of two.
func NewMultiLin(evals []fr.Element) MultiLin {
	if !common.IsPowerOfTwo(len(evals)) {
		panic(fmt.Sprintf("table length %v is not a power of two", len(evals)))
	}
	return MultiLin(evals)
}

// NumVars returns the number of variables of the polynomial
func (m MultiLin) NumVars() int {
	return common.Log2(len(m))
}

func (m MultiLin) String() string {
	return fmt.Sprintf("%v", common.FrSliceToString(m))
}

// Fold folds the table on its first coordinate using the given value r
func (m *MultiLin) Fold(r fr.Element) {
	mid := len(*m) / 2
	m.FoldChunk(r, 0, mid)
	*m = (*m)[:mid]
}

// FoldChunk folds one part of the table
func (m *MultiLin) FoldChunk(r fr.Element, start, stop int) {
	mid := len(*m) / 2
	bottom, top := (*m)[:mid], (*m)[mid:]
	for i := start; i < stop; i++ {
		// updating bookkeeping table
		// table[i] <- table[i] + r (table[i + mid] - table[i])
		top[i].Sub(&top[i], &bottom[i])
		top[i].Mul(&top[i], &r)
		bottom[i].Add(&bottom[i], &top[i])
	}
}

// PartialEvaluate fixes the first variable of the polynomial to r and returns
// the table of the resulting polynomial, one variable shorter. The receiver is
// left untouched so the caller can keep using the unfolded table. The returned
// table is pool-allocated: hand it back with Dump once done with it.
func (m MultiLin) PartialEvaluate(r fr.Element) MultiLin {
	mid := len(m) / 2
	res := Make(mid)
	bottom, top := m[:mid], m[mid:]

	foldRange := func(start, stop int) {
		var tmp fr.Element
		for i := start; i < stop; i++ {
			// res[i] <- bottom[i] + r (top[i] - bottom[i])
			tmp.Sub(&top[i], &bottom[i])
			tmp.Mul(&tmp, &r)
			res[i].Add(&bottom[i], &tmp)
		}
	}

	if mid < foldingParallelThreshold {
		foldRange(0, mid)
		return res
	}

	common.Parallelize(mid, foldRange)
	return res
}

// RoundPolynomial sums each half of the table. This gives the evaluations at
// 0 and 1 of the univariate restriction of the first variable, all remaining
// variables being summed over the hypercube. Multilinearity guarantees this
// restriction has degree at most 1, so the two values determine it.
func (m MultiLin) RoundPolynomial() MultiLin {
	mid := len(m) / 2
	var p0, p1 fr.Element
	for i := 0; i < mid; i++ {
		p0.Add(&p0, &m[i])
		p1.Add(&p1, &m[mid+i])
	}
	return MultiLin{p0, p1}
}

// Sum returns the sum of all the entries of the table, which is the sum of
// the polynomial's evaluations over the whole boolean hypercube.
func (m MultiLin) Sum() fr.Element {
	var res fr.Element
	for i := range m {
		res.Add(&res, &m[i])
	}
	return res
}

// DeepCopy creates a deep copy of a bookkeeping table.
// Both multilinear interpolation and sumcheck require folding an underlying
// array, but folding changes the array. To do both one requires a deep copy
// of the bookkeeping table.
func (m MultiLin) DeepCopy() MultiLin {
	tableDeepCopy := make([]fr.Element, len(m))
	copy(tableDeepCopy, m)
	return tableDeepCopy
}

// DeepCopyPooled creates a deep copy backed by the pool
func (m MultiLin) DeepCopyPooled() MultiLin {
	tableDeepCopy := Make(len(m))
	copy(tableDeepCopy, m)
	return tableDeepCopy
}

// Evaluate returns the multilinear extension of the table at an arbitrary
// (not necessarily boolean) point. It deep copies the table and folds it
// coordinate by coordinate, which computes exactly the Lagrange-weighted sum
// of the entries. Panics if the point has the wrong number of coordinates.
func (m MultiLin) Evaluate(coordinates []fr.Element) fr.Element {
	if len(coordinates) != m.NumVars() {
		panic(fmt.Sprintf("evaluating a %v-variate polynomial on a point of %v coordinates", m.NumVars(), len(coordinates)))
	}

	bkCopy := m.DeepCopyPooled()
	for _, r := range coordinates {
		bkCopy.Fold(r)
	}

	res := bkCopy[0]
	Dump(bkCopy)
	return res
}

// Bytes returns the canonical encoding of the table: a big-endian uint32
// length prefix followed by each entry's 32-byte big-endian form, in table
// order. Two distinct tables never share an encoding.
func (m MultiLin) Bytes() []byte {
	var buf bytes.Buffer
	v := fr.Vector(m)
	if _, err := v.WriteTo(&buf); err != nil {
		// writes to a bytes.Buffer do not fail
		panic(err)
	}
	return buf.Bytes()
}
