package sumcheck

import (
	"github.com/Michael-Nwachukwu/Zk-Training/poly"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Oracle gives the verifier access to the polynomial the sum is claimed over.
// The round protocol only needs the two capabilities below, so a
// polynomial-commitment backend (commit, then answer queries with opening
// proofs) can replace the direct table without touching the round loop.
type Oracle interface {
	// Commit returns the bytes identifying the polynomial. They are absorbed
	// into the transcript before the first round.
	Commit() []byte
	// QueryEvaluation returns the polynomial's value at point
	QueryEvaluation(point []fr.Element) fr.Element
	// NumVars returns the number of variables of the polynomial
	NumVars() int
}

// TableOracle is the direct-table backend: the full evaluation table is
// shipped to the verifier, its "commitment" is its canonical encoding and
// queries are answered by evaluating it locally. This gives no hiding or
// binding guarantee; it is sound only when the table itself is trusted.
type TableOracle struct {
	Table poly.MultiLin
}

func (o TableOracle) Commit() []byte {
	return o.Table.Bytes()
}

func (o TableOracle) QueryEvaluation(point []fr.Element) fr.Element {
	return o.Table.Evaluate(point)
}

func (o TableOracle) NumVars() int {
	return o.Table.NumVars()
}
