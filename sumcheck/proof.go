package sumcheck

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/Michael-Nwachukwu/Zk-Training/common"
	"github.com/Michael-Nwachukwu/Zk-Training/poly"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Proof is the object produced by the prover. RoundPolys holds, for each
// round, the 2-point evaluation table [p(0), p(1)] of that round's univariate
// restriction; it has exactly one entry per variable of Poly.
type Proof struct {
	ClaimedSum fr.Element
	Poly       poly.MultiLin
	RoundPolys []poly.MultiLin
}

// WriteTo serializes the proof into w: the claimed sum's canonical 32 bytes,
// the initial table, a big-endian uint32 round count, then each round table.
// Tables use the same length-prefixed layout the transcript absorbs.
func (proof *Proof) WriteTo(w io.Writer) (int64, error) {
	sum := proof.ClaimedSum.Bytes()
	n, err := w.Write(sum[:])
	written := int64(n)
	if err != nil {
		return written, fmt.Errorf("writing claimed sum: %w", err)
	}

	v := fr.Vector(proof.Poly)
	m, err := v.WriteTo(w)
	written += m
	if err != nil {
		return written, fmt.Errorf("writing initial polynomial: %w", err)
	}

	var count [4]byte
	binary.BigEndian.PutUint32(count[:], uint32(len(proof.RoundPolys)))
	n, err = w.Write(count[:])
	written += int64(n)
	if err != nil {
		return written, fmt.Errorf("writing round count: %w", err)
	}

	for i := range proof.RoundPolys {
		v := fr.Vector(proof.RoundPolys[i])
		m, err := v.WriteTo(w)
		written += m
		if err != nil {
			return written, fmt.Errorf("writing round %v polynomial: %w", i, err)
		}
	}

	return written, nil
}

// ReadFrom deserializes a proof from r, rejecting malformed shapes (a
// non-canonical claimed sum, a table length that is not a power of two, a
// round table without exactly 2 entries) at the boundary.
func (proof *Proof) ReadFrom(r io.Reader) (int64, error) {
	var sum [fr.Bytes]byte
	n, err := io.ReadFull(r, sum[:])
	read := int64(n)
	if err != nil {
		return read, fmt.Errorf("reading claimed sum: %w", err)
	}
	if err := proof.ClaimedSum.SetBytesCanonical(sum[:]); err != nil {
		return read, fmt.Errorf("claimed sum: %w", err)
	}

	var table fr.Vector
	m, err := table.ReadFrom(r)
	read += m
	if err != nil {
		return read, fmt.Errorf("reading initial polynomial: %w", err)
	}
	if !common.IsPowerOfTwo(len(table)) {
		return read, errors.New("initial polynomial length is not a power of two")
	}
	proof.Poly = poly.MultiLin(table)

	var count [4]byte
	n, err = io.ReadFull(r, count[:])
	read += int64(n)
	if err != nil {
		return read, fmt.Errorf("reading round count: %w", err)
	}

	proof.RoundPolys = make([]poly.MultiLin, binary.BigEndian.Uint32(count[:]))
	for i := range proof.RoundPolys {
		var roundPoly fr.Vector
		m, err := roundPoly.ReadFrom(r)
		read += m
		if err != nil {
			return read, fmt.Errorf("reading round %v polynomial: %w", i, err)
		}
		if len(roundPoly) != 2 {
			return read, fmt.Errorf("round %v polynomial has %v evaluations, expected 2", i, len(roundPoly))
		}
		proof.RoundPolys[i] = poly.MultiLin(roundPoly)
	}

	return read, nil
}
