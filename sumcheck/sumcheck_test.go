package sumcheck

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/Michael-Nwachukwu/Zk-Training/common"
	"github.com/Michael-Nwachukwu/Zk-Training/poly"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func copyProof(proof Proof) Proof {
	res := Proof{
		ClaimedSum: proof.ClaimedSum,
		Poly:       proof.Poly.DeepCopy(),
		RoundPolys: make([]poly.MultiLin, len(proof.RoundPolys)),
	}
	for i := range proof.RoundPolys {
		res.RoundPolys[i] = proof.RoundPolys[i].DeepCopy()
	}
	return res
}

func TestCompleteness(t *testing.T) {
	for bn := 0; bn < 12; bn++ {
		prover := NewProver(common.RandomFrArray(1 << bn))
		proof := prover.Prove()

		assert.Len(t, proof.RoundPolys, bn, "one round polynomial per variable")
		assert.True(t, NewVerifier().Verify(proof), "honest proof rejected at bn=%v", bn)
	}
}

func TestConcreteScenario(t *testing.T) {
	// [0, 0, 3, 8]: two variables, claimed sum 11
	evals := []fr.Element{fr.NewElement(0), fr.NewElement(0), fr.NewElement(3), fr.NewElement(8)}

	prover := NewProver(evals)
	assert.Equal(t, fr.NewElement(11), prover.ClaimedSum())

	proof := prover.Prove()
	require.Len(t, proof.RoundPolys, 2)

	// Round 0 splits the table: p0(0) = 0 + 0, p0(1) = 3 + 8
	assert.Equal(t, fr.NewElement(0), proof.RoundPolys[0][0])
	assert.Equal(t, fr.NewElement(11), proof.RoundPolys[0][1])

	assert.True(t, NewVerifier().Verify(proof))
}

func TestProverRejectsBadShape(t *testing.T) {
	assert.Panics(t, func() { NewProver(make([]fr.Element, 5)) })
	assert.Panics(t, func() { NewProver(nil) })
}

func TestDeterminism(t *testing.T) {
	evals := common.RandomFrArray(1 << 6)

	run := func() []byte {
		cp := make([]fr.Element, len(evals))
		copy(cp, evals)
		proof := NewProver(cp).Prove()

		var buf bytes.Buffer
		_, err := proof.WriteTo(&buf)
		require.NoError(t, err)
		return buf.Bytes()
	}

	// no entropy anywhere: two runs on the same input are byte-identical
	assert.Equal(t, run(), run())
}

func TestTamperedRoundPolyIsRejected(t *testing.T) {
	proof := NewProver(common.RandomFrArray(1 << 4)).Prove()
	require.True(t, NewVerifier().Verify(proof))

	var one fr.Element
	one.SetOne()

	for i := range proof.RoundPolys {
		for j := 0; j < 2; j++ {
			tampered := copyProof(proof)
			tampered.RoundPolys[i][j].Add(&tampered.RoundPolys[i][j], &one)
			assert.False(t, NewVerifier().Verify(tampered), "tampered round %v entry %v accepted", i, j)
		}
	}
}

func TestTamperedClaimIsRejected(t *testing.T) {
	proof := NewProver(common.RandomFrArray(1 << 4)).Prove()

	var one fr.Element
	one.SetOne()

	tampered := copyProof(proof)
	tampered.ClaimedSum.Add(&tampered.ClaimedSum, &one)
	assert.False(t, NewVerifier().Verify(tampered))
}

func TestTamperedTableIsRejected(t *testing.T) {
	proof := NewProver(common.RandomFrArray(1 << 4)).Prove()

	var one fr.Element
	one.SetOne()

	tampered := copyProof(proof)
	tampered.Poly[7].Add(&tampered.Poly[7], &one)
	assert.False(t, NewVerifier().Verify(tampered))
}

func TestTruncatedRoundsAreRejected(t *testing.T) {
	proof := NewProver(common.RandomFrArray(1 << 4)).Prove()

	truncated := copyProof(proof)
	truncated.RoundPolys = truncated.RoundPolys[:len(truncated.RoundPolys)-1]
	assert.False(t, NewVerifier().Verify(truncated), "proof with a missing round accepted")

	empty := copyProof(proof)
	empty.RoundPolys = nil
	assert.False(t, NewVerifier().Verify(empty))
}

func TestOversizedRoundPolyIsRejected(t *testing.T) {
	proof := NewProver(common.RandomFrArray(1 << 4)).Prove()

	malformed := copyProof(proof)
	malformed.RoundPolys[1] = append(malformed.RoundPolys[1], fr.Element{}, fr.Element{})
	assert.False(t, NewVerifier().Verify(malformed))
}

func TestSerializationRoundTrip(t *testing.T) {
	proof := NewProver(common.RandomFrArray(1 << 5)).Prove()

	var buf bytes.Buffer
	written, err := proof.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), written)

	var decoded Proof
	read, err := decoded.ReadFrom(&buf)
	require.NoError(t, err)
	assert.Equal(t, written, read)

	assert.Equal(t, proof.ClaimedSum, decoded.ClaimedSum)
	assert.Equal(t, proof.Poly, decoded.Poly)
	assert.Equal(t, proof.RoundPolys, decoded.RoundPolys)

	// The deserialized proof verifies on the other side of the wire
	assert.True(t, NewVerifier().Verify(decoded))
}

func TestDeserializationRejectsMalformedShapes(t *testing.T) {
	proof := NewProver(common.RandomFrArray(1 << 3)).Prove()

	var buf bytes.Buffer
	_, err := proof.WriteTo(&buf)
	require.NoError(t, err)
	wire := buf.Bytes()

	// Truncated stream
	var decoded Proof
	_, err = decoded.ReadFrom(bytes.NewReader(wire[:len(wire)-10]))
	assert.Error(t, err)

	// A claimed sum above the field modulus is not canonical
	corrupted := append([]byte{}, wire...)
	for i := 0; i < fr.Bytes; i++ {
		corrupted[i] = 0xff
	}
	_, err = decoded.ReadFrom(bytes.NewReader(corrupted))
	assert.Error(t, err)
}

func TestVerifyWithOracle(t *testing.T) {
	table := poly.NewMultiLin(common.RandomFrArray(1 << 4))
	proof := NewProver(table.DeepCopy()).Prove()

	// Same table behind the oracle seam
	assert.True(t, NewVerifier().VerifyWithOracle(proof.ClaimedSum, proof.RoundPolys, TableOracle{Table: table}))

	// A different polynomial behind the oracle fails the final check
	other := table.DeepCopy()
	other[0].Add(&other[0], &other[3])
	assert.False(t, NewVerifier().VerifyWithOracle(proof.ClaimedSum, proof.RoundPolys, TableOracle{Table: other}))
}

func BenchmarkProver(b *testing.B) {
	bn := 18
	b.Run(fmt.Sprintf("sumcheck-bn-%v", bn), func(b *testing.B) {
		common.ProfileTrace(b, false, false, func() {
			for c := 0; c < b.N; c++ {
				b.StopTimer()
				evals := common.RandomFrArray(1 << bn)
				prover := NewProver(evals)
				b.StartTimer()
				_ = prover.Prove()
			}
		})
	})
}
