package sumcheck

import (
	"github.com/Michael-Nwachukwu/Zk-Training/fiatshamir"
	"github.com/Michael-Nwachukwu/Zk-Training/logger"
	"github.com/Michael-Nwachukwu/Zk-Training/poly"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Verifier checks a sumcheck proof by replaying the prover's transcript. Like
// the prover it owns its transcript and is single use.
type Verifier struct {
	fs *fiatshamir.Transcript
}

// NewVerifier returns a verifier with a fresh transcript
func NewVerifier() *Verifier {
	return &Verifier{fs: fiatshamir.NewTranscript()}
}

// Verify checks the proof against the initial polynomial shipped inside it.
// All failures surface as a bare false: the caller is deliberately not told
// which check failed.
func (v *Verifier) Verify(proof Proof) bool {
	return v.VerifyWithOracle(proof.ClaimedSum, proof.RoundPolys, TableOracle{Table: proof.Poly})
}

// VerifyWithOracle runs the round checks against an arbitrary polynomial
// oracle. The transcript replays the prover's absorb order exactly, so the
// challenges recomputed here match the prover's without any interaction.
func (v *Verifier) VerifyWithOracle(claimedSum fr.Element, roundPolys []poly.MultiLin, oracle Oracle) bool {
	if len(roundPolys) != oracle.NumVars() {
		return false
	}

	log := logger.Logger().With().Int("nbVars", oracle.NumVars()).Logger()
	log.Debug().Msg("verifying sumcheck proof")

	v.fs.Append(oracle.Commit())
	sum := claimedSum.Bytes()
	v.fs.Append(sum[:])

	currentClaim := claimedSum
	challenges := make([]fr.Element, len(roundPolys))

	for i := range roundPolys {
		if len(roundPolys[i]) != 2 {
			return false
		}

		// p_i(0) + p_i(1) must reproduce the previous round's claim
		var boundarySum fr.Element
		boundarySum.Add(&roundPolys[i][0], &roundPolys[i][1])
		if !boundarySum.Equal(&currentClaim) {
			return false
		}

		v.fs.Append(roundPolys[i].Bytes())
		challenges[i] = v.fs.RandomChallenge()

		// the next round's claim is p_i evaluated at the challenge
		currentClaim = roundPolys[i].Evaluate(challenges[i : i+1])
	}

	// oracle check: tie the fully reduced claim back to the polynomial itself
	finalEvaluation := oracle.QueryEvaluation(challenges)
	return finalEvaluation.Equal(&currentClaim)
}
