// Package sumcheck implements the sumcheck interactive oracle proof over the
// BN254 scalar field, made non-interactive with the Fiat-Shamir transform.
// The prover holds a multilinear polynomial given by its evaluations over the
// boolean hypercube and convinces a verifier of the sum of those evaluations
// in one round per variable.
package sumcheck

import (
	"github.com/Michael-Nwachukwu/Zk-Training/fiatshamir"
	"github.com/Michael-Nwachukwu/Zk-Training/logger"
	"github.com/Michael-Nwachukwu/Zk-Training/poly"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Prover produces a sumcheck proof for the sum of a multilinear polynomial
// over the boolean hypercube. It owns its transcript, so it is single use:
// one Prover, one Prove call, one proof.
type Prover struct {
	poly       poly.MultiLin
	claimedSum fr.Element
	fs         *fiatshamir.Transcript
}

// NewProver constructs a prover from the polynomial's evaluations over the
// hypercube. It takes ownership of the slice and panics if its length is not
// a power of two; the claimed sum is computed here, not taken on trust.
func NewProver(evals []fr.Element) *Prover {
	m := poly.NewMultiLin(evals)
	return &Prover{
		poly:       m,
		claimedSum: m.Sum(),
		fs:         fiatshamir.NewTranscript(),
	}
}

// ClaimedSum returns the sum the prover is committing to
func (p *Prover) ClaimedSum() fr.Element {
	return p.claimedSum
}

// Prove runs the protocol and returns the proof. Each round sends the 2-point
// restriction of the working polynomial's first variable, derives the round
// challenge from the transcript and folds the working polynomial on it. The
// initial table is left intact; only working copies are folded.
func (p *Prover) Prove() Proof {
	nbRounds := p.poly.NumVars()
	log := logger.Logger().With().Int("nbVars", nbRounds).Logger()
	log.Debug().Msg("starting sumcheck prover")

	p.fs.Append(p.poly.Bytes())
	sum := p.claimedSum.Bytes()
	p.fs.Append(sum[:])

	roundPolys := make([]poly.MultiLin, nbRounds)

	current := p.poly
	for i := 0; i < nbRounds; i++ {
		roundPoly := current.RoundPolynomial()
		roundPolys[i] = roundPoly
		p.fs.Append(roundPoly.Bytes())

		challenge := p.fs.RandomChallenge()

		next := current.PartialEvaluate(challenge)
		if i > 0 {
			// the initial table is not pool-backed and stays with the proof
			poly.Dump(current)
		}
		current = next
	}

	if nbRounds > 0 {
		// fully folded, a single entry nothing consumes
		poly.Dump(current)
	}

	log.Debug().Msg("sumcheck prover done")

	return Proof{
		ClaimedSum: p.claimedSum,
		Poly:       p.poly,
		RoundPolys: roundPolys,
	}
}
