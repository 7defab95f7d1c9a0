// Package fiatshamir replaces the verifier's randomness with a deterministic
// hash chain over the protocol messages exchanged so far.
package fiatshamir

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Domain separation tag for hashing the transcript into fr
var dst = []byte("Zk-Training/sumcheck/transcript")

// Transcript is an append-only log of the bytes a party has seen so far.
// Prover and verifier each drive their own instance and never share one;
// absorbing identical byte sequences in identical order is what makes the
// two sides derive identical challenges.
type Transcript struct {
	log []byte
}

// NewTranscript returns an empty transcript
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append absorbs msg into the transcript. It has no observable effect other
// than changing the outcome of future challenge derivations.
func (t *Transcript) Append(msg []byte) {
	t.log = append(t.log, msg...)
}

// RandomChallenge derives a field element from everything absorbed so far,
// using hash-to-field over the whole log, then absorbs the challenge back
// into the log. Re-absorbing guarantees that back-to-back derivations with
// no Append in between still return distinct challenges.
func (t *Transcript) RandomChallenge() fr.Element {
	res, err := fr.Hash(t.log, dst, 1)
	if err != nil {
		// fr.Hash only fails on oversized domain separation tags
		panic(err)
	}

	challenge := res[0]
	challengeBytes := challenge.Bytes()
	t.Append(challengeBytes[:])
	return challenge
}
