// Package zkp implements three non-interactive Sigma protocols over the
// ElGamal ciphertexts of the elgamal package, made non-interactive with
// Fiat-Shamir:
//
//   - PrfKnowPlaintext: knowledge of the randomness r behind c1 = g^r
//   - PrfEqDlogs: two pairs share the same discrete logarithm
//   - PrfDecryption: a decryption factor c1^x was computed with the secret
//     behind the public key g^x
//
// All three follow the same shape. The prover picks a fresh z, commits to
// base^z for every base, derives the challenge c by hashing the statement,
// the commitments and a tag unique to the protocol, and answers
// r = z + c*w. The verifier recomputes c and checks base^r == commit + result^c
// for every base.
//
// Proofs are immutable values. Verify has no side effects and can be
// called concurrently.
package zkp

import (
	"fmt"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/verenc"
)

// Domain tags hashed into the challenge of each protocol.
const (
	KnowPlaintextTag = "KNOW_PLAINTEXT"
	EqDlogsTag       = "EQ_DLOGS"
	DecryptionTag    = "DECRYPTION"
)

// Proof is a non-interactive proof transcript.
type Proof interface {
	// Verify recomputes the challenge from the transcript and checks every
	// verification equation.
	Verify(suite verenc.Suite) bool
	fmt.Stringer
}

// challenge hashes points in order, then the tag, and reduces the digest
// into the scalar field.
func challenge(suite verenc.Suite, tag string, points ...kyber.Point) kyber.Scalar {
	return verenc.SHA256().UpdatePoints(points...).UpdateString(tag).Scalar(suite)
}

// response returns z + c*w.
func response(suite verenc.Suite, z, c, w kyber.Scalar) kyber.Scalar {
	return suite.Scalar().Add(z, suite.Scalar().Mul(c, w))
}

// holds checks base^r == commit + result^c.
func holds(suite verenc.Suite, base, commit, result kyber.Point, r, c kyber.Scalar) bool {
	lhs := suite.Point().Mul(r, base)
	rhs := suite.Point().Add(commit, suite.Point().Mul(c, result))
	return lhs.Equal(rhs)
}

// wellFormed returns false if any element of a transcript is missing, as it
// happens with truncated binary encodings, or lies outside the prime-order
// group.
func wellFormed(suite verenc.Suite, r kyber.Scalar, points ...kyber.Point) bool {
	if r == nil {
		return false
	}
	for _, p := range points {
		if p == nil || !verenc.InPrimeOrderSubgroup(suite, p) {
			return false
		}
	}
	return true
}

// isGenerator returns true if g is the fixed base point of the suite.
func isGenerator(suite verenc.Suite, g kyber.Point) bool {
	return g != nil && g.Equal(suite.Point().Base())
}
