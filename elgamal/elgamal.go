// Package elgamal implements additively homomorphic ElGamal encryption of
// group elements, with re-randomization and an authenticated variant that
// checks the integrity of the plaintext at decryption time.
//
// In the additive notation of kyber, a public key is y = g^x written as
// x*G, and a ciphertext of m under randomness r is (g^r, m + y^r).
package elgamal

import (
	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/verenc"
)

// KeyPair is an ElGamal key pair. Secret must stay with the party that
// generated it; PublicKey can be shared freely.
type KeyPair struct {
	PublicKey PublicKey
	Secret    kyber.Scalar
	Y         kyber.Point
}

// PublicKey wraps the group element y = g^x.
type PublicKey struct {
	Y kyber.Point
}

// NewPublicKey wraps y into a public key.
func NewPublicKey(y kyber.Point) PublicKey {
	return PublicKey{Y: y}
}

// PublicKeyFromBase64 decodes a public key from its text form.
func PublicKeyFromBase64(g kyber.Group, s string) (PublicKey, error) {
	y, err := verenc.PointFromBase64(g, s)
	if err != nil {
		return PublicKey{}, err
	}
	return NewPublicKey(y), nil
}

// Encrypt returns the encryption of m under randomness r:
// (g^r, m + y^r).
//
// The caller chooses r so that proofs about it can be built afterwards. The
// same r must never be used for two different messages under the same key,
// nothing here checks it.
func (pk PublicKey) Encrypt(ctx *CryptoContext, m kyber.Point, r kyber.Scalar) *Ciphertext {
	s := ctx.suite
	return &Ciphertext{
		C1: ctx.RaiseGenerator(r),
		C2: s.Point().Add(m, s.Point().Mul(r, pk.Y)),
	}
}

// EncryptAuth encrypts m like Encrypt and binds the ciphertext to a digest
// of m.
func (pk PublicKey) EncryptAuth(ctx *CryptoContext, m kyber.Point, r kyber.Scalar) *AuthCiphertext {
	return NewAuthCiphertext(pk.Encrypt(ctx, m, r), m)
}

// Rerandomize adds a fresh encryption of the identity under r to ct. The
// result decrypts to the same plaintext but can't be linked to ct.
func (pk PublicKey) Rerandomize(ctx *CryptoContext, ct *Ciphertext, r kyber.Scalar) *Ciphertext {
	s := ctx.suite
	return &Ciphertext{
		C1: s.Point().Add(ct.C1, ctx.RaiseGenerator(r)),
		C2: s.Point().Add(ct.C2, s.Point().Mul(r, pk.Y)),
	}
}

// Equal returns true if both keys hold the same group element.
func (pk PublicKey) Equal(other PublicKey) bool {
	if pk.Y == nil || other.Y == nil {
		return pk.Y == nil && other.Y == nil
	}
	return pk.Y.Equal(other.Y)
}

// String returns the base64 text form of the key. It is canonical, so it
// can be used as a map key.
func (pk PublicKey) String() string {
	if pk.Y == nil {
		return ""
	}
	return verenc.PointToBase64(pk.Y)
}
