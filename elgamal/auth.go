package elgamal

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/onet/v3/log"
	"go.dedis.ch/verenc"
)

// AuthCiphertext is a ciphertext together with the SHA-512 digest of its
// plaintext, taken at encryption time. Tampering with the ciphertext changes
// the decrypted element, and the stale tag no longer matches.
type AuthCiphertext struct {
	Contents Ciphertext
	Tag      []byte
}

// NewAuthCiphertext binds ct to the digest of its plaintext m.
func NewAuthCiphertext(ct *Ciphertext, m kyber.Point) *AuthCiphertext {
	return &AuthCiphertext{
		Contents: Ciphertext{C1: ct.C1.Clone(), C2: ct.C2.Clone()},
		Tag:      plaintextTag(m),
	}
}

// Verify returns true if the digest of candidate matches the tag.
func (act *AuthCiphertext) Verify(candidate kyber.Point) bool {
	return subtle.ConstantTimeCompare(act.Tag, plaintextTag(candidate)) == 1
}

// Decrypt returns the plaintext and true if it matches the tag. A mismatch
// is an expected outcome for tampered or corrupted data and returns
// (nil, false).
func (act *AuthCiphertext) Decrypt(secret kyber.Scalar) (kyber.Point, bool) {
	m := act.Contents.Decrypt(secret)
	if !act.Verify(m) {
		log.Lvl3("plaintext doesn't match the authentication tag")
		return nil, false
	}
	return m, true
}

// String returns "(c1, c2)[tag]" with every part in base64. It is meant for
// logs and can't be parsed back.
func (act *AuthCiphertext) String() string {
	return fmt.Sprintf("(%s, %s)[%s]",
		verenc.PointToBase64(act.Contents.C1),
		verenc.PointToBase64(act.Contents.C2),
		base64.StdEncoding.EncodeToString(act.Tag))
}

func plaintextTag(m kyber.Point) []byte {
	return verenc.SHA512().UpdatePoints(m).Digest()
}
