package verenc

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"go.dedis.ch/kyber/v3"
)

// Hasher is an incremental hash over byte strings and group elements. It
// either returns the raw digest or reduces it into the scalar field of a
// group.
type Hasher struct {
	h hash.Hash
}

// NewHasher wraps an existing hash function.
func NewHasher(h hash.Hash) *Hasher {
	return &Hasher{h: h}
}

// SHA256 returns a Hasher based on sha256, used for proof challenges.
func SHA256() *Hasher {
	return NewHasher(sha256.New())
}

// SHA512 returns a Hasher based on sha512, used for plaintext tags.
func SHA512() *Hasher {
	return NewHasher(sha512.New())
}

// Update adds buf to the hash.
func (h *Hasher) Update(buf []byte) *Hasher {
	// hash.Hash never returns an error on Write.
	h.h.Write(buf)
	return h
}

// UpdateString adds the bytes of s to the hash.
func (h *Hasher) UpdateString(s string) *Hasher {
	return h.Update([]byte(s))
}

// UpdatePoints adds the canonical encoding of every point, in order.
func (h *Hasher) UpdatePoints(points ...kyber.Point) *Hasher {
	for _, p := range points {
		p.MarshalTo(h.h)
	}
	return h
}

// Digest returns the hash of everything added so far.
func (h *Hasher) Digest() []byte {
	return h.h.Sum(nil)
}

// Scalar reduces the digest into the scalar field of g.
func (h *Hasher) Scalar(g kyber.Group) kyber.Scalar {
	return g.Scalar().SetBytes(h.Digest())
}
