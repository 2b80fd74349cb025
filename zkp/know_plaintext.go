package zkp

import (
	"strings"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/onet/v3/log"
	"go.dedis.ch/verenc"
	"go.dedis.ch/verenc/elgamal"
	"golang.org/x/xerrors"
)

// PrfKnowPlaintext proves knowledge of the randomness r behind the first
// component of a ciphertext, c1 = g^r, without revealing it.
type PrfKnowPlaintext struct {
	G  kyber.Point
	Ct elgamal.Ciphertext
	// BlindedG = g^z
	BlindedG kyber.Point
	// R = z + c*r
	R kyber.Scalar
}

// NewPrfKnowPlaintext proves that the caller knows r with ct.C1 = g^r.
func NewPrfKnowPlaintext(ctx *elgamal.CryptoContext, ct *elgamal.Ciphertext,
	r kyber.Scalar) (*PrfKnowPlaintext, error) {
	suite := ctx.Suite()
	z, err := ctx.RandomScalar()
	if err != nil {
		return nil, xerrors.Errorf("commitment: %w", err)
	}
	g := ctx.Generator()
	blindedG := suite.Point().Mul(z, g)
	c := challenge(suite, KnowPlaintextTag, g, ct.C1, ct.C2, blindedG)
	return &PrfKnowPlaintext{
		G:        g,
		Ct:       elgamal.Ciphertext{C1: ct.C1.Clone(), C2: ct.C2.Clone()},
		BlindedG: blindedG,
		R:        response(suite, z, c, r),
	}, nil
}

// Verify checks g^R == BlindedG + c1^c, g being the generator of the
// suite.
func (p *PrfKnowPlaintext) Verify(suite verenc.Suite) bool {
	if !wellFormed(suite, p.R, p.G, p.Ct.C1, p.Ct.C2, p.BlindedG) {
		log.Lvl3("plaintext proof is incomplete")
		return false
	}
	if !isGenerator(suite, p.G) {
		log.Lvl3("plaintext proof: g is not the generator")
		return false
	}
	c := challenge(suite, KnowPlaintextTag, p.G, p.Ct.C1, p.Ct.C2, p.BlindedG)
	if !holds(suite, p.G, p.BlindedG, p.Ct.C1, p.R, c) {
		log.Lvl3("plaintext proof: equation on g failed")
		return false
	}
	return true
}

// String returns "g:c1:c2:blinded_g:r" in base64.
func (p *PrfKnowPlaintext) String() string {
	return strings.Join([]string{
		verenc.PointToBase64(p.G),
		p.Ct.String(),
		verenc.PointToBase64(p.BlindedG),
		verenc.ScalarToBase64(p.R),
	}, Separator)
}

// ParsePrfKnowPlaintext reads back the text form of String.
func ParsePrfKnowPlaintext(suite verenc.Suite, s string) (*PrfKnowPlaintext, error) {
	points, r, err := parseTranscript(suite, s, 4)
	if err != nil {
		return nil, xerrors.Errorf("plaintext proof: %w", err)
	}
	return &PrfKnowPlaintext{
		G:        points[0],
		Ct:       elgamal.Ciphertext{C1: points[1], C2: points[2]},
		BlindedG: points[3],
		R:        r,
	}, nil
}
