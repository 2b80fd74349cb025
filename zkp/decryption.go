package zkp

import (
	"strings"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/onet/v3/log"
	"go.dedis.ch/verenc"
	"go.dedis.ch/verenc/elgamal"
	"golang.org/x/xerrors"
)

// PrfDecryption proves that DecFactor = c1^x was computed with the same
// secret x as PublicKey = g^x. Every share-holder of a threshold key
// attaches one to its partial decryption.
type PrfDecryption struct {
	G         kyber.Point
	Ct        elgamal.Ciphertext
	PublicKey kyber.Point
	DecFactor kyber.Point
	BlindedG  kyber.Point
	BlindedC1 kyber.Point
	R         kyber.Scalar
}

// NewPrfDecryption proves that decFactor == ct.C1^secret and
// publicKey == g^secret.
func NewPrfDecryption(ctx *elgamal.CryptoContext, ct *elgamal.Ciphertext, decFactor kyber.Point,
	secret kyber.Scalar, publicKey kyber.Point) (*PrfDecryption, error) {
	suite := ctx.Suite()
	z, err := ctx.RandomScalar()
	if err != nil {
		return nil, xerrors.Errorf("commitment: %w", err)
	}
	g := ctx.Generator()
	blindedG := suite.Point().Mul(z, g)
	blindedC1 := suite.Point().Mul(z, ct.C1)
	c := challenge(suite, DecryptionTag, g, ct.C1, ct.C2, decFactor, publicKey,
		blindedG, blindedC1)
	return &PrfDecryption{
		G:         g,
		Ct:        elgamal.Ciphertext{C1: ct.C1.Clone(), C2: ct.C2.Clone()},
		PublicKey: publicKey.Clone(),
		DecFactor: decFactor.Clone(),
		BlindedG:  blindedG,
		BlindedC1: blindedC1,
		R:         response(suite, z, c, secret),
	}, nil
}

// Verify checks g^R == BlindedG + PublicKey^c and
// c1^R == BlindedC1 + DecFactor^c, g being the generator of the suite. It
// says nothing about whose key PublicKey is; use VerifyFor to check a
// decryption share of a known key holder.
func (p *PrfDecryption) Verify(suite verenc.Suite) bool {
	if !wellFormed(suite, p.R, p.G, p.Ct.C1, p.Ct.C2, p.PublicKey, p.DecFactor, p.BlindedG, p.BlindedC1) {
		log.Lvl3("decryption proof is incomplete")
		return false
	}
	if !isGenerator(suite, p.G) {
		log.Lvl3("decryption proof: g is not the generator")
		return false
	}
	c := challenge(suite, DecryptionTag, p.G, p.Ct.C1, p.Ct.C2, p.DecFactor, p.PublicKey,
		p.BlindedG, p.BlindedC1)
	if !holds(suite, p.G, p.BlindedG, p.PublicKey, p.R, c) {
		log.Lvl3("decryption proof: equation on g failed")
		return false
	}
	if !holds(suite, p.Ct.C1, p.BlindedC1, p.DecFactor, p.R, c) {
		log.Lvl3("decryption proof: equation on c1 failed")
		return false
	}
	return true
}

// VerifyFor checks the proof like Verify, and that it was made for pub.
func (p *PrfDecryption) VerifyFor(suite verenc.Suite, pub elgamal.PublicKey) bool {
	if pub.Y == nil || p.PublicKey == nil || !pub.Y.Equal(p.PublicKey) {
		log.Lvl3("decryption proof is for another public key")
		return false
	}
	return p.Verify(suite)
}

// Plaintext removes the proven decryption factor from the ciphertext. It
// only makes sense after Verify returned true.
func (p *PrfDecryption) Plaintext(suite verenc.Suite) kyber.Point {
	return suite.Point().Sub(p.Ct.C2, p.DecFactor)
}

// String returns
// "g:c1:c2:public_key:dec_factor:blinded_g:blinded_c1:r" in base64.
func (p *PrfDecryption) String() string {
	return strings.Join([]string{
		verenc.PointToBase64(p.G),
		p.Ct.String(),
		verenc.PointToBase64(p.PublicKey),
		verenc.PointToBase64(p.DecFactor),
		verenc.PointToBase64(p.BlindedG),
		verenc.PointToBase64(p.BlindedC1),
		verenc.ScalarToBase64(p.R),
	}, Separator)
}

// ParsePrfDecryption reads back the text form of String.
func ParsePrfDecryption(suite verenc.Suite, s string) (*PrfDecryption, error) {
	points, r, err := parseTranscript(suite, s, 7)
	if err != nil {
		return nil, xerrors.Errorf("decryption proof: %w", err)
	}
	return &PrfDecryption{
		G:         points[0],
		Ct:        elgamal.Ciphertext{C1: points[1], C2: points[2]},
		PublicKey: points[3],
		DecFactor: points[4],
		BlindedG:  points[5],
		BlindedC1: points[6],
		R:         r,
	}, nil
}
