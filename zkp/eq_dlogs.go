package zkp

import (
	"strings"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/onet/v3/log"
	"go.dedis.ch/verenc"
	"go.dedis.ch/verenc/elgamal"
	"golang.org/x/xerrors"
)

// PrfEqDlogs proves that Result1 = Base1^x and Result2 = Base2^x for the
// same secret x. Both bases are blinded with the same z, which is what ties
// the two logarithms together.
type PrfEqDlogs struct {
	Result1      kyber.Point
	Base1        kyber.Point
	Result2      kyber.Point
	Base2        kyber.Point
	BlindedBase1 kyber.Point
	BlindedBase2 kyber.Point
	R            kyber.Scalar
}

// NewPrfEqDlogs proves that dlog_base1(result1) == dlog_base2(result2) == x.
func NewPrfEqDlogs(ctx *elgamal.CryptoContext, base1, base2, result1, result2 kyber.Point,
	x kyber.Scalar) (*PrfEqDlogs, error) {
	suite := ctx.Suite()
	z, err := ctx.RandomScalar()
	if err != nil {
		return nil, xerrors.Errorf("commitment: %w", err)
	}
	blinded1 := suite.Point().Mul(z, base1)
	blinded2 := suite.Point().Mul(z, base2)
	c := challenge(suite, EqDlogsTag, base1, base2, result1, result2, blinded1, blinded2)
	return &PrfEqDlogs{
		Result1:      result1.Clone(),
		Base1:        base1.Clone(),
		Result2:      result2.Clone(),
		Base2:        base2.Clone(),
		BlindedBase1: blinded1,
		BlindedBase2: blinded2,
		R:            response(suite, z, c, x),
	}, nil
}

// Verify checks both base1^R == BlindedBase1 + result1^c and
// base2^R == BlindedBase2 + result2^c.
func (p *PrfEqDlogs) Verify(suite verenc.Suite) bool {
	if !wellFormed(suite, p.R, p.Result1, p.Base1, p.Result2, p.Base2, p.BlindedBase1, p.BlindedBase2) {
		log.Lvl3("dlog proof is incomplete")
		return false
	}
	c := challenge(suite, EqDlogsTag, p.Base1, p.Base2, p.Result1, p.Result2,
		p.BlindedBase1, p.BlindedBase2)
	if !holds(suite, p.Base1, p.BlindedBase1, p.Result1, p.R, c) {
		log.Lvl3("dlog proof: equation on base1 failed")
		return false
	}
	if !holds(suite, p.Base2, p.BlindedBase2, p.Result2, p.R, c) {
		log.Lvl3("dlog proof: equation on base2 failed")
		return false
	}
	return true
}

// String returns
// "result1:base1:result2:base2:blinded_base1:blinded_base2:r" in base64.
func (p *PrfEqDlogs) String() string {
	return strings.Join([]string{
		verenc.PointToBase64(p.Result1),
		verenc.PointToBase64(p.Base1),
		verenc.PointToBase64(p.Result2),
		verenc.PointToBase64(p.Base2),
		verenc.PointToBase64(p.BlindedBase1),
		verenc.PointToBase64(p.BlindedBase2),
		verenc.ScalarToBase64(p.R),
	}, Separator)
}

// ParsePrfEqDlogs reads back the text form of String.
func ParsePrfEqDlogs(suite verenc.Suite, s string) (*PrfEqDlogs, error) {
	points, r, err := parseTranscript(suite, s, 6)
	if err != nil {
		return nil, xerrors.Errorf("dlog proof: %w", err)
	}
	return &PrfEqDlogs{
		Result1:      points[0],
		Base1:        points[1],
		Result2:      points[2],
		Base2:        points[3],
		BlindedBase1: points[4],
		BlindedBase2: points[5],
		R:            r,
	}, nil
}
