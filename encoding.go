package verenc

import (
	"bytes"
	"encoding/base64"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/onet/v3/log"
)

// PointToBase64 returns the standard base64 form of the canonical encoding
// of p.
func PointToBase64(p kyber.Point) string {
	buf, err := p.MarshalBinary()
	if err != nil {
		log.Error("couldn't marshal point:", err)
		return ""
	}
	return base64.StdEncoding.EncodeToString(buf)
}

// PointFromBase64 decodes a point of the given group from its base64 form.
func PointFromBase64(g kyber.Group, s string) (kyber.Point, error) {
	buf, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, Errorf(ErrInvalidEncoding, "point %q is not base64", s)
	}
	if len(buf) != g.PointLen() {
		return nil, Errorf(ErrInvalidEncoding, "point has %d bytes instead of %d",
			len(buf), g.PointLen())
	}
	p := g.Point()
	if err := p.UnmarshalBinary(buf); err != nil {
		return nil, Errorf(ErrInvalidEncoding, "point %q: %v", s, err)
	}
	if !InPrimeOrderSubgroup(g, p) {
		return nil, Errorf(ErrInvalidEncoding, "point %q has a small-order component", s)
	}
	return p, nil
}

// InPrimeOrderSubgroup returns true if q*p is the neutral element, q being
// the order of g. Curves with a cofactor, like Ed25519, also hold points of
// small order that UnmarshalBinary accepts.
func InPrimeOrderSubgroup(g kyber.Group, p kyber.Point) bool {
	// (q-1)*p + p, as q itself reduces to zero.
	qp := g.Point().Mul(g.Scalar().Neg(g.Scalar().One()), p)
	return qp.Add(qp, p).Equal(g.Point().Null())
}

// ScalarToBase64 returns the standard base64 form of the canonical encoding
// of s.
func ScalarToBase64(s kyber.Scalar) string {
	buf, err := s.MarshalBinary()
	if err != nil {
		log.Error("couldn't marshal scalar:", err)
		return ""
	}
	return base64.StdEncoding.EncodeToString(buf)
}

// ScalarFromBase64 decodes a scalar of the given group from its base64 form.
// Values that are not reduced modulo the group order are rejected.
func ScalarFromBase64(g kyber.Group, str string) (kyber.Scalar, error) {
	buf, err := base64.StdEncoding.DecodeString(str)
	if err != nil {
		return nil, Errorf(ErrInvalidEncoding, "scalar is not base64")
	}
	if len(buf) != g.ScalarLen() {
		return nil, Errorf(ErrInvalidEncoding, "scalar has %d bytes instead of %d",
			len(buf), g.ScalarLen())
	}
	s := g.Scalar().SetBytes(buf)
	back, err := s.MarshalBinary()
	if err != nil || !bytes.Equal(back, buf) {
		return nil, Errorf(ErrInvalidEncoding, "scalar is not canonical")
	}
	return s, nil
}
