package elgamal

import (
	"fmt"
	"strings"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/verenc"
	"go.dedis.ch/verenc/threshold"
	"golang.org/x/xerrors"
)

// Separator joins the two elements in the text form of a ciphertext.
const Separator = ":"

// Ciphertext is an ElGamal ciphertext (c1, c2) = (g^r, m + y^r).
type Ciphertext struct {
	C1 kyber.Point
	C2 kyber.Point
}

// Add returns the componentwise sum of ct and other. It decrypts to the sum
// of both plaintexts if both were encrypted under the same key.
func (ct *Ciphertext) Add(other *Ciphertext) *Ciphertext {
	return &Ciphertext{
		C1: ct.C1.Clone().Add(ct.C1, other.C1),
		C2: ct.C2.Clone().Add(ct.C2, other.C2),
	}
}

// Decrypt returns c2 - c1^x. A wrong secret gives a wrong element without
// any error, use AuthCiphertext when that matters.
func (ct *Ciphertext) Decrypt(secret kyber.Scalar) kyber.Point {
	shared := ct.C1.Clone().Mul(secret, ct.C1)
	return ct.C2.Clone().Sub(ct.C2, shared)
}

// Equal returns true if both components are equal.
func (ct *Ciphertext) Equal(other *Ciphertext) bool {
	return ct.C1.Equal(other.C1) && ct.C2.Equal(other.C2)
}

// String returns the text form "<c1>:<c2>" with both elements in base64.
func (ct *Ciphertext) String() string {
	return fmt.Sprintf("%s%s%s", verenc.PointToBase64(ct.C1), Separator,
		verenc.PointToBase64(ct.C2))
}

// CiphertextFromString parses the text form of a ciphertext. A wrong number
// of fields gives threshold.Length, a field that isn't a group element gives
// threshold.CurveElem.
func CiphertextFromString(g kyber.Group, s string) (*Ciphertext, error) {
	fields := strings.Split(s, Separator)
	if len(fields) != 2 {
		return nil, xerrors.Errorf("ciphertext with %d fields: %w",
			len(fields), threshold.Length)
	}
	elems, err := parsePoints(g, fields)
	if err != nil {
		return nil, err
	}
	return &Ciphertext{C1: elems[0], C2: elems[1]}, nil
}

func parsePoints(g kyber.Group, fields []string) ([]kyber.Point, error) {
	elems := make([]kyber.Point, len(fields))
	for i, f := range fields {
		p, err := verenc.PointFromBase64(g, f)
		if err != nil {
			return nil, xerrors.Errorf("field %d (%v): %w", i, err, threshold.CurveElem)
		}
		elems[i] = p
	}
	return elems, nil
}
