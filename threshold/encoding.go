// Package threshold holds the types the threshold decryption service shares
// with the encryption layer.
package threshold

import (
	"go.dedis.ch/verenc"
)

// EncodingError tells apart the two ways a colon-separated text encoding
// can be wrong.
type EncodingError int

const (
	// CurveElem means one of the fields is not a valid group element.
	CurveElem EncodingError = iota + 1
	// Length means the text has the wrong number of fields.
	Length
)

func (e EncodingError) Error() string {
	switch e {
	case CurveElem:
		return "bad group element encoding"
	case Length:
		return "wrong number of fields"
	default:
		return "unknown encoding error"
	}
}

// Unwrap maps the error onto the kinds of the verenc package, so that
// xerrors.Is works with either.
func (e EncodingError) Unwrap() error {
	switch e {
	case CurveElem:
		return verenc.ErrInvalidEncoding
	case Length:
		return verenc.ErrMalformedCiphertext
	default:
		return nil
	}
}
