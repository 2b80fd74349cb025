package zkp

import (
	"strings"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/onet/v3/network"
	"go.dedis.ch/protobuf"
	"go.dedis.ch/verenc"
	"go.dedis.ch/verenc/threshold"
	"golang.org/x/xerrors"
)

func init() {
	network.RegisterMessages(&PrfKnowPlaintext{}, &PrfEqDlogs{}, &PrfDecryption{})
}

// Separator joins the fields of the text form of a proof.
const Separator = ":"

// Kind names one of the three proof types.
type Kind string

// The proof kinds understood by ParseProof.
const (
	KindKnowPlaintext Kind = "plaintext"
	KindEqDlogs       Kind = "dlogs"
	KindDecryption    Kind = "decryption"
)

// ParseProof reads the text form of a proof of the given kind.
func ParseProof(suite verenc.Suite, kind Kind, s string) (Proof, error) {
	var p Proof
	var err error
	switch kind {
	case KindKnowPlaintext:
		p, err = ParsePrfKnowPlaintext(suite, s)
	case KindEqDlogs:
		p, err = ParsePrfEqDlogs(suite, s)
	case KindDecryption:
		p, err = ParsePrfDecryption(suite, s)
	default:
		return nil, xerrors.Errorf("unknown proof kind %q", kind)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// parseTranscript splits s into nPoints group elements followed by one
// scalar.
func parseTranscript(suite verenc.Suite, s string, nPoints int) ([]kyber.Point, kyber.Scalar, error) {
	fields := strings.Split(s, Separator)
	if len(fields) != nPoints+1 {
		return nil, nil, xerrors.Errorf("%d fields instead of %d: %w",
			len(fields), nPoints+1, threshold.Length)
	}
	points := make([]kyber.Point, nPoints)
	for i := range points {
		p, err := verenc.PointFromBase64(suite, fields[i])
		if err != nil {
			return nil, nil, xerrors.Errorf("field %d (%v): %w", i, err, threshold.CurveElem)
		}
		points[i] = p
	}
	r, err := verenc.ScalarFromBase64(suite, fields[nPoints])
	if err != nil {
		return nil, nil, xerrors.Errorf("response: %w", err)
	}
	return points, r, nil
}

// DecodePrfKnowPlaintext reads a protobuf-encoded PrfKnowPlaintext.
func DecodePrfKnowPlaintext(suite verenc.Suite, buf []byte) (*PrfKnowPlaintext, error) {
	p := &PrfKnowPlaintext{}
	if err := decode(suite, buf, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DecodePrfEqDlogs reads a protobuf-encoded PrfEqDlogs.
func DecodePrfEqDlogs(suite verenc.Suite, buf []byte) (*PrfEqDlogs, error) {
	p := &PrfEqDlogs{}
	if err := decode(suite, buf, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DecodePrfDecryption reads a protobuf-encoded PrfDecryption.
func DecodePrfDecryption(suite verenc.Suite, buf []byte) (*PrfDecryption, error) {
	p := &PrfDecryption{}
	if err := decode(suite, buf, p); err != nil {
		return nil, err
	}
	return p, nil
}

// decode doesn't check that every field is present, Verify rejects
// incomplete transcripts.
func decode(suite verenc.Suite, buf []byte, p Proof) error {
	err := protobuf.DecodeWithConstructors(buf, p, network.DefaultConstructors(suite))
	if err != nil {
		return verenc.Errorf(verenc.ErrInvalidEncoding, "proof: %v", err)
	}
	return nil
}
