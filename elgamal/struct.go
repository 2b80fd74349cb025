package elgamal

import (
	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/onet/v3/network"
	"go.dedis.ch/protobuf"
	"go.dedis.ch/verenc"
	"golang.org/x/xerrors"
)

func init() {
	network.RegisterMessages(&Ciphertext{}, &AuthCiphertext{}, &PublicKey{})
}

// DecodeCiphertext reads a protobuf-encoded ciphertext.
func DecodeCiphertext(suite verenc.Suite, buf []byte) (*Ciphertext, error) {
	ct := &Ciphertext{}
	err := protobuf.DecodeWithConstructors(buf, ct, network.DefaultConstructors(suite))
	if err != nil {
		return nil, verenc.Errorf(verenc.ErrInvalidEncoding, "ciphertext: %v", err)
	}
	if ct.C1 == nil || ct.C2 == nil {
		return nil, xerrors.Errorf("ciphertext is missing an element: %w",
			verenc.ErrMalformedCiphertext)
	}
	if err := checkSubgroup(suite, ct); err != nil {
		return nil, err
	}
	return ct, nil
}

// DecodeAuthCiphertext reads a protobuf-encoded authenticated ciphertext.
func DecodeAuthCiphertext(suite verenc.Suite, buf []byte) (*AuthCiphertext, error) {
	act := &AuthCiphertext{}
	err := protobuf.DecodeWithConstructors(buf, act, network.DefaultConstructors(suite))
	if err != nil {
		return nil, verenc.Errorf(verenc.ErrInvalidEncoding, "auth ciphertext: %v", err)
	}
	if act.Contents.C1 == nil || act.Contents.C2 == nil {
		return nil, xerrors.Errorf("auth ciphertext is missing an element: %w",
			verenc.ErrMalformedCiphertext)
	}
	if err := checkSubgroup(suite, &act.Contents); err != nil {
		return nil, err
	}
	return act, nil
}

func checkSubgroup(suite verenc.Suite, ct *Ciphertext) error {
	for i, p := range []kyber.Point{ct.C1, ct.C2} {
		if !verenc.InPrimeOrderSubgroup(suite, p) {
			return verenc.Errorf(verenc.ErrInvalidEncoding,
				"ciphertext element %d has a small-order component", i)
		}
	}
	return nil
}
