package threshold

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.dedis.ch/verenc"
	"golang.org/x/xerrors"
)

func TestEncodingError(t *testing.T) {
	err := xerrors.Errorf("decoding ciphertext: %w", Length)
	require.True(t, xerrors.Is(err, Length))
	require.True(t, xerrors.Is(err, verenc.ErrMalformedCiphertext))
	require.False(t, xerrors.Is(err, CurveElem))

	err = xerrors.Errorf("decoding ciphertext: %w", CurveElem)
	require.True(t, xerrors.Is(err, verenc.ErrInvalidEncoding))
	require.Equal(t, "decoding ciphertext: bad group element encoding", err.Error())

	require.Nil(t, EncodingError(0).Unwrap())
}
