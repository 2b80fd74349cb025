package verenc

import (
	"crypto/sha256"
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasher_Digest(t *testing.T) {
	d := SHA512().Update([]byte("abc")).UpdateString("def").Digest()
	exp := sha512.Sum512([]byte("abcdef"))
	require.Equal(t, exp[:], d)
}

func TestHasher_Points(t *testing.T) {
	p1 := DefaultSuite.Point().Pick(DefaultSuite.RandomStream())
	p2 := DefaultSuite.Point().Base()

	b1, err := p1.MarshalBinary()
	require.NoError(t, err)
	b2, err := p2.MarshalBinary()
	require.NoError(t, err)
	exp := sha256.Sum256(append(b1, b2...))

	require.Equal(t, exp[:], SHA256().UpdatePoints(p1, p2).Digest())
	require.NotEqual(t, exp[:], SHA256().UpdatePoints(p2, p1).Digest())
}

func TestHasher_Scalar(t *testing.T) {
	h1 := SHA256().UpdateString("tag").Scalar(DefaultSuite)
	h2 := SHA256().UpdateString("tag").Scalar(DefaultSuite)
	h3 := SHA256().UpdateString("other").Scalar(DefaultSuite)
	require.True(t, h1.Equal(h2))
	require.False(t, h1.Equal(h3))
}
