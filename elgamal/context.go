package elgamal

import (
	"crypto/rand"
	"io"
	"sync"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/onet/v3/log"
	"go.dedis.ch/verenc"
	"golang.org/x/xerrors"
)

// seedSize is the number of random bytes drawn per scalar or element. They
// seed an XOF of the suite, which then picks a uniform value.
const seedSize = 32

// CryptoContext is the single point of access to the secure random source
// and the generator of the group. It is safe for concurrent use: every draw
// from the random source happens under a lock, so concurrent callers never
// see interleaved reads.
type CryptoContext struct {
	suite verenc.Suite
	g     kyber.Point

	rngLock sync.Mutex
	rng     io.Reader
}

// NewCryptoContext returns a context for the given suite that reads its
// randomness from crypto/rand.
func NewCryptoContext(suite verenc.Suite) *CryptoContext {
	return NewCryptoContextWithReader(suite, rand.Reader)
}

// NewCryptoContextWithReader returns a context drawing its randomness from
// rng. rng must be a cryptographically secure source.
func NewCryptoContextWithReader(suite verenc.Suite, rng io.Reader) *CryptoContext {
	log.Lvl3("new crypto context on", suite.String())
	return &CryptoContext{
		suite: suite,
		g:     suite.Point().Base(),
		rng:   rng,
	}
}

// Suite returns the suite this context works on.
func (ctx *CryptoContext) Suite() verenc.Suite {
	return ctx.suite
}

// Generator returns a copy of the fixed base point.
func (ctx *CryptoContext) Generator() kyber.Point {
	return ctx.g.Clone()
}

// RaiseGenerator returns g^s.
func (ctx *CryptoContext) RaiseGenerator(s kyber.Scalar) kyber.Point {
	return ctx.suite.Point().Mul(s, ctx.g)
}

// RandomScalar returns a fresh uniform scalar.
func (ctx *CryptoContext) RandomScalar() (kyber.Scalar, error) {
	xof, err := ctx.randomXOF()
	if err != nil {
		return nil, err
	}
	return ctx.suite.Scalar().Pick(xof), nil
}

// RandomElement returns a fresh uniform element of the prime-order group.
// The suite's Pick retries internally until the random bytes map to a valid
// point.
func (ctx *CryptoContext) RandomElement() (kyber.Point, error) {
	xof, err := ctx.randomXOF()
	if err != nil {
		return nil, err
	}
	return ctx.suite.Point().Pick(xof), nil
}

// GenerateKeyPair draws a random secret x and returns it together with
// y = g^x.
func (ctx *CryptoContext) GenerateKeyPair() (*KeyPair, error) {
	x, err := ctx.RandomScalar()
	if err != nil {
		return nil, xerrors.Errorf("generating key pair: %w", err)
	}
	y := ctx.RaiseGenerator(x)
	return &KeyPair{
		PublicKey: NewPublicKey(y),
		Secret:    x,
		Y:         y,
	}, nil
}

func (ctx *CryptoContext) randomXOF() (kyber.XOF, error) {
	seed, err := ctx.draw(seedSize)
	if err != nil {
		return nil, err
	}
	return ctx.suite.XOF(seed), nil
}

// draw reads n bytes from the random source as one atomic operation.
func (ctx *CryptoContext) draw(n int) ([]byte, error) {
	buf := make([]byte, n)
	ctx.rngLock.Lock()
	_, err := io.ReadFull(ctx.rng, buf)
	ctx.rngLock.Unlock()
	if err != nil {
		return nil, verenc.Errorf(verenc.ErrRandomnessUnavailable,
			"reading %d bytes: %v", n, err)
	}
	return buf, nil
}
