package verenc

import (
	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/suites"
	"golang.org/x/xerrors"
)

// Suite is the set of group and hash operations the toolkit needs from its
// backend. Any kyber suite satisfies it.
type Suite interface {
	kyber.Encoding
	kyber.Group
	kyber.HashFactory
	kyber.XOFFactory
	kyber.Random
}

// DefaultSuiteName is the kyber suite used when nothing else is configured.
const DefaultSuiteName = "Ed25519"

// DefaultSuite is the Ed25519 curve.
var DefaultSuite Suite = suites.MustFind(DefaultSuiteName)

// SuiteByName looks up a kyber suite, e.g. "Ed25519" or "P256".
func SuiteByName(name string) (Suite, error) {
	if name == "" {
		return DefaultSuite, nil
	}
	s, err := suites.Find(name)
	if err != nil {
		return nil, xerrors.Errorf("unknown suite %q: %v", name, err)
	}
	return s, nil
}
