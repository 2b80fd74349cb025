package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.dedis.ch/onet/v3/log"
	"go.dedis.ch/verenc"
	"go.dedis.ch/verenc/threshold"
	"go.dedis.ch/verenc/vcadmin/lib"
	"go.dedis.ch/verenc/zkp"
	"golang.org/x/xerrors"
)

// This is required; without it onet/log/testuitl.go:interestingGoroutines will
// call main.main() interesting.
func TestMain(m *testing.M) {
	log.MainTest(m)
}

// run executes vcadmin with the config directory dir and returns the
// lines it printed.
func run(t *testing.T, dir string, args ...string) ([]string, error) {
	b := &bytes.Buffer{}
	cliApp.Writer = b
	cliApp.ErrWriter = b
	err := cliApp.Run(append([]string{"vcadmin", "-c", dir}, args...))
	return strings.Fields(b.String()), err
}

func TestCli(t *testing.T) {
	dir, err := ioutil.TempDir("", "vcadmin-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	log.Lvl1("keygen")
	out, err := run(t, dir, "keygen")
	require.NoError(t, err)
	require.Len(t, out, 1)
	pub := out[0]
	key, ok := cliApp.Metadata["KEY"].(string)
	require.True(t, ok)

	log.Lvl1("encrypt")
	out, err = run(t, dir, "encrypt", "--pub", pub, "--exp", "5", "--prove")
	require.NoError(t, err)
	require.Len(t, out, 2)
	ct, prfPlaintext := out[0], out[1]

	out, err = run(t, dir, "verify", "--kind", "plaintext", prfPlaintext)
	require.NoError(t, err)
	require.Equal(t, []string{"valid"}, out)

	log.Lvl1("decrypt")
	suite := verenc.DefaultSuite
	five := verenc.PointToBase64(suite.Point().Mul(suite.Scalar().SetInt64(5), nil))
	out, err = run(t, dir, "decrypt", "--key", key, "--prove", ct)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, five, out[0])
	prfDecryption := out[1]

	out, err = run(t, dir, "verify", "--kind", "decryption", "--pub", pub, prfDecryption)
	require.NoError(t, err)
	require.Equal(t, []string{"valid"}, out)

	log.Lvl1("rerand")
	out, err = run(t, dir, "rerand", "--pub", pub, ct)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotEqual(t, ct, out[0])
	out, err = run(t, dir, "decrypt", "--key", key, out[0])
	require.NoError(t, err)
	require.Equal(t, []string{five}, out)
}

func TestCli_VerifyInvalid(t *testing.T) {
	dir, err := ioutil.TempDir("", "vcadmin-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	out, err := run(t, dir, "keygen")
	require.NoError(t, err)
	pub := out[0]
	out, err = run(t, dir, "encrypt", "--pub", pub, "--exp", "1", "--prove")
	require.NoError(t, err)
	fields := strings.Split(out[1], zkp.Separator)

	// Another valid scalar in place of the response.
	fields[len(fields)-1] = verenc.ScalarToBase64(verenc.DefaultSuite.Scalar().One())
	out, err = run(t, dir, "verify", "--kind", "plaintext", strings.Join(fields, zkp.Separator))
	require.Equal(t, errInvalidProof, err)
	require.Equal(t, []string{"invalid"}, out)

	_, err = run(t, dir, "verify", "--kind", "decryption", "--pub", pub, strings.Join(fields, zkp.Separator))
	require.True(t, xerrors.Is(err, threshold.Length))

	_, err = run(t, dir, "verify", "--kind", "schnorr", strings.Join(fields, zkp.Separator))
	require.Error(t, err)
}

func TestCli_Errors(t *testing.T) {
	dir, err := ioutil.TempDir("", "vcadmin-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	_, err = run(t, dir, "encrypt", "--pub", "not-a-key")
	require.True(t, xerrors.Is(err, verenc.ErrInvalidEncoding))

	_, err = run(t, dir, "decrypt", "--key", "missing.toml", "abc:def")
	require.Error(t, err)

	_, err = run(t, dir, "decrypt")
	require.Error(t, err)

	_, err = run(t, dir, "rerand")
	require.Error(t, err)
}

func TestCli_ConfiguredSuite(t *testing.T) {
	dir, err := ioutil.TempDir("", "vcadmin-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	lib.ConfigPath = dir
	require.NoError(t, lib.SaveConfig(lib.Config{Suite: "P256"}))

	out, err := run(t, dir, "keygen")
	require.NoError(t, err)
	key := cliApp.Metadata["KEY"].(string)
	suite, _, err := lib.LoadKey(key)
	require.NoError(t, err)
	require.Equal(t, "P256", suite.String())

	out, err = run(t, dir, "encrypt", "--pub", out[0], "--exp", "3")
	require.NoError(t, err)
	out, err = run(t, dir, "decrypt", "--key", key, out[0])
	require.NoError(t, err)
	three := verenc.PointToBase64(suite.Point().Mul(suite.Scalar().SetInt64(3), nil))
	require.Equal(t, []string{three}, out)
}

// A decryption proof is only valid for the key it is checked against.
func TestCli_VerifyDecryptionKey(t *testing.T) {
	dir, err := ioutil.TempDir("", "vcadmin-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	out, err := run(t, dir, "keygen")
	require.NoError(t, err)
	pub := out[0]
	out, err = run(t, dir, "keygen")
	require.NoError(t, err)
	otherPub := out[0]
	otherKey := cliApp.Metadata["KEY"].(string)

	// Someone holding the other key answers for a ciphertext under pub.
	out, err = run(t, dir, "encrypt", "--pub", pub, "--exp", "7")
	require.NoError(t, err)
	out, err = run(t, dir, "decrypt", "--key", otherKey, "--prove", out[0])
	require.NoError(t, err)
	require.Len(t, out, 2)
	share := out[1]

	_, err = run(t, dir, "verify", "--kind", "decryption", share)
	require.Error(t, err)

	out, err = run(t, dir, "verify", "--kind", "decryption", "--pub", pub, share)
	require.Equal(t, errInvalidProof, err)
	require.Equal(t, []string{"invalid"}, out)

	out, err = run(t, dir, "verify", "--kind", "decryption", "--pub", otherPub, share)
	require.NoError(t, err)
	require.Equal(t, []string{"valid"}, out)
}
