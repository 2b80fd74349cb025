package lib

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"
	"go.dedis.ch/verenc"
	"go.dedis.ch/verenc/elgamal"
)

func withConfigPath(t *testing.T) func() {
	dir, err := ioutil.TempDir("", "vcadmin-lib")
	require.NoError(t, err)
	ConfigPath = dir
	return func() {
		ConfigPath = "."
		os.RemoveAll(dir)
	}
}

func TestConfig_Default(t *testing.T) {
	defer withConfigPath(t)()

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, verenc.DefaultSuiteName, cfg.Suite)
	require.Equal(t, 0, cfg.Debug)
}

func TestConfig_SaveLoad(t *testing.T) {
	defer withConfigPath(t)()

	require.NoError(t, SaveConfig(Config{Suite: "P256", Debug: 2}))
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "P256", cfg.Suite)
	require.Equal(t, 2, cfg.Debug)

	suite, err := cfg.GetSuite()
	require.NoError(t, err)
	require.Equal(t, "P256", suite.String())

	require.NoError(t, SaveConfig(Config{Suite: "Curve448"}))
	cfg, err = LoadConfig()
	require.NoError(t, err)
	_, err = cfg.GetSuite()
	require.Error(t, err)

	err = ioutil.WriteFile(filepath.Join(ConfigPath, VcaName+".toml"), []byte("Suite = "), 0644)
	require.NoError(t, err)
	_, err = LoadConfig()
	require.Error(t, err)
}

func TestKey_SaveLoad(t *testing.T) {
	defer withConfigPath(t)()

	for _, name := range []string{"Ed25519", "P256"} {
		suite, err := verenc.SuiteByName(name)
		require.NoError(t, err)
		kp, err := elgamal.NewCryptoContext(suite).GenerateKeyPair()
		require.NoError(t, err)

		fn, err := SaveKey(suite, kp)
		require.NoError(t, err)
		name, err := KeyFileName(kp.PublicKey)
		require.NoError(t, err)
		require.Equal(t, name, fn)

		fi, err := os.Stat(fn)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0400), fi.Mode().Perm())

		loadedSuite, loaded, err := LoadKey(fn)
		require.NoError(t, err)
		require.Equal(t, suite.String(), loadedSuite.String())
		require.True(t, kp.PublicKey.Equal(loaded.PublicKey))
		require.True(t, kp.Secret.Equal(loaded.Secret))

		// Keys are never overwritten.
		_, err = SaveKey(suite, kp)
		require.Error(t, err)
	}
}

func TestKey_Mismatch(t *testing.T) {
	defer withConfigPath(t)()

	ctx := elgamal.NewCryptoContext(verenc.DefaultSuite)
	kp1, err := ctx.GenerateKeyPair()
	require.NoError(t, err)
	kp2, err := ctx.GenerateKeyPair()
	require.NoError(t, err)

	fn := filepath.Join(ConfigPath, "mixed.toml")
	f, err := os.Create(fn)
	require.NoError(t, err)
	require.NoError(t, toml.NewEncoder(f).Encode(KeyFile{
		Suite:   verenc.DefaultSuiteName,
		Public:  kp1.PublicKey.String(),
		Private: verenc.ScalarToBase64(kp2.Secret),
	}))
	require.NoError(t, f.Close())

	_, _, err = LoadKey(fn)
	require.Error(t, err)

	_, _, err = LoadKey(filepath.Join(ConfigPath, "missing.toml"))
	require.Error(t, err)
}
