package lib

import (
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.dedis.ch/verenc"
	"go.dedis.ch/verenc/elgamal"
	"golang.org/x/xerrors"
)

// VcaName is the name of the application and of its configuration
// directory.
const VcaName = "vcadmin"

// ConfigPath points to where the files will be stored by default.
var ConfigPath = "."

// Config holds the settings found in vcadmin.toml.
type Config struct {
	Suite string
	Debug int
}

// KeyFile is the on-disk form of a key pair.
type KeyFile struct {
	Suite   string
	Public  string
	Private string
}

// LoadConfig reads vcadmin.toml from ConfigPath. A missing file returns
// the default configuration.
func LoadConfig() (Config, error) {
	cfg := Config{Suite: verenc.DefaultSuiteName}
	fn := filepath.Join(ConfigPath, VcaName+".toml")
	if _, err := os.Stat(fn); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(fn, &cfg); err != nil {
		return cfg, verenc.ErrorOrNil(err, "reading "+fn)
	}
	if cfg.Suite == "" {
		cfg.Suite = verenc.DefaultSuiteName
	}
	return cfg, nil
}

// SaveConfig writes cfg to vcadmin.toml in ConfigPath.
func SaveConfig(cfg Config) error {
	if err := os.MkdirAll(ConfigPath, 0755); err != nil {
		return verenc.ErrorOrNil(err, "creating config dir")
	}
	f, err := os.Create(filepath.Join(ConfigPath, VcaName+".toml"))
	if err != nil {
		return verenc.ErrorOrNil(err, "creating config")
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return verenc.ErrorOrNil(err, "encoding config")
	}
	return verenc.WrapError(f.Close())
}

// GetSuite returns the group named in the configuration.
func (cfg Config) GetSuite() (verenc.Suite, error) {
	return verenc.SuiteByName(cfg.Suite)
}

// KeyFileName returns the name of the file holding the key pair of the
// given public key: the first eight bytes of the key in hex.
func KeyFileName(pub elgamal.PublicKey) (string, error) {
	buf, err := pub.Y.MarshalBinary()
	if err != nil {
		return "", xerrors.Errorf("marshaling public key: %v", err)
	}
	if len(buf) > 8 {
		buf = buf[:8]
	}
	return filepath.Join(ConfigPath, "key-"+hex.EncodeToString(buf)+".toml"), nil
}

// SaveKey stores a key pair in ConfigPath and returns the name of the file.
func SaveKey(suite verenc.Suite, kp *elgamal.KeyPair) (string, error) {
	if err := os.MkdirAll(ConfigPath, 0755); err != nil {
		return "", verenc.ErrorOrNil(err, "creating config dir")
	}
	fn, err := KeyFileName(kp.PublicKey)
	if err != nil {
		return "", err
	}

	// perms = 0400 because there is key material inside this file.
	f, err := os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0400)
	if err != nil {
		return "", verenc.ErrorOrNil(err, "could not write "+fn)
	}
	kf := KeyFile{
		Suite:   suite.String(),
		Public:  kp.PublicKey.String(),
		Private: verenc.ScalarToBase64(kp.Secret),
	}
	if err := toml.NewEncoder(f).Encode(kf); err != nil {
		f.Close()
		return "", verenc.ErrorOrNil(err, "encoding key")
	}
	return fn, verenc.WrapError(f.Close())
}

// LoadKey reads a key pair written by SaveKey. The private key must match
// the public key.
func LoadKey(fn string) (verenc.Suite, *elgamal.KeyPair, error) {
	var kf KeyFile
	if _, err := toml.DecodeFile(fn, &kf); err != nil {
		return nil, nil, verenc.ErrorOrNil(err, "reading "+fn)
	}
	suite, err := verenc.SuiteByName(kf.Suite)
	if err != nil {
		return nil, nil, xerrors.Errorf("key file %s: %w", fn, err)
	}
	pub, err := elgamal.PublicKeyFromBase64(suite, kf.Public)
	if err != nil {
		return nil, nil, xerrors.Errorf("public key: %w", err)
	}
	secret, err := verenc.ScalarFromBase64(suite, kf.Private)
	if err != nil {
		return nil, nil, xerrors.Errorf("private key: %w", err)
	}
	if !suite.Point().Mul(secret, nil).Equal(pub.Y) {
		return nil, nil, xerrors.Errorf("key file %s: private key doesn't match public key", fn)
	}
	return suite, &elgamal.KeyPair{PublicKey: pub, Secret: secret, Y: pub.Y}, nil
}
