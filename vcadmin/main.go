// vcadmin generates ElGamal key pairs, encrypts and decrypts group elements
// and creates and checks the proofs of the zkp package, all in their text
// forms.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.dedis.ch/onet/v3/cfgpath"
	"go.dedis.ch/onet/v3/log"
	"go.dedis.ch/verenc"
	"go.dedis.ch/verenc/elgamal"
	"go.dedis.ch/verenc/vcadmin/lib"
	"go.dedis.ch/verenc/zkp"
	"golang.org/x/xerrors"
	"gopkg.in/urfave/cli.v1"
)

var cliApp = cli.NewApp()

// getDataPath is a function pointer so that tests can hook and modify this.
var getDataPath = cfgpath.GetDataPath

var gitTag = "dev"

// errInvalidProof makes verify exit with a non-zero status.
var errInvalidProof = errors.New("proof is invalid")

func init() {
	cliApp.Name = lib.VcaName
	cliApp.Usage = "Encrypt with ElGamal and prove what you did."
	cliApp.Version = gitTag
	cliApp.Commands = cmds // stored in "commands.go"
	cliApp.Metadata = map[string]interface{}{}
	cliApp.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "debug, d",
			Value: 0,
			Usage: "debug-level: 1 for terse, 5 for maximal",
		},
		cli.StringFlag{
			Name:   "config, c",
			EnvVar: "VC_CONFIG",
			Value:  getDataPath(lib.VcaName),
			Usage:  "path to configuration-directory",
		},
	}
	cliApp.Before = func(c *cli.Context) error {
		lib.ConfigPath = c.String("config")
		cfg, err := lib.LoadConfig()
		if err != nil {
			return err
		}
		lvl := c.Int("debug")
		if cfg.Debug > lvl {
			lvl = cfg.Debug
		}
		log.SetDebugVisible(lvl)
		return nil
	}
}

func main() {
	err := cliApp.Run(os.Args)
	if err != nil {
		log.Fatalf("error: %+v", err)
	}
}

// cryptoContext returns a CryptoContext over the configured suite.
func cryptoContext() (*elgamal.CryptoContext, error) {
	cfg, err := lib.LoadConfig()
	if err != nil {
		return nil, err
	}
	suite, err := cfg.GetSuite()
	if err != nil {
		return nil, err
	}
	return elgamal.NewCryptoContext(suite), nil
}

func keygen(c *cli.Context) error {
	ctx, err := cryptoContext()
	if err != nil {
		return err
	}
	kp, err := ctx.GenerateKeyPair()
	if err != nil {
		return xerrors.Errorf("generating key pair: %w", err)
	}
	fn, err := lib.SaveKey(ctx.Suite(), kp)
	if err != nil {
		return err
	}
	log.Infof("Stored key pair in %s", fn)
	fmt.Fprintln(c.App.Writer, kp.PublicKey)

	// For the tests to use.
	c.App.Metadata["KEY"] = fn
	return nil
}

func encrypt(c *cli.Context) error {
	ctx, err := cryptoContext()
	if err != nil {
		return err
	}
	pub, err := elgamal.PublicKeyFromBase64(ctx.Suite(), c.String("pub"))
	if err != nil {
		return xerrors.Errorf("--pub: %w", err)
	}
	r, err := ctx.RandomScalar()
	if err != nil {
		return err
	}
	m := ctx.RaiseGenerator(ctx.Suite().Scalar().SetInt64(c.Int64("exp")))
	ct := pub.Encrypt(ctx, m, r)
	fmt.Fprintln(c.App.Writer, ct)

	if c.Bool("prove") {
		p, err := zkp.NewPrfKnowPlaintext(ctx, ct, r)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, p)
	}
	return nil
}

func decrypt(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("please give the ciphertext to decrypt")
	}
	if c.String("key") == "" {
		return errors.New("--key is required")
	}
	suite, kp, err := lib.LoadKey(c.String("key"))
	if err != nil {
		return err
	}
	ctx := elgamal.NewCryptoContext(suite)
	ct, err := elgamal.CiphertextFromString(suite, c.Args().First())
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, verenc.PointToBase64(ct.Decrypt(kp.Secret)))

	if c.Bool("prove") {
		dec := suite.Point().Mul(kp.Secret, ct.C1)
		p, err := zkp.NewPrfDecryption(ctx, ct, dec, kp.Secret, kp.Y)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, p)
	}
	return nil
}

func rerand(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("please give the ciphertext to re-randomize")
	}
	ctx, err := cryptoContext()
	if err != nil {
		return err
	}
	pub, err := elgamal.PublicKeyFromBase64(ctx.Suite(), c.String("pub"))
	if err != nil {
		return xerrors.Errorf("--pub: %w", err)
	}
	ct, err := elgamal.CiphertextFromString(ctx.Suite(), c.Args().First())
	if err != nil {
		return err
	}
	r, err := ctx.RandomScalar()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, pub.Rerandomize(ctx, ct, r))
	return nil
}

func verify(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("please give the proof to verify")
	}
	ctx, err := cryptoContext()
	if err != nil {
		return err
	}
	kind := zkp.Kind(c.String("kind"))
	if kind == zkp.KindDecryption && c.String("pub") == "" {
		return errors.New("--pub is required to verify a decryption proof")
	}
	p, err := zkp.ParseProof(ctx.Suite(), kind, c.Args().First())
	if err != nil {
		return err
	}

	valid := p.Verify(ctx.Suite())
	if pd, ok := p.(*zkp.PrfDecryption); ok {
		pub, err := elgamal.PublicKeyFromBase64(ctx.Suite(), c.String("pub"))
		if err != nil {
			return xerrors.Errorf("--pub: %w", err)
		}
		valid = pd.VerifyFor(ctx.Suite(), pub)
	}
	if !valid {
		fmt.Fprintln(c.App.Writer, "invalid")
		return errInvalidProof
	}
	fmt.Fprintln(c.App.Writer, "valid")
	return nil
}
