package main

import (
	"gopkg.in/urfave/cli.v1"
)

var cmds = cli.Commands{
	{
		Name:    "keygen",
		Usage:   "create a new key pair and store it in the config directory",
		Aliases: []string{"k"},
		Action:  keygen,
	},
	{
		Name:      "encrypt",
		Usage:     "encrypt g^exp under a public key",
		Aliases:   []string{"e"},
		ArgsUsage: " ",
		Action:    encrypt,
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "pub, p",
				Usage: "the public key in base64 (required)",
			},
			cli.Int64Flag{
				Name:  "exp, x",
				Usage: "the exponent of the generator to encrypt",
			},
			cli.BoolFlag{
				Name:  "prove",
				Usage: "also print a proof of knowledge of the randomness",
			},
		},
	},
	{
		Name:      "decrypt",
		Usage:     "decrypt a ciphertext with a stored key pair",
		Aliases:   []string{"d"},
		ArgsUsage: "ciphertext",
		Action:    decrypt,
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "key, k",
				Usage: "the key file written by keygen (required)",
			},
			cli.BoolFlag{
				Name:  "prove",
				Usage: "also print a proof of correct decryption",
			},
		},
	},
	{
		Name:      "rerand",
		Usage:     "re-randomize a ciphertext",
		Aliases:   []string{"r"},
		ArgsUsage: "ciphertext",
		Action:    rerand,
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "pub, p",
				Usage: "the public key the ciphertext is encrypted for (required)",
			},
		},
	},
	{
		Name:      "verify",
		Usage:     "check a proof given in its text form",
		Aliases:   []string{"v"},
		ArgsUsage: "proof",
		Action:    verify,
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "kind",
				Value: "plaintext",
				Usage: "the kind of proof: plaintext, dlogs or decryption",
			},
			cli.StringFlag{
				Name:  "pub, p",
				Usage: "the public key a decryption proof must be made with (required for decryption)",
			},
		},
	},
}
