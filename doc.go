/*
Package verenc holds the primitives shared by the verifiable encryption
toolkit: the kyber suite the scheme runs on, base64 codecs for group
elements and scalars, the incremental hasher used for tags and Fiat-Shamir
challenges, and the error kinds every package returns.

The ElGamal layer lives in the elgamal package, the three Sigma protocols
in the zkp package. vcadmin is a command line front-end over both.
*/
package verenc
