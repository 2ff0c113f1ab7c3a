// Package commands implements the primctl CLI, a host that drives every
// primitive operation from the shell.
//
// Binary data is read from --in (default stdin) and written to --out
// (default stdout). Keys, nonces, salts and signatures are passed as hex.
package commands
