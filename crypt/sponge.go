// Package crypt implements the ternary Curl sponge used for transaction
// hashing, proof of work and address derivation.
package crypt

import (
	"github.com/pkg/errors"

	"gitlab.com/semkodev/trinity/convert"
)

const (
	// HashLength is the native digest size and the absorb/squeeze chunk size.
	HashLength = 243
	// StateLength is the full sponge state, three digest blocks wide.
	StateLength = 3 * HashLength

	NumberOfRoundsP27 = 27
	NumberOfRoundsP81 = 81
)

// Mode identifies a sponge construction variant.
type Mode int

const (
	CurlP27 Mode = iota
	CurlP81
	// Kerl is the Keccak-based construction. Its identifier is reserved
	// here so that callers cannot feed it to the Curl constructor by
	// accident; this package does not implement it.
	Kerl
)

func (m Mode) String() string {
	switch m {
	case CurlP27:
		return "CURLP27"
	case CurlP81:
		return "CURLP81"
	case Kerl:
		return "KERL"
	}
	return "UNKNOWN"
}

var (
	ErrInvalidMode = errors.New("invalid sponge mode")
	ErrTritsLength = errors.New("trits length is not a multiple of the hash length")
)

// Sponge is the contract every ternary sponge construction satisfies.
// Proof-of-work search and signing depend on this interface only, never
// on a concrete construction.
type Sponge interface {
	// Absorb feeds input trits into the state, one transform per
	// 243-trit chunk. The input length has to be a non-empty multiple
	// of HashLength.
	Absorb(trits convert.Trits) error
	// Squeeze extracts length output trits, advancing the state after
	// every emitted block so that repeated calls yield fresh output.
	Squeeze(length int) convert.Trits
	// Reset restores the all-zero state for reuse.
	Reset()
}
