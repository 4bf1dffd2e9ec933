package crypt

import (
	"github.com/pkg/errors"

	"gitlab.com/semkodev/trinity/convert"
)

// truthTable drives the per-position substitution. The two entries holding
// 2 are unreachable for valid trit input; they are part of the published
// algorithm and have to stay exactly as they are.
var truthTable = [11]convert.Trit{1, 0, -1, 2, 1, -1, 0, 2, -1, 1, 0}

// Curl is the ternary sponge construction of the tangle. The state and
// scratch buffers are fixed-size arrays, so a transform allocates nothing
// and copying a Curl value copies the full state.
type Curl struct {
	rounds  int
	state   [StateLength]convert.Trit
	scratch [StateLength]convert.Trit
}

var _ Sponge = (*Curl)(nil)

// NewCurl creates a zeroed engine for the given mode. Only CurlP27 and
// CurlP81 are valid; everything else is rejected.
func NewCurl(mode Mode) (*Curl, error) {
	var rounds int
	switch mode {
	case CurlP27:
		rounds = NumberOfRoundsP27
	case CurlP81:
		rounds = NumberOfRoundsP81
	default:
		return nil, errors.Wrapf(ErrInvalidMode, "%s is not a Curl variant", mode)
	}
	return &Curl{rounds: rounds}, nil
}

// Rounds returns the round count fixed at construction.
func (curl *Curl) Rounds() int {
	return curl.rounds
}

// Clone returns an independent deep copy of the engine. The copy never
// aliases the receiver's state, so both can be mutated separately.
func (curl *Curl) Clone() *Curl {
	dup := *curl
	return &dup
}

func (curl *Curl) Absorb(trits convert.Trits) error {
	if len(trits) == 0 || len(trits)%HashLength != 0 {
		return errors.Wrapf(ErrTritsLength, "cannot absorb %d trits", len(trits))
	}
	for len(trits) > 0 {
		copy(curl.state[:HashLength], trits[:HashLength])
		curl.transform()
		trits = trits[HashLength:]
	}
	return nil
}

func (curl *Curl) Squeeze(length int) convert.Trits {
	out := make(convert.Trits, length)
	for chunk := out; len(chunk) > 0; {
		n := copy(chunk, curl.state[:HashLength])
		curl.transform()
		chunk = chunk[n:]
	}
	return out
}

func (curl *Curl) Reset() {
	curl.state = [StateLength]convert.Trit{}
}

// transform runs the full round function. Every round snapshots the state
// into the scratch buffer first: the substitution has to read the previous
// round's finished values, never values rewritten in the same round.
func (curl *Curl) transform() {
	index := 0
	for round := 0; round < curl.rounds; round++ {
		curl.scratch = curl.state
		for i := 0; i < StateLength; i++ {
			prev := index
			// Steps by +364 mod 729; the branch covers the wraparound.
			if index < 365 {
				index += 364
			} else {
				index -= 365
			}
			curl.state[i] = truthTable[curl.scratch[prev]+curl.scratch[index]<<2+5]
		}
	}
}

// HashTrits computes the 81-round Curl digest of the given trits.
func HashTrits(trits convert.Trits) (convert.Trits, error) {
	curl, err := NewCurl(CurlP81)
	if err != nil {
		return nil, err
	}
	if err := curl.Absorb(trits); err != nil {
		return nil, err
	}
	return curl.Squeeze(HashLength), nil
}
