package crypt

import (
	"github.com/pkg/errors"

	"gitlab.com/semkodev/trinity/convert"
)

// Address derives an address from one or more 243-trit key digests using
// the 27-round construction.
func Address(digests convert.Trits) (convert.Trits, error) {
	if len(digests) == 0 || len(digests)%HashLength != 0 {
		return nil, errors.Wrapf(ErrTritsLength, "cannot derive an address from %d digest trits", len(digests))
	}
	curl, err := NewCurl(CurlP27)
	if err != nil {
		return nil, err
	}
	var sponge Sponge = curl
	if err := sponge.Absorb(digests); err != nil {
		return nil, err
	}
	return sponge.Squeeze(HashLength), nil
}
