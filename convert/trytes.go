package convert

import (
	"strings"

	"github.com/pkg/errors"
)

// TryteAlphabet holds the 27 tryte symbols. The symbol at index i encodes
// the balanced-ternary value i for i <= 13 and i-27 above that, so '9' is
// zero, 'A'..'M' are 1..13 and 'N'..'Z' are -13..-1.
const TryteAlphabet = "9ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var ErrInvalidTrytes = errors.New("invalid tryte string")

var tryteToTrits = make(map[rune]Trits, len(TryteAlphabet))

func init() {
	for i, symbol := range TryteAlphabet {
		value := i
		if value > 13 {
			value -= 27
		}
		tryteToTrits[symbol] = valueToTrits(value, TritsPerTryte)
	}
}

// TrytesToTrits decodes a tryte string into trits, 3 per tryte.
func TrytesToTrits(trytes string) (Trits, error) {
	trits := make(Trits, 0, len(trytes)*TritsPerTryte)
	for i, symbol := range trytes {
		mapped, ok := tryteToTrits[symbol]
		if !ok {
			return nil, errors.Wrapf(ErrInvalidTrytes, "symbol %q at position %d", symbol, i)
		}
		trits = append(trits, mapped...)
	}
	return trits, nil
}

// TritsToTrytes encodes trits as a tryte string. The trit count has to be
// a multiple of 3.
func TritsToTrytes(trits Trits) (string, error) {
	if len(trits)%TritsPerTryte != 0 {
		return "", errors.Wrapf(ErrInvalidTrytes, "cannot encode %d trits", len(trits))
	}
	var trytes strings.Builder
	trytes.Grow(len(trits) / TritsPerTryte)
	for i := 0; i < len(trits); i += TritsPerTryte {
		pos := tritsToValue(trits[i : i+TritsPerTryte])
		if pos < 0 {
			pos += 27
		}
		trytes.WriteByte(TryteAlphabet[pos])
	}
	return trytes.String(), nil
}

// IsTrytes reports whether every character of the string is a tryte symbol.
func IsTrytes(trytes string) bool {
	for _, symbol := range trytes {
		if _, ok := tryteToTrits[symbol]; !ok {
			return false
		}
	}
	return true
}

// TrytesToBytes packs a tryte string into the 5-trits-per-byte encoding.
func TrytesToBytes(trytes string) ([]byte, error) {
	trits, err := TrytesToTrits(trytes)
	if err != nil {
		return nil, err
	}
	return TritsToBytes(trits), nil
}

// BytesToTrytes expands packed bytes back into a tryte string.
func BytesToTrytes(bytes []byte) (string, error) {
	return TritsToTrytes(BytesToTrits(bytes))
}
