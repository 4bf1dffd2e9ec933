package convert

// A Trit is a balanced-ternary digit: -1, 0 or 1.
type Trit = int8

// Trits is a sequence of balanced-ternary digits.
type Trits = []Trit

const (
	TritsPerTryte = 3
	TritsPerByte  = 5
)

// ValidTrit reports whether t is inside the balanced-ternary domain.
func ValidTrit(t Trit) bool {
	return t >= -1 && t <= 1
}

// ValidTrits reports whether every value in trits is a valid trit.
func ValidTrits(trits Trits) bool {
	for _, t := range trits {
		if !ValidTrit(t) {
			return false
		}
	}
	return true
}

// valueToTrits writes the balanced-ternary digits of value, least
// significant first, into a slice of the given length.
func valueToTrits(value int, length int) Trits {
	trits := make(Trits, length)
	for i := 0; i < length; i++ {
		rem := value % 3
		value /= 3
		if rem > 1 {
			rem -= 3
			value++
		} else if rem < -1 {
			rem += 3
			value--
		}
		trits[i] = Trit(rem)
	}
	return trits
}

// tritsToValue interprets trits as balanced-ternary digits, least
// significant first.
func tritsToValue(trits Trits) int {
	value := 0
	for i := len(trits) - 1; i >= 0; i-- {
		value = value*3 + int(trits[i])
	}
	return value
}

// TritsToBytes packs groups of 5 trits into one signed byte each.
// A final group shorter than 5 trits is padded with zero trits.
func TritsToBytes(trits Trits) []byte {
	size := (len(trits) + TritsPerByte - 1) / TritsPerByte
	bytes := make([]byte, size)
	for i := 0; i < size; i++ {
		group := trits[i*TritsPerByte:]
		if len(group) > TritsPerByte {
			group = group[:TritsPerByte]
		}
		bytes[i] = byte(int8(tritsToValue(group)))
	}
	return bytes
}

// BytesToTrits reverses TritsToBytes, expanding every byte into 5 trits.
func BytesToTrits(bytes []byte) Trits {
	trits := make(Trits, 0, len(bytes)*TritsPerByte)
	for _, b := range bytes {
		trits = append(trits, valueToTrits(int(int8(b)), TritsPerByte)...)
	}
	return trits
}
