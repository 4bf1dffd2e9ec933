package crypt

import "gitlab.com/semkodev/trinity/convert"

// IsValidPoW reports whether the hash carries at least mwm trailing zero
// trits, the proof-of-work acceptance condition.
func IsValidPoW(hash convert.Trits, mwm int) bool {
	if mwm < 0 || mwm > len(hash) {
		return false
	}
	for _, trit := range hash[len(hash)-mwm:] {
		if trit != 0 {
			return false
		}
	}
	return true
}
