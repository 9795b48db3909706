package random

import "math/rand/v2"

// Random - source of the computer's tie-breaking choices.
type Random interface {
	// Intn returns an int in [0, n).
	Intn(n int) int
}

type mathRandom struct{}

func New() Random {
	return &mathRandom{}
}

func (that *mathRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.IntN(n) //nolint: gosec // game tie-breaks need no crypto
}
