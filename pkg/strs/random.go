package strs

import (
	"fmt"
	"math/rand/v2"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomAlphanumeric returns size random letters and digits. It uses its
// own generator, seeded with seed when non-nil, so the global generator is
// neither used nor advanced.
func RandomAlphanumeric(size int, seed *uint64) (string, error) {
	if size < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	var rng *rand.Rand
	if seed != nil {
		rng = rand.New(rand.NewPCG(*seed, *seed))
	} else {
		rng = rand.New(rand.NewChaCha8(randomSeed()))
	}
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = alphanumeric[rng.IntN(len(alphanumeric))]
	}
	return string(buf), nil
}

func randomSeed() [32]byte {
	var seed [32]byte
	for i := 0; i < len(seed); i += 8 {
		v := rand.Uint64()
		for j := range 8 {
			seed[i+j] = byte(v >> (8 * j))
		}
	}
	return seed
}
