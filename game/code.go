package game

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"
)

// GenerateRoomCode creates a random join code. Uniqueness is the caller's
// problem: retry against the store on collision.
func GenerateRoomCode() string {
	code := make([]byte, CodeLength)
	for i := range code {
		n, err := crand.Int(crand.Reader, big.NewInt(int64(len(CodeChars))))
		if err != nil {
			// fallback to math/rand if crypto fails
			code[i] = CodeChars[rand.Intn(len(CodeChars))]
			continue
		}
		code[i] = CodeChars[n.Int64()]
	}
	return string(code)
}
