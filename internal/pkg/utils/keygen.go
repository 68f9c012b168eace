package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const base62Chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultKeyLen is the number of random characters GenerateKey appends.
const DefaultKeyLen = 32

// GenerateKey returns prefix followed by DefaultKeyLen random base62 characters.
// Used for object names that must not be guessable (site archives).
func GenerateKey(prefix string) (string, error) {
	return RandomString(prefix, DefaultKeyLen)
}

func RandomString(prefix string, n int) (string, error) {
	var sb strings.Builder
	sb.Grow(len(prefix) + n)
	sb.WriteString(prefix)

	max := big.NewInt(int64(len(base62Chars)))
	for range n {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(base62Chars[num.Int64()])
	}

	return sb.String(), nil
}
