package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	MinSecretKeyLength     = 32
	DefaultSecretKeyLength = 48

	secretKeyAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
)

var errSecretKeyTooShort = errors.New("secret key length is below the minimum")

// GenerateSecretKey returns a random token-signing key suitable for SECRET_KEY.
func GenerateSecretKey(length int) (string, error) {
	if length < MinSecretKeyLength {
		return "", errSecretKeyTooShort
	}
	return randomString(length, secretKeyAlphabet)
}

// randomString draws every character uniformly from alphabet.
func randomString(length int, alphabet string) (string, error) {
	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}
	return string(value), nil
}
