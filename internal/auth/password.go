package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashSecret hashes a plaintext password or PIN using bcrypt.
func HashSecret(secret string) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("secret is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// MustHashSecret is HashSecret for seed data and tests.
func MustHashSecret(secret string) string {
	hash, err := HashSecret(secret)
	if err != nil {
		panic(err)
	}
	return hash
}

// verifySecret compares a plaintext secret with its stored hash.
func verifySecret(hash, secret string) error {
	if hash == "" {
		return errors.New("secret hash is empty")
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
}
