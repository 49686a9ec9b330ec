package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// profileHashCost keeps a password check well under the request budget on
// small instances.
const profileHashCost = 10

// HashPassword hashes a profile password. Blank passwords are rejected; a
// profile without a password simply stores no hash.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), profileHashCost)
	return string(hash), err
}

// PasswordMatches reports whether plain is the password behind hash. A
// mismatch is (false, nil); only a malformed hash is an error.
func PasswordMatches(hash, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
