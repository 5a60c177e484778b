// Package auth holds the credential hashing and token signing primitives.
// Everything here is a pure CPU-bound computation: no storage, no network.
package auth

import "golang.org/x/crypto/bcrypt"

// hashCost is the fixed bcrypt work factor. Raising it invalidates nothing:
// old hashes keep their embedded cost and still verify.
const hashCost = 12

// HashPassword produces a salted one-way digest of password. Two calls with
// the same input return different strings; compare only through CheckPassword.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash. Any failure,
// including a malformed or truncated hash, resolves to false.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
