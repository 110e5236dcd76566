package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the work factor the stored hashes were created with.
const bcryptCost = 10

// HashPassword generates a salted hash from a plaintext password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compares a plaintext password with a stored hash.
func CheckPassword(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
