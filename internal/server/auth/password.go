package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted one-way hash of password with the given
// bcrypt cost. The cost is configuration, high enough to resist offline
// brute force (12 in production).
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
