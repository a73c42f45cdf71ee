package resolver

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext link password for storage.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash.
// bcrypt's comparison is constant-time; the plaintext is never compared
// directly.
func VerifyPassword(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
