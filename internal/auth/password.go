package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is pinned at 10. The latency/security tradeoff is fixed for the
// service, not tunable per call.
const bcryptCost = 10

// HashPassword hashes a plaintext password. bcrypt salts per call, so the
// same plaintext hashed twice yields different digests.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword checks a password against its digest in constant time.
// A malformed digest verifies false, never errors.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
