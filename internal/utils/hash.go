package utils

import "golang.org/x/crypto/bcrypt"

// CheckPassword compares a bcrypt hashed password with its possible plaintext equivalent.
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// CheckAdminPassword validates an admin login attempt. A configured bcrypt
// hash takes precedence over the plain password.
func CheckAdminPassword(hash, plain, candidate string) bool {
	if candidate == "" {
		return false
	}
	if hash != "" {
		return CheckPassword(hash, candidate)
	}
	return plain != "" && plain == candidate
}
