package security

// PasswordHasher turns passwords into one-way hashes and checks them
type PasswordHasher interface {
	// Hash returns a salted hash of the password
	Hash(password string) (string, error)
	// Compare returns ErrInvalidCredentials when password does not match hash
	Compare(hash, password string) error
}
