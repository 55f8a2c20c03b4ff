package security

// TokenService issues and verifies signed identity tokens
type TokenService interface {
	// Issue signs a token for the user that expires after the configured lifetime
	Issue(userID uint64) (string, error)
	// Verify returns the user ID carried by a valid token. Every failure,
	// whether malformed, tampered or expired, is reported as ErrInvalidToken.
	Verify(token string) (uint64, error)
}
