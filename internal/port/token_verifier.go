package port

import "context"

// AuthClaims carries the identity extracted from a verified access token.
type AuthClaims struct {
	Subject string
	Email   string
}

// TokenVerifier validates bearer tokens issued by the external auth service.
// Token issuance, refresh, and user management live outside this service.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*AuthClaims, error)
}
