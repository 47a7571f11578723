// Package jwtverifier validates bearer tokens issued by the identity
// service. Tokens are HS256-signed with a shared secret; this service only
// verifies, it never issues.
package jwtverifier

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"docsage/internal/config"
	"docsage/internal/domain"
	"docsage/internal/port"
)

type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

type verifier struct {
	secret []byte
	issuer string
}

// New creates a TokenVerifier backed by the shared HMAC secret.
func New(cfg *config.AuthConfig) port.TokenVerifier {
	return &verifier{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
	}
}

func (v *verifier) Verify(_ context.Context, tokenString string) (*port.AuthClaims, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: parsing token: %v", domain.ErrUnauthorized, err)
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	if v.issuer != "" {
		issuer, _ := c.GetIssuer()
		if issuer != v.issuer {
			return nil, domain.ErrUnauthorized
		}
	}

	subject, _ := c.GetSubject()
	if subject == "" {
		return nil, domain.ErrUnauthorized
	}

	return &port.AuthClaims{
		Subject: subject,
		Email:   c.Email,
	}, nil
}
