package auth

import (
	"context"
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	pkgauth "github.com/klwxsrx/docscan-portal/pkg/auth"
)

const defaultLeeway = 5 * time.Second

type (
	ProviderConfig struct {
		PublicKey *rsa.PublicKey

		// Issuer is checked only when set
		Issuer string
	}

	provider struct {
		parser    *jwt.Parser
		publicKey *rsa.PublicKey
	}
)

// NewProvider verifies identity provider session tokens (RS256 JWT), the sub claim is the subject id.
// Tokens failing verification produce an anonymous authentication, not an error
func NewProvider(config ProviderConfig) pkgauth.Provider[Principal] {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(defaultLeeway),
	}
	if config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(config.Issuer))
	}

	return provider{
		parser:    jwt.NewParser(opts...),
		publicKey: config.PublicKey,
	}
}

func ParsePublicKey(pem string) (*rsa.PublicKey, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pem))
	if err != nil {
		return nil, fmt.Errorf("parse rsa public key: %w", err)
	}
	return key, nil
}

func (p provider) Authenticate(_ context.Context, credentials pkgauth.Credentials) (pkgauth.Authentication[Principal], error) {
	var claims jwt.RegisteredClaims
	_, err := p.parser.ParseWithClaims(string(credentials), &claims, func(*jwt.Token) (any, error) {
		return p.publicKey, nil
	})
	if err != nil || claims.Subject == "" {
		return pkgauth.Anonymous[Principal](), nil
	}

	return pkgauth.Authenticated(Principal{Subject: claims.Subject}), nil
}
