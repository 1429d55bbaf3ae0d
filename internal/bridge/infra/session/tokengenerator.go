package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/klwxsrx/docscan-portal/internal/bridge/app/session"
	"github.com/klwxsrx/docscan-portal/internal/bridge/domain"
)

const (
	TokenPrefix = "sb_"

	tokenEntropyBytes = 32
)

type tokenGenerator struct{}

// NewTokenGenerator generates bearer tokens from 256 random bits of the system CSPRNG
func NewTokenGenerator() session.TokenGenerator {
	return tokenGenerator{}
}

func (g tokenGenerator) Generate() (domain.Token, error) {
	buf := make([]byte, tokenEntropyBytes)
	_, err := rand.Read(buf)
	if err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return domain.Token(TokenPrefix + base64.RawURLEncoding.EncodeToString(buf)), nil
}
