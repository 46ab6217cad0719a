// Package tokenpkg issues and verifies operator access tokens.
package tokenpkg

import (
	"fmt"
	"time"
)

// Maker is an interface for managing tokens.
type Maker interface {
	// CreateToken creates a new token for a specific username and duration.
	CreateToken(username string, duration time.Duration) (string, *Payload, error)
	// VerifyToken checks if the token is valid or not.
	VerifyToken(token string) (*Payload, error)
}

// Token types understood by New.
const (
	TypePaseto = "paseto"
	TypeJWT    = "jwt"
)

// New returns the maker of the given token type.
func New(tokenType, secretKey string) (Maker, error) {
	switch tokenType {
	case TypePaseto, "":
		return NewPasetoMaker(secretKey)
	case TypeJWT:
		return NewJWTMaker(secretKey)
	default:
		return nil, fmt.Errorf("unsupported token type %q", tokenType)
	}
}
