// Package sessionservice authenticates the bank operator and issues access tokens.
package sessionservice

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/go-petr/private-bank/internal/domain"
	"github.com/go-petr/private-bank/pkg/configpkg"
	"github.com/go-petr/private-bank/pkg/passpkg"
	"github.com/go-petr/private-bank/pkg/tokenpkg"
	"github.com/rs/zerolog"
)

// Service facilitates session service layer logic.
type Service struct {
	config     configpkg.Config
	TokenMaker tokenpkg.Maker
}

// New returns session service for the configured operator.
func New(config configpkg.Config, tokenMaker tokenpkg.Maker) (*Service, error) {
	if config.OperatorUsername == "" {
		return nil, errors.New("operator username is not configured")
	}

	return &Service{
		config:     config,
		TokenMaker: tokenMaker,
	}, nil
}

// Login checks the operator credentials and returns an access token with its
// expiry time.
func (s *Service) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	l := zerolog.Ctx(ctx)

	sameUser := subtle.ConstantTimeCompare([]byte(username), []byte(s.config.OperatorUsername)) == 1

	if s.config.OperatorPasswordHash == "" {
		l.Warn().Msg("operator password hash is not configured")
		return "", time.Time{}, domain.ErrInvalidCredentials
	}

	if err := passpkg.Check(password, s.config.OperatorPasswordHash); err != nil || !sameUser {
		l.Info().Str("username", username).Err(domain.ErrInvalidCredentials).Send()
		return "", time.Time{}, domain.ErrInvalidCredentials
	}

	token, payload, err := s.TokenMaker.CreateToken(username, s.config.AccessTokenDuration)
	if err != nil {
		l.Error().Err(err).Send()
		return "", time.Time{}, err
	}

	return token, payload.ExpiredAt, nil
}
