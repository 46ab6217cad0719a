// Package middleware holds the gin middleware shared by every route: request
// logging and bearer token authentication.
package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/private-bank/pkg/tokenpkg"
	"github.com/go-petr/private-bank/pkg/web"
	"github.com/rs/zerolog"
)

// Authorization header layout and the gin context key of the verified payload.
const (
	AuthHeaderKey  = "authorization"
	AuthTypeBearer = "bearer"
	AuthPayloadKey = "authorization_payload"
)

// Errors returned to the client when the authorization header is rejected.
var (
	ErrAuthHeaderNotFound  = errors.New("authorization header is not provided")
	ErrBadAuthHeaderFormat = errors.New("invalid authorization header format")
	ErrUnsupportedAuthType = errors.New("unsupported authorization type")
)

// AddAuthorization creates a token and sets it as the authorization header of r.
func AddAuthorization(r *http.Request, maker tokenpkg.Maker, authType, username string, duration time.Duration) error {
	token, _, err := maker.CreateToken(username, duration)
	if err != nil {
		return err
	}

	r.Header.Set(AuthHeaderKey, strings.TrimSpace(fmt.Sprintf("%s %s", authType, token)))

	return nil
}

// AuthMiddleware rejects requests without a valid bearer token and stores the
// token payload under AuthPayloadKey.
func AuthMiddleware(maker tokenpkg.Maker) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		l := zerolog.Ctx(gctx.Request.Context())

		header := gctx.GetHeader(AuthHeaderKey)
		if len(header) == 0 {
			l.Info().Err(ErrAuthHeaderNotFound).Send()
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(ErrAuthHeaderNotFound))

			return
		}

		fields := strings.Fields(header)
		if len(fields) < 2 {
			l.Info().Err(ErrBadAuthHeaderFormat).Send()
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(ErrBadAuthHeaderFormat))

			return
		}

		if strings.ToLower(fields[0]) != AuthTypeBearer {
			l.Info().Err(ErrUnsupportedAuthType).Str("type", fields[0]).Send()
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(ErrUnsupportedAuthType))

			return
		}

		payload, err := maker.VerifyToken(fields[1])
		if err != nil {
			l.Info().Err(err).Send()
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))

			return
		}

		gctx.Set(AuthPayloadKey, payload)
		gctx.Next()
	}
}
