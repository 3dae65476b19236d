package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	httpHandlers "github.com/lifeboard/core/internal/adapters/http"
)

// tokenClaims is what the external identity provider puts into the tokens it
// issues. Subject carries the owner id.
type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// authMiddleware verifies the bearer token and stashes the caller identity in
// the request context. Tokens are issued by the identity provider; this
// service only checks the signature, expiry, and issuer.
func (s *Server) authMiddleware() echo.MiddlewareFunc {
	secret := []byte(s.config.JWT.Secret)
	issuer := s.config.JWT.Issuer

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization header")
			}

			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization header format")
			}

			claims, err := verifyToken(parts[1], secret, issuer)
			if err != nil {
				s.logger.Warn("Invalid token", "error", err, "ip", c.RealIP())
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set(httpHandlers.ContextKeyUserID, claims.Subject)
			c.Set(httpHandlers.ContextKeyUserEmail, claims.Email)

			return next(c)
		}
	}
}

func verifyToken(token string, secret []byte, issuer string) (*tokenClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	return claims, nil
}
