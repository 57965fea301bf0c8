package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	commonhttp "github.com/retailatlas/store-locator/api/internal/interfaces/http/common"
)

type authConfig struct {
	secret   []byte
	issuer   string
	audience string
}

// authMiddleware verifies the Bearer token on admin routes against the
// configured HS256 secret, issuer and audience.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(s.auth.secret) == 0 {
			commonhttp.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "admin auth is not configured"})
			return
		}

		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			commonhttp.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "bearer token required"})
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			commonhttp.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "access token is empty"})
			return
		}

		if err := s.verifyToken(tokenString); err != nil {
			commonhttp.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "access token is invalid"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) verifyToken(tokenString string) error {
	claims := &jwt.RegisteredClaims{}
	parseOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(30 * time.Second),
	}
	if s.auth.issuer != "" {
		parseOpts = append(parseOpts, jwt.WithIssuer(s.auth.issuer))
	}
	if s.auth.audience != "" {
		parseOpts = append(parseOpts, jwt.WithAudience(s.auth.audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.auth.secret, nil
	}, parseOpts...)
	if err != nil {
		return err
	}
	if !token.Valid || claims.Subject == "" {
		return jwt.ErrTokenInvalidClaims
	}
	return nil
}
