package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers malformed input and signature mismatches;
	// callers cannot distinguish garbage from a forged token.
	ErrInvalidToken = errors.New("invalid session token")
	// ErrExpiredToken means the signature checked out but the token's
	// lifetime has elapsed.
	ErrExpiredToken = errors.New("expired session token")
)

// TokenService issues and verifies signed, stateless session tokens.
// There is no revocation list: a token stays valid until its expiry
// even if the account is disabled in the meantime.
type TokenService interface {
	Issue(subjectID string) (string, error)

	// Verify checks the signature before trusting any payload field and
	// returns the subject ID the token was issued for.
	Verify(tokenString string) (string, error)
}

type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService builds a TokenService signing HS256 tokens with the
// given process-wide secret. ttl is the token lifetime.
func NewJWTService(secret string, ttl time.Duration) TokenService {
	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *jwtService) Issue(subjectID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})

	return token.SignedString(s.secret)
}

func (s *jwtService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		// expiry is only reported once the signature has been verified
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
