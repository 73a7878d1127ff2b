package auth

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMissingAuthorization = errors.New("Missing or invalid Authorization header")
	ErrTokenInvalid         = errors.New("Unable to resolve userId from token")
	ErrUserIDMissing        = errors.New("userId not found in token")
	ErrUserIDInvalid        = errors.New("Invalid userId in token")
)

type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Verifier resolves the calling user's identity from a bearer credential.
type Verifier interface {
	ResolveUserID(authorization string) (uuid.UUID, error)
}

type jwtVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) Verifier {
	return &jwtVerifier{secret: []byte(secret)}
}

func (v *jwtVerifier) ResolveUserID(authorization string) (uuid.UUID, error) {
	tokenStr, err := BearerToken(authorization)
	if err != nil {
		return uuid.Nil, err
	}

	token, err := jwt.ParseWithClaims(
		tokenStr,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return v.secret, nil
		},
	)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return uuid.Nil, ErrTokenInvalid
	}

	if strings.TrimSpace(claims.UserID) == "" {
		return uuid.Nil, ErrUserIDMissing
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrUserIDInvalid
	}

	return userID, nil
}

// BearerToken strips the Bearer prefix from an Authorization header value.
func BearerToken(authorization string) (string, error) {
	if !strings.HasPrefix(authorization, "Bearer ") {
		return "", ErrMissingAuthorization
	}
	return strings.TrimPrefix(authorization, "Bearer "), nil
}

// IsAuthError reports whether err is one of the token-resolution failures.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrMissingAuthorization) ||
		errors.Is(err, ErrTokenInvalid) ||
		errors.Is(err, ErrUserIDMissing) ||
		errors.Is(err, ErrUserIDInvalid)
}
