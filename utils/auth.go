package utils

import (
	"ClipHub/config"
	"ClipHub/model"
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken is returned by Verify when a token resolves to no user.
var ErrInvalidToken = errors.New("invalid token")

// UserLookup resolves users for token verification. Injected so the
// authenticators stay independent of the persistence layer.
type UserLookup struct {
	ByUsername func(username string) (*model.User, error)
	ByID       func(id uint64) (*model.User, error)
}

// Authenticator issues a bearer token for a user and resolves a token
// back to its user. Swapping implementations must not touch callers.
type Authenticator interface {
	Issue(user *model.User) (string, error)
	Verify(token string) (*model.User, error)
}

// Auth is the process-wide authenticator, selected by InitAuth.
var Auth Authenticator

// InitAuth selects the authenticator from config.
func InitAuth(lookup UserLookup) {
	switch config.AppConfig.AuthMode {
	case "jwt":
		Auth = &JWTAuthenticator{
			Secret: []byte(config.AppConfig.JWTSecret),
			TTL:    24 * time.Hour,
			Lookup: lookup,
		}
		log.Println("auth mode: jwt")
	default:
		Auth = &UsernameAuthenticator{Lookup: lookup}
		log.Println("auth mode: username")
	}
}

// UsernameAuthenticator equates the token with the username: any
// holder of a username acts as that user. This mirrors the documented
// bare-token design and is not a bug to harden silently.
type UsernameAuthenticator struct {
	Lookup UserLookup
}

// Issue returns the username as the bearer token.
func (a *UsernameAuthenticator) Issue(user *model.User) (string, error) {
	return user.UserName, nil
}

// Verify resolves the token as a username lookup.
func (a *UsernameAuthenticator) Verify(token string) (*model.User, error) {
	user, err := a.Lookup.ByUsername(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}

type Claims struct {
	UserId   uint64 `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTAuthenticator signs HS256 tokens carrying the user identity.
type JWTAuthenticator struct {
	Secret []byte
	TTL    time.Duration
	Lookup UserLookup
}

// Issue creates a signed token for the user.
func (a *JWTAuthenticator) Issue(user *model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserId:   user.ID,
		Username: user.UserName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(a.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.Secret)
}

// Verify parses and validates the token, then resolves its user.
func (a *JWTAuthenticator) Verify(tokenString string) (*model.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return a.Secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	user, err := a.Lookup.ByID(claims.UserId)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}
