package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims carries the session identity inside the signed token.
type AuthClaims struct {
	AccountId string `json:"accountId"`
	SessionId string `json:"sessionId"`
	jwt.RegisteredClaims
}

var issuer = "roster"

// ErrTokenExpired is returned by ParseToken for tokens past their expiry,
// so callers can answer with the dedicated response code.
var ErrTokenExpired = jwt.ErrTokenExpired

// GenToken generates a signed session token. accessExpire is in minutes.
func GenToken(accountId, sessionId string, secretKey []byte, accessExpire int64) (string, error) {
	claims := &AuthClaims{
		AccountId: accountId,
		SessionId: sessionId,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(accessExpire) * time.Minute)),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
	if err != nil {
		return "", fmt.Errorf("jwt.NewWithClaims: %w", err)
	}
	return token, nil
}

// ParseToken validates a session token and returns its claims.
func ParseToken(tokenStr, secretKey string) (*AuthClaims, error) {
	claims := new(AuthClaims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, jwt.ErrTokenExpired
		}
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
