package jwt

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Generator struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewGenerator(secret, issuer string, ttl time.Duration) *Generator {
	return &Generator{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
}

// Claims содержит стандартные claims сессии.
type Claims struct {
	jwt.RegisteredClaims
}

func (g *Generator) Generate(_ context.Context, subject string) (string, time.Time, error) {
	now := g.now().UTC()
	exp := now.Add(g.ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    g.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Parse validates an HS256 token and returns its claims.
func Parse(tokenStr string, secret []byte, expectedIssuer string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if expectedIssuer != "" && claims.Issuer != expectedIssuer {
		return nil, jwt.ErrTokenInvalidIssuer
	}
	return claims, nil
}
