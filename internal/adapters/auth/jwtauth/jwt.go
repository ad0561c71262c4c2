// Package jwtauth firma y verifica tokens HS256 para la sesión del médico.
package jwtauth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"medical-practice/internal/ports/auth"
)

var ErrInvalidToken = errors.New("invalid token")

type Provider struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string, ttl time.Duration) *Provider {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Provider{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (p *Provider) Issue(_ context.Context, claims auth.Claims) (string, error) {
	if len(p.secret) == 0 {
		return "", errors.New("jwtauth: empty secret")
	}

	now := p.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   claims.UserID,
		"email": claims.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(p.ttl).Unix(),
	})
	return tok.SignedString(p.secret)
}

func (p *Provider) Verify(_ context.Context, token string) (auth.Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return p.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return p.now() }))
	if err != nil || !parsed.Valid {
		return auth.Claims{}, ErrInvalidToken
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return auth.Claims{}, ErrInvalidToken
	}

	sub, _ := mc["sub"].(string)
	if sub == "" {
		return auth.Claims{}, ErrInvalidToken
	}
	email, _ := mc["email"].(string)

	return auth.Claims{UserID: sub, Email: email}, nil
}
