package auth

import "context"

// TokenVerifier verifica un token y devuelve claims o error.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer firma un token para la identidad dada.
type TokenIssuer interface {
	Issue(ctx context.Context, claims Claims) (string, error)
}
