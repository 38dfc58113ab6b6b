package ui

import (
	"context"

	"github.com/avolkov/passvault/internal/model"
)

type ctxKey string

const principalKey ctxKey = "vault.principal"

// WithPrincipal stores the authenticated user in the request context.
func WithPrincipal(ctx context.Context, u model.User) context.Context {
	return context.WithValue(ctx, principalKey, u)
}

// PrincipalFromCtx fetches the authenticated user from the context.
func PrincipalFromCtx(ctx context.Context) (model.User, bool) {
	v := ctx.Value(principalKey)
	if v == nil {
		return model.User{}, false
	}
	u, ok := v.(model.User)
	return u, ok
}
