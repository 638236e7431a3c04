package tokensource

import (
	"context"
)

// TokenSource is implemented by any type able to provide a token when asked.
//
// Obtaining, caching and renewing tokens is the responsibility of the
// implementation; a TokenSource is expected to return a valid token or an
// error if a token could not be obtained.  Implementations must be safe for
// concurrent use, since a single source is typically shared by many
// clients and requests.
type TokenSource interface {
	Token(context.Context) (string, error)
}

// Provider is implemented by any type that holds a TokenSource and is able
// to provide it on request.
type Provider interface {
	TokenSource() TokenSource
}

// Func is an adapter allowing an ordinary function to be used as a
// TokenSource.
type Func func(context.Context) (string, error)

// Token implements TokenSource by calling the function.
func (fn Func) Token(ctx context.Context) (string, error) {
	return fn(ctx)
}

// static is a TokenSource yielding a fixed token
type static string

func (s static) Token(context.Context) (string, error) {
	return string(s), nil
}

// Static returns a TokenSource that always yields the specified token.
func Static(token string) TokenSource {
	return static(token)
}
