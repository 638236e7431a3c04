package httpauth

import (
	"context"
	"fmt"
	"net/http"
	"reflect"

	"github.com/blugnu/errorcontext"
	"github.com/blugnu/httpauth/request"
	"github.com/blugnu/httpauth/tokensource"
	"golang.org/x/oauth2"
)

// AuthorizationHeaderMiddleware sets the Authorization header of each request
// it handles to a Bearer credential, using a token obtained from a
// token source.
//
// A token is requested from the source for every request; the source is
// expected to provide a valid token (including any renewal) or an error if
// a token could not be obtained.  Any existing Authorization header on the
// request is replaced.
//
// The middleware holds no state other than the token source and may be
// shared by any number of clients and concurrent requests, provided the
// token source is itself safe for concurrent use.
//
// # Usage
//
//	c, err := httpauth.NewClient("api",
//		httpauth.URL("https://api.example.com"),
//		httpauth.With(
//			retryMiddleware,
//			httpauth.FromTokenSource(ts),
//		),
//	)
//
// Ideally the authorization middleware should be the last in a chain,
// after any retry middleware.  Each retried request will then carry a token
// obtained for that attempt, benefitting from any renewal performed by the
// token source.
type AuthorizationHeaderMiddleware struct {
	ts tokensource.TokenSource
}

// isNilTokenSource returns true if ts is nil or holds a nil func or pointer
func isNilTokenSource(ts tokensource.TokenSource) bool {
	if ts == nil {
		return true
	}
	switch v := reflect.ValueOf(ts); v.Kind() {
	case reflect.Func, reflect.Pointer:
		return v.IsNil()
	}
	return false
}

// FromTokenSource returns an AuthorizationHeaderMiddleware using the
// specified token source.
//
// The token source must not be nil; a middleware with a nil token source
// fails every request with ErrInvalidTokenSource.
func FromTokenSource(ts tokensource.TokenSource) *AuthorizationHeaderMiddleware {
	if isNilTokenSource(ts) {
		ts = nil
	}
	return &AuthorizationHeaderMiddleware{ts: ts}
}

// FromProvider returns an AuthorizationHeaderMiddleware using the token
// source held by a specified provider.  As with FromTokenSource, the
// provided token source must not be nil.
func FromProvider(p tokensource.Provider) *AuthorizationHeaderMiddleware {
	return FromTokenSource(p.TokenSource())
}

// New returns an AuthorizationHeaderMiddleware using a token source obtained
// from the supplied value, which may be any of:
//
//	tokensource.TokenSource
//	tokensource.Provider
//	oauth2.TokenSource
//	func(context.Context) (string, error)
//
// ErrInvalidTokenSource is returned if the value is nil (including a nil func
// or pointer), of any other type, or is a Provider that does not provide a
// token source.
func New(src any) (*AuthorizationHeaderMiddleware, error) {
	switch src := src.(type) {
	case tokensource.TokenSource:
		if isNilTokenSource(src) {
			break
		}
		return FromTokenSource(src), nil

	case tokensource.Provider:
		if ts := src.TokenSource(); !isNilTokenSource(ts) {
			return FromTokenSource(ts), nil
		}
		return nil, fmt.Errorf("httpauth: New: %w: provider returned a nil token source", ErrInvalidTokenSource)

	case oauth2.TokenSource:
		return FromTokenSource(tokensource.OAuth2(src)), nil

	case func(context.Context) (string, error):
		if src == nil {
			break
		}
		return FromTokenSource(tokensource.Func(src)), nil
	}
	return nil, fmt.Errorf("httpauth: New: %w: %T", ErrInvalidTokenSource, src)
}

// Handle implements Middleware.
//
// A token is obtained from the token source using the request context.  If
// no token is obtained an error wrapping both ErrTokenUnavailable and the
// token source error is returned and the next middleware is not called.
//
// Otherwise the Authorization header is set and the request passed to the
// next middleware, returning whatever that returns.
func (mw *AuthorizationHeaderMiddleware) Handle(
	rq *http.Request,
	ext *Extensions,
	next Next,
) (*http.Response, error) {
	ctx := rq.Context()

	if mw.ts == nil {
		return nil, errorcontext.Errorf(ctx, "AuthorizationHeaderMiddleware: %w: nil token source", ErrInvalidTokenSource)
	}

	t, err := mw.ts.Token(ctx)
	if err != nil {
		return nil, errorcontext.Errorf(ctx, "AuthorizationHeaderMiddleware: %w: %w", ErrTokenUnavailable, err)
	}

	if err := request.Bearer(t)(rq); err != nil {
		return nil, errorcontext.Errorf(ctx, "AuthorizationHeaderMiddleware: %w", err)
	}

	return next(rq, ext)
}
