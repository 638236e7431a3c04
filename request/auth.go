package request

import (
	"net/http"

	"github.com/blugnu/errorcontext"
	"github.com/blugnu/httpauth/tokensource"
	"golang.org/x/net/http/httpguts"
)

const (
	// AuthorizationHeader is the canonical key of the header set by Bearer
	AuthorizationHeader = "Authorization"

	// BearerScheme is the scheme name preceding the token in a Bearer credential
	BearerScheme = "Bearer"
)

// Bearer sets the canonical Authorization header to a Bearer credential
// formed from a specified token, replacing any existing value.
//
// If the token contains characters that are not valid in a header value
// then ErrInvalidToken is returned and the request is not modified.
func Bearer(token string) func(*http.Request) error {
	return func(rq *http.Request) error {
		if !httpguts.ValidHeaderFieldValue(token) {
			return errorcontext.Errorf(rq.Context(), "Bearer: %w: token contains invalid characters", ErrInvalidToken)
		}

		if rq.Header == nil {
			rq.Header = http.Header{}
		}
		rq.Header.Set(AuthorizationHeader, BearerScheme+" "+token)

		return nil
	}
}

// BearerToken sets a canonical Authorization header with a Bearer credential,
// using a token obtained from a provided token source.
//
// The token is requested using the request context.  Any error from the
// token source is returned and the request is not modified.
func BearerToken(ts tokensource.TokenSource) func(*http.Request) error {
	return func(rq *http.Request) error {
		ctx := rq.Context()

		t, err := ts.Token(ctx)
		if err != nil {
			return errorcontext.Errorf(ctx, "BearerToken: %w", err)
		}

		return Bearer(t)(rq)
	}
}
