package tokensource

import (
	"context"

	"github.com/blugnu/errorcontext"
	"golang.org/x/oauth2"
)

// oauth2Source adapts an oauth2.TokenSource
type oauth2Source struct {
	ts oauth2.TokenSource
}

// OAuth2 returns a TokenSource yielding the access token of tokens obtained
// from a supplied oauth2.TokenSource.
//
// Any caching or refreshing is left to the oauth2 source; wrap it with
// oauth2.ReuseTokenSource if that is required.
func OAuth2(ts oauth2.TokenSource) TokenSource {
	return oauth2Source{ts}
}

// Token implements TokenSource.
//
// oauth2 sources do not accept a context; if the supplied context is
// already done then the context error is returned without calling the
// oauth2 source.
func (src oauth2Source) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errorcontext.Errorf(ctx, "oauth2: %w", err)
	}

	t, err := src.ts.Token()
	switch {
	case err != nil:
		return "", errorcontext.Errorf(ctx, "oauth2: %w", err)

	case t == nil || t.AccessToken == "":
		return "", errorcontext.Errorf(ctx, "oauth2: %w: empty access token", ErrNoToken)

	default:
		return t.AccessToken, nil
	}
}
