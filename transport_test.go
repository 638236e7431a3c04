package httpauth

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blugnu/httpauth/tokensource"
	"github.com/blugnu/test"
)

// roundTripFunc adapts a function as an http.RoundTripper
type roundTripFunc func(*http.Request) (*http.Response, error)

func (fn roundTripFunc) RoundTrip(rq *http.Request) (*http.Response, error) { return fn(rq) }

// body is a request body recording whether it was closed
type body struct {
	io.Reader
	closed bool
}

func (b *body) Close() error {
	b.closed = true
	return nil
}

func TestNewTransport(t *testing.T) {
	// ACT
	result := NewTransport(nil)

	// ASSERT
	test.IsTrue(t, result.base == http.DefaultTransport, "uses http.DefaultTransport")
}

func TestTransport(t *testing.T) {
	// ARRANGE
	ctx := context.Background()

	testcases := []struct {
		scenario string
		exec     func(t *testing.T)
	}{
		{scenario: "request is not modified",
			exec: func(t *testing.T) {
				// ARRANGE
				var sent *http.Request
				base := roundTripFunc(func(rq *http.Request) (*http.Response, error) {
					sent = rq
					return httptest.NewRecorder().Result(), nil
				})
				sut := NewTransport(base, FromTokenSource(tokensource.Static("abc123")))
				rq, _ := http.NewRequestWithContext(ctx, http.MethodGet, "http://hostname/path", nil)
				rq.Header.Set("Authorization", "Bearer stale")

				// ACT
				r, err := sut.RoundTrip(rq)

				// ASSERT
				test.Error(t, err).IsNil()
				test.That(t, r.StatusCode).Equals(http.StatusOK)
				test.That(t, rq.Header.Get("Authorization")).Equals("Bearer stale")
				test.That(t, sent.Header.Get("Authorization")).Equals("Bearer abc123")
				test.IsTrue(t, sent != rq, "clone is sent")
			},
		},
		{scenario: "token unavailable/body closed",
			exec: func(t *testing.T) {
				// ARRANGE
				srcerr := errors.New("source unavailable")
				called := false
				base := roundTripFunc(func(rq *http.Request) (*http.Response, error) {
					called = true
					return nil, nil
				})
				sut := NewTransport(base, FromTokenSource(tokensource.Func(func(context.Context) (string, error) {
					return "", srcerr
				})))
				b := &body{Reader: strings.NewReader("content")}
				rq, _ := http.NewRequestWithContext(ctx, http.MethodPost, "http://hostname/path", b)

				// ACT
				r, err := sut.RoundTrip(rq)

				// ASSERT
				test.Error(t, err).Is(ErrTokenUnavailable)
				test.Error(t, err).Is(srcerr)
				test.That(t, r).IsNil()
				test.IsTrue(t, !called, "base not called")
				test.IsTrue(t, b.closed, "body closed")
			},
		},
		{scenario: "middleware responds without next/body closed",
			exec: func(t *testing.T) {
				// ARRANGE
				called := false
				base := roundTripFunc(func(rq *http.Request) (*http.Response, error) {
					called = true
					return nil, nil
				})
				cached := MiddlewareFunc(func(*http.Request, *Extensions, Next) (*http.Response, error) {
					return httptest.NewRecorder().Result(), nil
				})
				sut := NewTransport(base, cached)
				b := &body{Reader: strings.NewReader("content")}
				rq, _ := http.NewRequestWithContext(ctx, http.MethodPost, "http://hostname/path", b)

				// ACT
				r, err := sut.RoundTrip(rq)

				// ASSERT
				test.Error(t, err).IsNil()
				test.That(t, r.StatusCode).Equals(http.StatusOK)
				test.IsTrue(t, !called, "base not called")
				test.IsTrue(t, b.closed, "body closed")
			},
		},
		{scenario: "base error/body left to base",
			exec: func(t *testing.T) {
				// ARRANGE
				baseerr := errors.New("base error")
				base := roundTripFunc(func(rq *http.Request) (*http.Response, error) {
					return nil, baseerr
				})
				sut := NewTransport(base, FromTokenSource(tokensource.Static("abc123")))
				b := &body{Reader: strings.NewReader("content")}
				rq, _ := http.NewRequestWithContext(ctx, http.MethodPost, "http://hostname/path", b)

				// ACT
				_, err := sut.RoundTrip(rq)

				// ASSERT
				test.IsTrue(t, err == baseerr, "base error is unmodified")
				test.IsTrue(t, !b.closed, "body not closed by transport")
			},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.scenario, func(t *testing.T) {
			tc.exec(t)
		})
	}
}

func TestTransportWithServer(t *testing.T) {
	// ARRANGE
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, rq *http.Request) {
		got = rq.Header.Get("Authorization")
	}))
	defer srv.Close()

	c := &http.Client{
		Transport: NewTransport(srv.Client().Transport, FromTokenSource(tokensource.Static("abc123"))),
	}

	// ACT
	r, err := c.Get(srv.URL)

	// ASSERT
	test.Error(t, err).IsNil()
	defer r.Body.Close()
	test.That(t, r.StatusCode).Equals(http.StatusOK)
	test.That(t, got).Equals("Bearer abc123")
}
