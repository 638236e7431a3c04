package httpauth

import (
	"net/http"
)

// Transport is an http.RoundTripper that passes each request through a chain
// of middleware before it is sent by a base RoundTripper.
//
// This allows middleware to be used with any http.Client:
//
//	c := &http.Client{
//		Transport: httpauth.NewTransport(nil, httpauth.FromTokenSource(ts)),
//	}
//
// A Transport is safe for concurrent use if its middleware and base
// RoundTripper are.
type Transport struct {
	base       http.RoundTripper
	middleware []Middleware
}

// NewTransport returns a Transport applying the specified middleware to
// requests before sending them using a base RoundTripper.  If base is nil,
// http.DefaultTransport is used.
func NewTransport(base http.RoundTripper, mw ...Middleware) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{
		base:       base,
		middleware: mw,
	}
}

// RoundTrip implements http.RoundTripper.
//
// A RoundTripper must not modify the request it is given, so the middleware
// chain is applied to a clone of the request.  If the request is not passed
// to the base RoundTripper (the chain fails or a middleware responds without
// calling next) then the request body, if any, is closed.
func (t *Transport) RoundTrip(rq *http.Request) (*http.Response, error) {
	sent := false
	defer func() {
		if !sent && rq.Body != nil {
			rq.Body.Close()
		}
	}()

	send := func(rq *http.Request) (*http.Response, error) {
		sent = true
		return t.base.RoundTrip(rq)
	}

	return chain(t.middleware, send)(rq.Clone(rq.Context()), &Extensions{})
}
