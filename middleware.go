package httpauth

import (
	"net/http"
)

// Extensions holds values shared by the middleware handling a single request.
// A new Extensions is created for each request passed through a chain; the
// zero value is ready to use.
//
// Extensions is not safe for concurrent use; it is only ever accessed by the
// middleware handling a single request, in turn.
type Extensions struct {
	values map[any]any
}

// Get returns the value stored with a specified key and true, or nil and
// false if no value is stored with that key.
func (ext *Extensions) Get(k any) (any, bool) {
	v, ok := ext.values[k]
	return v, ok
}

// Set stores a value with a specified key, replacing any value previously
// stored with the same key.
func (ext *Extensions) Set(k, v any) {
	if ext.values == nil {
		ext.values = map[any]any{}
	}
	ext.values[k] = v
}

// Next passes a request to the remainder of a middleware chain, returning
// the response (or error) from the chain.
type Next func(*http.Request, *Extensions) (*http.Response, error)

// Middleware is implemented by any type that participates in a chain,
// handling a request and (usually) passing it to the next link in the chain.
type Middleware interface {
	Handle(*http.Request, *Extensions, Next) (*http.Response, error)
}

// MiddlewareFunc is an adapter allowing an ordinary function to be used
// as Middleware.
type MiddlewareFunc func(*http.Request, *Extensions, Next) (*http.Response, error)

// Handle implements Middleware by calling the function.
func (fn MiddlewareFunc) Handle(rq *http.Request, ext *Extensions, next Next) (*http.Response, error) {
	return fn(rq, ext, next)
}

// chain returns a Next that passes a request through each of the specified
// middleware in order, with the terminal function receiving the request
// from the last middleware.
func chain(mw []Middleware, terminal func(*http.Request) (*http.Response, error)) Next {
	if len(mw) == 0 {
		return func(rq *http.Request, _ *Extensions) (*http.Response, error) {
			return terminal(rq)
		}
	}

	next := chain(mw[1:], terminal)
	return func(rq *http.Request, ext *Extensions) (*http.Response, error) {
		return mw[0].Handle(rq, ext, next)
	}
}
