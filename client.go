package httpauth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/blugnu/errorcontext"
	"github.com/sirupsen/logrus"
)

// RequestOption is a function that applies an option to a request
type RequestOption = func(*http.Request) error

// HttpClient is an interface that describes the methods of an http client.
//
// Requests made using the client are passed through the middleware chain
// configured on the client before being submitted by the wrapped client.
type HttpClient interface {
	Delete(context.Context, string, ...RequestOption) (*http.Response, error)
	Do(*http.Request) (*http.Response, error)
	Get(context.Context, string, ...RequestOption) (*http.Response, error)
	Patch(context.Context, string, ...RequestOption) (*http.Response, error)
	Post(context.Context, string, ...RequestOption) (*http.Response, error)
	Put(context.Context, string, ...RequestOption) (*http.Response, error)
	NewRequest(context.Context, string, string, ...RequestOption) (*http.Request, error)
}

// ClientInterface is an interface that describes a wrappable http client
type ClientInterface interface {
	Do(*http.Request) (*http.Response, error)
}

// ClientOption is a function that applies an option to a client
type ClientOption func(*client) error

// client wraps a ClientInterface, passing requests through a chain of
// middleware before they are submitted by the wrapped client.
//
// This type is not exported; functionality is accessed through the
// implemented HttpClient interface.
type client struct {
	// name is used to identify the client in errors and log entries
	name string

	// url is prepended to the url of any request made with the client
	url string

	// wrapped is the underlying http client
	wrapped ClientInterface

	// middleware is applied to each request, in order
	middleware []Middleware

	// log receives debug entries describing the outcome of each request
	log logrus.FieldLogger
}

// discard is the logger used by a client with no configured logger
var discard logrus.FieldLogger = &logrus.Logger{
	Out:       io.Discard,
	Formatter: new(logrus.TextFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.InfoLevel,
}

// logger returns the logger configured for the client, or a logger that
// discards all entries if none is configured
func (c client) logger() logrus.FieldLogger {
	if c.log == nil {
		return discard
	}
	return c.log
}

// NewClient returns a new HttpClient with the name specified, configured
// with any options supplied.  Unless otherwise configured the client wraps
// http.DefaultClient, has no middleware and discards log entries.
//
// # params
//
//	name  // identifies the client, e.g. in errors and log entries
//	opts  // optional configuration
func NewClient(name string, opts ...ClientOption) (HttpClient, error) {
	c := client{
		name:    name,
		wrapped: http.DefaultClient,
		log:     discard,
	}
	errs := make([]error, 0, len(opts))
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInitialisingClient, errors.Join(errs...))
	}
	return c, nil
}

// NewRequest returns a new http.Request with the method and options specified.  The path
// is appended to the client url to form the complete request url.
//
// Request options are applied when the request is created, before the request
// is passed through any middleware.  A header set by a request option may
// therefore be replaced by middleware; an Authorization header is always
// replaced by an AuthorizationHeaderMiddleware.
func (c client) NewRequest(
	ctx context.Context,
	method string,
	path string,
	opts ...RequestOption,
) (*http.Request, error) {
	url, err := url.JoinPath(c.url, path)
	if err != nil {
		return nil, errorcontext.Errorf(ctx, "NewRequest: %w: %w", ErrInvalidURL, err)
	}

	rq, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, errorcontext.Errorf(ctx, "NewRequest: %w: %w", ErrInitialisingRequest, err)
	}

	for _, opt := range opts {
		if err := opt(rq); err != nil {
			return nil, errorcontext.Errorf(ctx, "NewRequest: %w", err)
		}
	}

	return rq, nil
}

// execute is used by the exported convenience methods to execute a specific method
func (c client) execute(
	ctx context.Context,
	method string,
	url string,
	opts ...RequestOption,
) (*http.Response, error) {
	rq, err := c.NewRequest(ctx, method, url, opts...)
	if err != nil {
		return nil, errorcontext.Errorf(ctx, "%s: %s: %w", c.name, method, err)
	}
	return c.Do(rq)
}

// Do passes a request through the middleware chain of the client, with the
// wrapped client submitting the request at the end of the chain.
//
// The request is modified in place by any middleware.  The response and any
// error are returned as provided by the chain; the outcome is logged at
// debug level.
func (c client) Do(rq *http.Request) (*http.Response, error) {
	log := c.logger().WithFields(logrus.Fields{
		"client": c.name,
		"method": rq.Method,
		"url":    rq.URL.String(),
	})

	r, err := chain(c.middleware, c.wrapped.Do)(rq, &Extensions{})
	switch {
	case err != nil:
		log.WithError(err).Debug("request failed")

	case r != nil:
		log.WithField("status", r.StatusCode).Debug("request completed")
	}

	return r, err
}

// Delete is a convenience method for constructing and performing a Delete request,
// appending the specified path to the client url and applying any RequestOptions
func (c client) Delete(
	ctx context.Context,
	path string,
	opts ...RequestOption,
) (*http.Response, error) {
	return c.execute(ctx, http.MethodDelete, path, opts...)
}

// Get is a convenience method for constructing and performing a Get request,
// appending the specified path to the client url and applying any RequestOptions
func (c client) Get(
	ctx context.Context,
	path string,
	opts ...RequestOption,
) (*http.Response, error) {
	return c.execute(ctx, http.MethodGet, path, opts...)
}

// Patch is a convenience method for constructing and performing a Patch request,
// appending the specified path to the client url and applying any RequestOptions
func (c client) Patch(
	ctx context.Context,
	path string,
	opts ...RequestOption,
) (*http.Response, error) {
	return c.execute(ctx, http.MethodPatch, path, opts...)
}

// Post is a convenience method for constructing and performing a Post request,
// appending the specified path to the client url and applying any RequestOptions
func (c client) Post(
	ctx context.Context,
	path string,
	opts ...RequestOption,
) (*http.Response, error) {
	return c.execute(ctx, http.MethodPost, path, opts...)
}

// Put is a convenience method for constructing and performing a Put request,
// appending the specified path to the client url and applying any RequestOptions
func (c client) Put(
	ctx context.Context,
	path string,
	opts ...RequestOption,
) (*http.Response, error) {
	return c.execute(ctx, http.MethodPut, path, opts...)
}
