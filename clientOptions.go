package httpauth

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
)

// Logger sets the logger to receive debug entries describing the outcome of
// requests made using the client.
func Logger(log logrus.FieldLogger) ClientOption {
	return func(c *client) error {
		if log == nil {
			return fmt.Errorf("httpauth: Logger option: %w: logger is nil", ErrInvalidOption)
		}
		c.log = log
		return nil
	}
}

// URL sets the base URL for requests made using the client.  The URL may be specified
// as a string or a *url.URL.
//
// If a string is provided, it will be parsed to ensure it is a valid, absolute URL.
//
// If a URL is provided is must be absolute.
func URL(u any) ClientOption {
	return func(c *client) error {
		switch u := u.(type) {
		case string:
			url, err := url.Parse(u)
			if err != nil {
				return fmt.Errorf("httpauth: URL option: %w: %w", ErrInvalidURL, err)
			}
			return URL(url)(c)

		case *url.URL:
			if !u.IsAbs() {
				return fmt.Errorf("httpauth: URL option: %w: URL must be absolute", ErrInvalidURL)
			}
			c.url = u.String()

		default:
			return fmt.Errorf("httpauth: URL option: %w: must be a string or *url.URL", ErrInvalidURL)
		}
		return nil
	}
}

// Using sets the HTTP client to use for requests made using the client.  Any value
// that implements the `Do(*http.Request) (*http.Response, error)` method may be used.
//
// The wrapped client is the terminal stage of the middleware chain.
func Using(httpClient interface {
	Do(*http.Request) (*http.Response, error)
}) ClientOption {
	return func(c *client) error {
		c.wrapped = httpClient
		return nil
	}
}

// With appends middleware to the chain applied to requests made using the
// client.  Middleware is applied in the order added; the last middleware
// added is the last to handle a request before it is submitted.
func With(mw ...Middleware) ClientOption {
	return func(c *client) error {
		for i, m := range mw {
			if m == nil {
				return fmt.Errorf("httpauth: With option: %w: middleware #%d is nil", ErrInvalidOption, i+1)
			}
		}
		c.middleware = append(c.middleware, mw...)
		return nil
	}
}
