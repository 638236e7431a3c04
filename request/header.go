package request

import (
	"net/http"
)

// Header sets the value of a canonical header, replacing any existing
// values.  The key is normalised; to set a header with a key exactly as
// specified use NonCanonicalHeader().
//
// Example:
//
//	// sets the canonical "Content-Type" header
//	Header("content-type", "application/json")
func Header(k, v string) func(*http.Request) error {
	return func(rq *http.Request) error {
		if rq.Header == nil {
			rq.Header = http.Header{}
		}
		rq.Header.Set(k, v)
		return nil
	}
}

// NonCanonicalHeader sets the value of a header without normalising the key,
// replacing any existing values.
//
// Example:
//
//	// sets a non-canonical "sessionid" header
//	NonCanonicalHeader("sessionid", id)
func NonCanonicalHeader(k, v string) func(*http.Request) error {
	return func(rq *http.Request) error {
		if rq.Header == nil {
			rq.Header = http.Header{}
		}
		rq.Header[k] = []string{v}
		return nil
	}
}
