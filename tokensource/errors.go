package tokensource

import "errors"

var (
	ErrNoToken = errors.New("no token")
)
