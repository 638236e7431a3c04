package request

import "errors"

var (
	ErrInvalidToken = errors.New("invalid token")
)
