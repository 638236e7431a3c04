package httpauth

import (
	"errors"

	"github.com/blugnu/httpauth/request"
)

var (
	ErrInitialisingClient  = errors.New("error initialising client")
	ErrInitialisingRequest = errors.New("error initialising request")
	ErrInvalidOption       = errors.New("invalid option")
	ErrInvalidTokenSource  = errors.New("invalid token source")
	ErrInvalidURL          = errors.New("invalid url")
	ErrTokenUnavailable    = errors.New("token unavailable")

	// ErrInvalidToken is returned when a token cannot be used as a header value
	ErrInvalidToken = request.ErrInvalidToken
)
