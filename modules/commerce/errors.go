package commerce

import "errors"

var (
	// ErrEmailTaken is returned by CreateUser when the email lost a
	// uniqueness race after validation had already passed.
	ErrEmailTaken = errors.New("email is already registered")

	// ErrUnsupportedMedia is returned for request bodies that are not
	// application/json.
	ErrUnsupportedMedia = errors.New("unsupported media type")

	// ErrBodyTooLarge is returned when a request body exceeds the
	// configured limit.
	ErrBodyTooLarge = errors.New("request body too large")
)
