package crypto

import "errors"

var (
	// ErrEmptyPassword is returned when there is no plaintext to hash.
	ErrEmptyPassword = errors.New("password is empty")
	// ErrMalformedDigest is returned when a stored digest is not a valid
	// bcrypt digest.
	ErrMalformedDigest = errors.New("malformed password digest")
)
