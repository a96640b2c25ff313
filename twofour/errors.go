package twofour

import "github.com/cockroachdb/errors"

var (
	ErrNotFound   = errors.New("key not found")
	ErrInvalidKey = errors.New("key not comparable under tree ordering")
)
