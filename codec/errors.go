package codec

import "errors"

var (
	ErrMalformed          = errors.New("codec: malformed card stack")
	ErrUnsupportedVersion = errors.New("codec: unsupported card stack version")
	ErrInvalidCard        = errors.New("codec: invalid card")
)
