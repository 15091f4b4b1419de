package deck

import "errors"

// ErrInsufficientCards is returned by Draw when the deck holds fewer cards
// than requested.
var ErrInsufficientCards = errors.New("not enough cards in the deck")
