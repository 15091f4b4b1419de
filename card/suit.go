package card

type Suit byte

const (
	Heart   Suit = iota // ♥
	Diamond             // ♦
	Club                // ♣
	Spade               // ♠
)

func (s Suit) String() string {
	switch s {
	case Heart:
		return "♥"
	case Diamond:
		return "♦"
	case Club:
		return "♣"
	case Spade:
		return "♠"
	}
	return "?"
}

// Name returns the English name of the suit.
func (s Suit) Name() string {
	switch s {
	case Heart:
		return "Heart"
	case Diamond:
		return "Diamond"
	case Club:
		return "Club"
	case Spade:
		return "Spade"
	}
	return "Invalid"
}

func (s Suit) Valid() bool {
	return s <= Spade
}

// letter is the single-character suit used by the text form.
func (s Suit) letter() byte {
	switch s {
	case Heart:
		return 'h'
	case Diamond:
		return 'd'
	case Club:
		return 'c'
	case Spade:
		return 's'
	}
	return '?'
}
