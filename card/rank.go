package card

type Rank byte

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankSymbols = [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K", "A"}

var rankNames = [...]string{
	"Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Jack", "Queen", "King", "Ace",
}

func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return rankSymbols[r]
}

// Name returns the English name of the rank.
func (r Rank) Name() string {
	if !r.Valid() {
		return "Invalid"
	}
	return rankNames[r]
}

func (r Rank) Valid() bool {
	return r <= Ace
}
