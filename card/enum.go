package card

// Ranks lists every rank in declaration order, Two first.
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Suits lists every suit in declaration order.
var Suits = [...]Suit{Heart, Diamond, Club, Spade}

// DeckSize is the number of distinct (Rank, Suit) pairs.
const DeckSize = len(Ranks) * len(Suits)
