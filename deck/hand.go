package deck

import "deck-lite/card"

// Hand holds cards taken from a Deck. It never shares storage with the deck
// it was drawn from.
type Hand struct {
	cards card.CardList
}

// NewHand returns a hand holding a copy of cards.
func NewHand(cards ...card.Card) *Hand {
	return &Hand{cards: card.CardList(cards).Clone()}
}

// Add moves every card of other to the end of h. other is left empty.
// Adding a hand to itself does nothing.
func (h *Hand) Add(other *Hand) {
	if other == nil || other == h {
		return
	}
	moved := other.cards
	other.cards = nil
	h.cards.Add(moved...)
}

func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the hand in draw order.
func (h *Hand) Cards() card.CardList {
	return h.cards.Clone()
}

func (h *Hand) String() string {
	return h.cards.String()
}
