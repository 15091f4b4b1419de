package deck

import (
	"fmt"

	"deck-lite/card"
)

// Deck is an ordered pile of cards. Index 0 is the top: Draw and Discard
// take from there, the Add methods append at the bottom.
//
// The zero value is an empty deck with a time-seeded shuffle. A Deck is not
// safe for concurrent use.
type Deck struct {
	cards card.CardList
	rng   Shuffler
}

// Empty returns a deck holding no cards.
func Empty(opts ...Option) *Deck {
	return &Deck{rng: newShuffler(opts)}
}

// New returns the 52 standard cards, unshuffled: Two through Ace of each
// suit, suits in card.Suits order.
//
// Use Shuffled for a shuffled deck.
func New(opts ...Option) *Deck {
	d := Empty(opts...)
	d.cards = make(card.CardList, 0, card.DeckSize)
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			d.cards = append(d.cards, card.New(rank, suit))
		}
	}
	return d
}

// Shuffled is New followed by Shuffle.
func Shuffled(opts ...Option) *Deck {
	d := New(opts...)
	d.Shuffle()
	return d
}

// Shuffle permutes the deck in place.
func (d *Deck) Shuffle() {
	if d.rng == nil {
		d.rng = newShuffler(nil)
	}
	cards := d.cards
	d.rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

// Draw removes the top n cards and returns them as a Hand in deck order.
// When fewer than n cards remain it returns ErrInsufficientCards and leaves
// the deck as it was.
func (d *Deck) Draw(n int) (*Hand, error) {
	cards, ok := d.cards.PopFront(n)
	if !ok {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrInsufficientCards, n, d.Len())
	}
	return &Hand{cards: cards}, nil
}

// Discard throws away up to n cards from the top and reports how many were
// removed. Requests beyond the deck size empty the deck without error.
func (d *Deck) Discard(n int) int {
	n = limit(n, d.Len())
	d.cards = d.cards[n:]
	return n
}

// AddCard puts c at the bottom of the deck.
func (d *Deck) AddCard(c card.Card) {
	d.cards.Add(c)
}

// AddCards puts cards at the bottom of the deck, keeping their order.
func (d *Deck) AddCards(cards ...card.Card) {
	d.cards.Add(cards...)
}

// AddDeck moves every card of other to the bottom of d. other is left empty.
// Adding a deck to itself does nothing.
func (d *Deck) AddDeck(other *Deck) {
	if other == nil || other == d {
		return
	}
	moved := other.cards
	other.cards = nil
	d.cards.Add(moved...)
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the deck, top first.
func (d *Deck) Cards() card.CardList {
	return d.cards.Clone()
}

// Peek returns a copy of the top n cards without removing them.
func (d *Deck) Peek(n int) card.CardList {
	return d.cards[:limit(n, d.Len())].Clone()
}

func (d *Deck) String() string {
	return d.cards.String()
}

func limit(n, size int) int {
	if n < 0 {
		return 0
	}
	if n > size {
		return size
	}
	return n
}
