package deck

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deck-lite/card"
)

func TestEmpty(t *testing.T) {
	d := Empty()
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, "[]", d.String())
}

func TestNew_HasEveryCardOnceInSuitMajorOrder(t *testing.T) {
	d := New()
	require.Equal(t, 52, d.Len())

	seen := make(map[card.Card]int)
	for _, c := range d.Cards() {
		seen[c]++
	}
	require.Len(t, seen, 52)
	for c, n := range seen {
		assert.Equal(t, 1, n, "card %s", c)
	}

	cards := d.Cards()
	for i, c := range cards {
		want := card.New(card.Ranks[i%13], card.Suits[i/13])
		assert.Equal(t, want, c, "position %d", i)
	}
	assert.Equal(t, card.New(card.Two, card.Heart), cards[0])
	assert.Equal(t, card.New(card.Ace, card.Spade), cards[51])
}

func TestDraw(t *testing.T) {
	testCases := []struct {
		name       string
		draw       int
		wantHand   int
		wantRemain int
	}{
		{name: "zero", draw: 0, wantHand: 0, wantRemain: 52},
		{name: "one", draw: 1, wantHand: 1, wantRemain: 51},
		{name: "several", draw: 5, wantHand: 5, wantRemain: 47},
		{name: "all", draw: 52, wantHand: 52, wantRemain: 0},
		{name: "negative", draw: -3, wantHand: 0, wantRemain: 52},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := Shuffled(WithSeed(7))
			before := d.Cards()

			hand, err := d.Draw(tc.draw)
			require.NoError(t, err)
			assert.Equal(t, tc.wantHand, hand.Len())
			assert.Equal(t, tc.wantRemain, d.Len())

			if diff := cmp.Diff(before[:tc.wantHand], hand.Cards(), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("hand is not the top of the deck (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(before[tc.wantHand:], d.Cards(), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("remaining deck mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDraw_InsufficientCardsLeavesDeckUnchanged(t *testing.T) {
	d := New()
	_, err := d.Draw(40)
	require.NoError(t, err)
	before := d.Cards()

	hand, err := d.Draw(13)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientCards))
	assert.Nil(t, hand)
	assert.Equal(t, 12, d.Len())
	assert.Equal(t, before, d.Cards())

	_, err = Empty().Draw(1)
	assert.ErrorIs(t, err, ErrInsufficientCards)
}

func TestDraw_HandDoesNotAliasDeck(t *testing.T) {
	d := New()
	hand, err := d.Draw(2)
	require.NoError(t, err)

	d.AddCard(card.New(card.Ace, card.Club))
	d.AddCards(card.New(card.King, card.Club), card.New(card.Queen, card.Club))
	assert.Equal(t, card.CardList{card.New(card.Two, card.Heart), card.New(card.Three, card.Heart)}, hand.Cards())
}

func TestDiscard(t *testing.T) {
	testCases := []struct {
		name       string
		size       int
		discard    int
		wantCount  int
		wantRemain int
	}{
		{name: "partial", size: 52, discard: 10, wantCount: 10, wantRemain: 42},
		{name: "exact", size: 5, discard: 5, wantCount: 5, wantRemain: 0},
		{name: "clamped", size: 5, discard: 9, wantCount: 5, wantRemain: 0},
		{name: "empty deck", size: 0, discard: 3, wantCount: 0, wantRemain: 0},
		{name: "negative", size: 5, discard: -1, wantCount: 0, wantRemain: 5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := New()
			d.Discard(52 - tc.size)
			require.Equal(t, tc.size, d.Len())
			before := d.Cards()

			got := d.Discard(tc.discard)
			assert.Equal(t, tc.wantCount, got)
			assert.Equal(t, tc.wantRemain, d.Len())
			if diff := cmp.Diff(before[tc.wantCount:], d.Cards(), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("discard must take from the top (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddCardAndCards(t *testing.T) {
	d := Empty()
	d.AddCard(card.New(card.Five, card.Spade))
	assert.Equal(t, 1, d.Len())

	d.AddCards(card.New(card.Six, card.Spade), card.New(card.Seven, card.Spade))
	assert.Equal(t, 3, d.Len())
	d.AddCards()
	assert.Equal(t, 3, d.Len())

	// duplicates are allowed
	d.AddCard(card.New(card.Five, card.Spade))
	assert.Equal(t, card.CardList{
		card.New(card.Five, card.Spade),
		card.New(card.Six, card.Spade),
		card.New(card.Seven, card.Spade),
		card.New(card.Five, card.Spade),
	}, d.Cards())
}

func TestAddDeck_MovesCards(t *testing.T) {
	d := New()
	d.Discard(50)
	other := New()
	other.Discard(48)
	want := append(d.Cards(), other.Cards()...)

	d.AddDeck(other)
	assert.Equal(t, 6, d.Len())
	assert.Equal(t, 0, other.Len())
	assert.Equal(t, want, d.Cards())

	// other stays usable and independent
	other.AddCard(card.New(card.Two, card.Club))
	assert.Equal(t, 6, d.Len())
	assert.Equal(t, 1, other.Len())
}

func TestAddDeck_SelfAndNil(t *testing.T) {
	d := New()
	d.AddDeck(d)
	assert.Equal(t, 52, d.Len())
	d.AddDeck(nil)
	assert.Equal(t, 52, d.Len())
}

func TestPeek(t *testing.T) {
	d := New()
	top := d.Peek(3)
	assert.Equal(t, d.Cards()[:3], top)
	assert.Equal(t, 52, d.Len())
	assert.Len(t, d.Peek(100), 52)
	assert.Empty(t, d.Peek(-1))

	top[0] = card.New(card.Ace, card.Spade)
	assert.Equal(t, card.New(card.Two, card.Heart), d.Cards()[0])
}

func TestZeroValueDeck(t *testing.T) {
	var d Deck
	d.AddCards(card.New(card.Two, card.Heart), card.New(card.Three, card.Heart))
	d.Shuffle()
	assert.Equal(t, 2, d.Len())
}

func TestDealScenario(t *testing.T) {
	d := New()
	d.Shuffle()
	original := d.Cards()

	hand, err := d.Draw(2)
	require.NoError(t, err)
	more, err := d.Draw(1)
	require.NoError(t, err)
	hand.Add(more)

	assert.Equal(t, 3, hand.Len())
	assert.Equal(t, 49, d.Len())
	assert.Equal(t, 0, more.Len())

	rest := d.Cards()
	for _, c := range hand.Cards() {
		assert.False(t, rest.Contains(c), "card %s in both hand and deck", c)
	}
	union := append(hand.Cards(), rest...)
	assert.ElementsMatch(t, original, union)
}
