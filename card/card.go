package card

import (
	"fmt"
	"strings"
)

// Card 一张牌, 由点数和花色组成
//
// Any (Rank, Suit) pair is a valid Card; uniqueness only holds for the
// cards a full deck is built from.
type Card struct {
	Rank Rank
	Suit Suit
}

func New(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

func (c Card) String() string {
	if !c.Rank.Valid() || !c.Suit.Valid() {
		return "??"
	}
	return c.Rank.String() + c.Suit.String()
}

func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// MarshalText encodes a Card as "As", "Th", "2c", etc.
func (c Card) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid card: rank=%d suit=%d", c.Rank, c.Suit)
	}
	return []byte{rankSymbols[c.Rank][0], c.Suit.letter()}, nil
}

// UnmarshalText decodes any literal accepted by Parse.
func (c *Card) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Parse 将字符串 (如 "As", "Td", "10h") 转换为 Card
func Parse(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card string: %q", s)
	}

	// 1. 花色 (最后一个字符)
	var suit Suit
	switch suitChar := s[len(s)-1]; suitChar {
	case 'h', 'H':
		suit = Heart
	case 'd', 'D':
		suit = Diamond
	case 'c', 'C':
		suit = Club
	case 's', 'S':
		suit = Spade
	default:
		return Card{}, fmt.Errorf("invalid suit: %c", suitChar)
	}

	// 2. 点数
	rank, ok := parseRank(strings.ToUpper(s[:len(s)-1]))
	if !ok {
		return Card{}, fmt.Errorf("invalid rank: %s", s[:len(s)-1])
	}
	return Card{Rank: rank, Suit: suit}, nil
}

func parseRank(s string) (Rank, bool) {
	if s == "10" {
		return Ten, true
	}
	for i, sym := range rankSymbols {
		if s == sym {
			return Rank(i), true
		}
	}
	return 0, false
}
