// Package codec snapshots card sequences in protobuf wire format.
//
// The layout matches this message, so any protobuf runtime can read it:
//
//	message CardStack {
//	  uint32 version = 1;
//	  repeated uint32 cards = 2; // packed, card.Byte() per card, top first
//	}
package codec

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"deck-lite/card"
	"deck-lite/deck"
)

// Version is written into every snapshot.
const Version = 1

const (
	fieldVersion protowire.Number = 1
	fieldCards   protowire.Number = 2
)

// MarshalCards encodes cards in order.
func MarshalCards(cards []card.Card) []byte {
	b := protowire.AppendTag(nil, fieldVersion, protowire.VarintType)
	b = protowire.AppendVarint(b, Version)
	if len(cards) == 0 {
		return b
	}

	packed := make([]byte, 0, len(cards)*2)
	for _, c := range cards {
		packed = protowire.AppendVarint(packed, uint64(c.Byte()))
	}
	b = protowire.AppendTag(b, fieldCards, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

// UnmarshalCards decodes a snapshot produced by MarshalCards.
func UnmarshalCards(b []byte) (card.CardList, error) {
	var (
		version uint64
		cards   card.CardList
	)
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: tag: %v", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == fieldVersion && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, fmt.Errorf("%w: version: %v", ErrMalformed, protowire.ParseError(n))
			}
			version = v
			b = b[n:]

		case num == fieldCards && typ == protowire.BytesType:
			packed, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("%w: cards: %v", ErrMalformed, protowire.ParseError(n))
			}
			for len(packed) > 0 {
				v, m := protowire.ConsumeVarint(packed)
				if m < 0 {
					return nil, fmt.Errorf("%w: packed card: %v", ErrMalformed, protowire.ParseError(m))
				}
				c, err := decodeCard(v)
				if err != nil {
					return nil, err
				}
				cards = append(cards, c)
				packed = packed[m:]
			}
			b = b[n:]

		case num == fieldCards && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, fmt.Errorf("%w: card: %v", ErrMalformed, protowire.ParseError(n))
			}
			c, err := decodeCard(v)
			if err != nil {
				return nil, err
			}
			cards = append(cards, c)
			b = b[n:]

		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}

	if version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	return cards, nil
}

func decodeCard(v uint64) (card.Card, error) {
	if v > 0xFF {
		return card.Card{}, fmt.Errorf("%w: value %d", ErrInvalidCard, v)
	}
	c, err := card.FromByte(byte(v))
	if err != nil {
		return card.Card{}, fmt.Errorf("%w: %v", ErrInvalidCard, err)
	}
	return c, nil
}

// MarshalDeck encodes the deck top first. The shuffle source is not saved.
func MarshalDeck(d *deck.Deck) []byte {
	return MarshalCards(d.Cards())
}

// UnmarshalDeck rebuilds a deck; opts configure its shuffle source.
func UnmarshalDeck(b []byte, opts ...deck.Option) (*deck.Deck, error) {
	cards, err := UnmarshalCards(b)
	if err != nil {
		return nil, err
	}
	d := deck.Empty(opts...)
	d.AddCards(cards...)
	return d, nil
}

func MarshalHand(h *deck.Hand) []byte {
	return MarshalCards(h.Cards())
}

func UnmarshalHand(b []byte) (*deck.Hand, error) {
	cards, err := UnmarshalCards(b)
	if err != nil {
		return nil, err
	}
	return deck.NewHand(cards...), nil
}
