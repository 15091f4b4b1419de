package card

import "fmt"

// Byte packs c into one byte.
//
// 编码规则:
// - 高4位: 花色 (0:Heart, 1:Diamond, 2:Club, 3:Spade)
// - 低4位: 点数 (0:Two .. 12:Ace)
func (c Card) Byte() byte {
	return byte(c.Suit)<<4 | byte(c.Rank)&0x0F
}

// FromByte reverses Card.Byte.
func FromByte(b byte) (Card, error) {
	c := Card{Rank: Rank(b & 0x0F), Suit: Suit(b >> 4)}
	if !c.Valid() {
		return Card{}, fmt.Errorf("invalid card byte: 0x%02x", b)
	}
	return c, nil
}

func Cards2bytes(cs []Card) []byte {
	out := make([]byte, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Byte())
	}
	return out
}
