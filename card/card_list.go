package card

import "strings"

// CardList is an ordered run of cards, index 0 first.
type CardList []Card

// Count 获取总牌数
func (ds CardList) Count() int {
	return len(ds)
}

// Clone returns a copy that shares no backing array with ds.
func (ds CardList) Clone() CardList {
	if ds == nil {
		return nil
	}
	out := make(CardList, len(ds))
	copy(out, ds)
	return out
}

func (ds CardList) Contains(c Card) bool {
	for _, cc := range ds {
		if cc == c {
			return true
		}
	}
	return false
}

func (ds CardList) CardsBytes() []byte {
	return Cards2bytes(ds)
}

func (ds CardList) String() string {
	parts := make([]string, len(ds))
	for i, c := range ds {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (ds *CardList) Add(cards ...Card) {
	*ds = append(*ds, cards...)
}

// PopFront removes the first size cards and returns them in a fresh slice.
// ok is false, and ds untouched, when fewer than size cards are held.
func (ds *CardList) PopFront(size int) (cards CardList, ok bool) {
	if size < 0 {
		size = 0
	}
	if size > ds.Count() {
		return nil, false
	}
	cards = make(CardList, size)
	copy(cards, (*ds)[:size])
	*ds = (*ds)[size:]
	return cards, true
}
