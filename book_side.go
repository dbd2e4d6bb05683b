package book

import (
	"github.com/huandu/skiplist"
	"github.com/shopspring/decimal"
)

// BookSide is the ordered collection of price levels on one side of the
// book, iterable best-first: descending price for bids, ascending price
// for asks. It is a sorted associative structure keyed by price (encoded
// as integer ticks, see priceToTicks in order_book.go) with a
// side-specific comparator; a parallel map gives O(1) price-to-level
// lookup for insertion, targeted cancel, and emptiness cleanup.
type BookSide struct {
	side   Side
	levels *skiplist.SkipList
	byTick map[int64]*skiplist.Element
}

func newBookSide(side Side) *BookSide {
	var cmp skiplist.GreaterThanFunc
	if side == Buy {
		// Bids: descending price, highest first.
		cmp = func(lhs, rhs any) int {
			a, b := lhs.(int64), rhs.(int64)
			switch {
			case a > b:
				return -1
			case a < b:
				return 1
			default:
				return 0
			}
		}
	} else {
		// Asks: ascending price, lowest first.
		cmp = func(lhs, rhs any) int {
			a, b := lhs.(int64), rhs.(int64)
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			default:
				return 0
			}
		}
	}

	return &BookSide{
		side:   side,
		levels: skiplist.New(cmp),
		byTick: make(map[int64]*skiplist.Element),
	}
}

// Best returns the best-priced level on this side, or (nil, false) if the
// side is empty.
func (bs *BookSide) Best() (*PriceLevel, bool) {
	el := bs.levels.Front()
	if el == nil {
		return nil, false
	}
	return el.Value.(*PriceLevel), true
}

// LevelAt returns the level at the given tick key, or (nil, false) if no
// orders rest at that price.
func (bs *BookSide) LevelAt(tick int64) (*PriceLevel, bool) {
	el, ok := bs.byTick[tick]
	if !ok {
		return nil, false
	}
	return el.Value.(*PriceLevel), true
}

// LevelAtOrCreate returns the level at the given price/tick key, creating
// an empty one and inserting it into the skiplist if none exists yet.
func (bs *BookSide) LevelAtOrCreate(price decimal.Decimal, tick int64) *PriceLevel {
	if el, ok := bs.byTick[tick]; ok {
		return el.Value.(*PriceLevel)
	}
	level := newPriceLevel(price)
	el := bs.levels.Set(tick, level)
	bs.byTick[tick] = el
	return level
}

// RemoveIfEmpty drops the level at tick from the side if it has become
// empty. No-op if the level is missing or non-empty. Every price level is
// eagerly removed once empty (I2).
func (bs *BookSide) RemoveIfEmpty(tick int64) {
	el, ok := bs.byTick[tick]
	if !ok {
		return
	}
	level := el.Value.(*PriceLevel)
	if !level.IsEmpty() {
		return
	}
	bs.levels.RemoveElement(el)
	delete(bs.byTick, tick)
}

// IsEmpty reports whether the side has no resting price levels.
func (bs *BookSide) IsEmpty() bool {
	return bs.levels.Len() == 0
}

// IterateFromBest walks levels best price first, calling fn on each. It
// stops early if fn returns false. The matching walk in OrderBook.Add
// reads only Best; random price access is only for targeted cancel
// lookups via LevelAt.
func (bs *BookSide) IterateFromBest(fn func(level *PriceLevel) bool) {
	for el := bs.levels.Front(); el != nil; el = el.Next() {
		if !fn(el.Value.(*PriceLevel)) {
			return
		}
	}
}
