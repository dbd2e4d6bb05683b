package book

import (
	"sync"

	"github.com/shopspring/decimal"
)

// idLocator is where a resident order lives, so the Id Index can answer
// cancel lookups in O(1) without holding a second pointer to the Order
// itself. Per the shared-ownership note in spec.md §9, the PriceLevel is
// the sole owner of each *Order; the index only remembers where to find
// it.
type idLocator struct {
	side Side
	tick int64
}

// OrderBook is one symbol's two Book Sides, an id→locator index, a trade
// callback, and the matching algorithm that ties them together. It is
// safe for concurrent read access (BestBid/BestAsk/TotalTrades) while a
// single writer (normally a Matcher's worker goroutine) calls Add/Cancel.
type OrderBook struct {
	symbol   string
	tickSize decimal.Decimal

	mu    sync.RWMutex
	bids  *BookSide
	asks  *BookSide
	index map[uint64]idLocator

	tradeCB     TradeCallback
	totalTrades uint64
	arrivalSeq  int64
}

// OrderBookOption configures a new OrderBook.
type OrderBookOption func(*OrderBook)

// WithTickSize overrides the default tick size (0.01) used to key price
// levels internally. Orders are still submitted and reported at full
// decimal precision; the tick size only controls how two prices are
// judged identical for level placement. See DESIGN.md for why a decimal
// value cannot be used directly as a Go map key.
func WithTickSize(tick decimal.Decimal) OrderBookOption {
	return func(b *OrderBook) {
		b.tickSize = tick
	}
}

// DefaultTickSize is one cent, the conventional minimum price increment
// for the equities-shaped examples this module is modeled on.
var DefaultTickSize = decimal.New(1, -2)

// NewOrderBook creates an empty order book for one symbol.
func NewOrderBook(symbol string, opts ...OrderBookOption) *OrderBook {
	b := &OrderBook{
		symbol:   symbol,
		tickSize: DefaultTickSize,
		bids:     newBookSide(Buy),
		asks:     newBookSide(Sell),
		index:    make(map[uint64]idLocator),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetTradeCallback installs f to be invoked once per fill, synchronously,
// from inside Add's matching loop. Passing nil disables callbacks.
func (b *OrderBook) SetTradeCallback(f TradeCallback) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tradeCB = f
}

// priceToTicks converts a decimal price to the integer key BookSide uses
// internally. Orders at numerically equal prices always convert to the
// same tick regardless of how their decimal.Decimal value was
// constructed, which a map keyed directly on decimal.Decimal cannot
// guarantee (see DESIGN.md).
func (b *OrderBook) priceToTicks(price decimal.Decimal) int64 {
	return price.DivRound(b.tickSize, 0).IntPart()
}

// Add admits order into the book: validates it, stamps its arrival time,
// crosses it against the opposite side under price-time priority, emits
// a Trade event per fill, and rests any non-zero residual at its limit
// price. Invalid or non-admissible orders (wrong symbol, or a type this
// package does not honor — STOP, STOP_LIMIT, CANCEL, MODIFY) are silently
// dropped; there is no error surface here, by design (§7).
func (b *OrderBook) Add(order Order) {
	if !order.IsValid() || order.Symbol != b.symbol {
		return
	}
	if order.Type != Market && order.Type != Limit {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.arrivalSeq++
	now := b.arrivalSeq
	order.SetArrivalTimestamp(now)

	ord := &order

	var mySide, oppSide *BookSide
	if ord.Side == Buy {
		mySide, oppSide = b.bids, b.asks
	} else {
		mySide, oppSide = b.asks, b.bids
	}

	for ord.RemainingQty > 0 {
		level, ok := oppSide.Best()
		if !ok {
			break
		}

		if ord.Type == Limit {
			bestTick := b.priceToTicks(level.Price)
			ordTick := b.priceToTicks(ord.Price)
			if ord.Side == Buy && ordTick < bestTick {
				break
			}
			if ord.Side == Sell && ordTick > bestTick {
				break
			}
		}

		for ord.RemainingQty > 0 && !level.IsEmpty() {
			maker := level.Front()
			fillQty := ord.RemainingQty
			if maker.RemainingQty < fillQty {
				fillQty = maker.RemainingQty
			}

			b.arrivalSeq++
			at := b.arrivalSeq
			ord.ApplyFill(fillQty, at)
			maker.ApplyFill(fillQty, at)
			level.adjustQty(-int64(fillQty))

			b.emitTrade(*ord, *maker, level.Price, fillQty)

			if maker.RemainingQty == 0 {
				level.PopFront()
				delete(b.index, maker.OrderID)
			}
		}

		bestTick := b.priceToTicks(level.Price)
		if level.IsEmpty() {
			oppSide.RemoveIfEmpty(bestTick)
		}
	}

	if ord.RemainingQty > 0 && ord.Type == Limit {
		tick := b.priceToTicks(ord.Price)
		level := mySide.LevelAtOrCreate(ord.Price, tick)
		level.PushBack(ord)
		b.index[ord.OrderID] = idLocator{side: ord.Side, tick: tick}
	}
	// A MARKET order's unfilled residual is discarded: it is never added
	// to a level or the index, regardless of whether it matched at all.
}

// emitTrade bumps the trade counter and, if a callback is installed,
// invokes it with a Trade oriented buy/sell by side and stamped with the
// book's fill sequence number. Must be called with b.mu held.
func (b *OrderBook) emitTrade(taker, maker Order, price decimal.Decimal, qty uint32) {
	b.totalTrades++

	buy, sell := taker, maker
	if taker.Side == Sell {
		buy, sell = maker, taker
	}

	if b.tradeCB != nil {
		b.tradeCB(Trade{Seq: b.totalTrades, Buy: buy, Sell: sell, Price: price, Qty: qty})
	}
}

// Cancel removes orderID from the book if present. It is idempotent: a
// repeated or unknown-id cancel is a silent no-op. Cancel never emits a
// trade.
func (b *OrderBook) Cancel(orderID uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	loc, ok := b.index[orderID]
	if !ok {
		return
	}

	side := b.bids
	if loc.side == Sell {
		side = b.asks
	}

	level, ok := side.LevelAt(loc.tick)
	if !ok {
		delete(b.index, orderID)
		return
	}

	b.arrivalSeq++
	o, present := level.byID[orderID]
	level.RemoveByID(orderID)
	if present {
		o.Cancel(b.arrivalSeq)
	}
	side.RemoveIfEmpty(loc.tick)
	delete(b.index, orderID)
}

// BestBid returns the highest resting buy price, or a zero decimal if the
// bid side is empty.
func (b *OrderBook) BestBid() decimal.Decimal {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if level, ok := b.bids.Best(); ok {
		return level.Price
	}
	return decimal.Zero
}

// BestAsk returns the lowest resting sell price, or a zero decimal if the
// ask side is empty.
func (b *OrderBook) BestAsk() decimal.Decimal {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if level, ok := b.asks.Best(); ok {
		return level.Price
	}
	return decimal.Zero
}

// TotalTrades returns the number of fills executed by this book so far.
func (b *OrderBook) TotalTrades() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.totalTrades
}

// Symbol returns the symbol this book was created for.
func (b *OrderBook) Symbol() string {
	return b.symbol
}
