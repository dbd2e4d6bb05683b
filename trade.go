package book

import "github.com/shopspring/decimal"

// Trade is the structured record emitted per fill: buy_order_snapshot,
// sell_order_snapshot, execution_price, qty. Snapshots are values taken
// immediately after the fill they describe is applied, so RemainingQty on
// each reflects post-fill state.
type Trade struct {
	// Seq is this book's fill count as of this trade (the same value
	// TotalTrades returns immediately after), letting a consumer of the
	// callback order and deduplicate events without touching the book's
	// internal lock.
	Seq uint64

	Buy   Order
	Sell  Order
	Price decimal.Decimal
	Qty   uint32
}

// TradeCallback is invoked synchronously from within OrderBook.Add's
// matching loop, once per fill, in fill order, while the book's internal
// lock is held. It must not call back into Add, Cancel, or a Matcher's
// Submit/SubmitCancel on the same book — that is a caller-imposed
// contract, not something this package can enforce at compile time.
type TradeCallback func(t Trade)
