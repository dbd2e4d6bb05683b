package book

import "github.com/shopspring/decimal"

// Side is which side of the book an order rests on or crosses into.
type Side int8

const (
	Buy Side = iota + 1
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// OrderType is the instruction kind carried by an Order.
//
// STOP, STOP_LIMIT, and MODIFY are part of the enum but no matching logic
// in this package honors them — they are rejected at the OrderBook.Add
// boundary. See DESIGN.md for why: triggering and amendment are a
// separate component this module does not implement, per spec.
type OrderType string

const (
	Market    OrderType = "MARKET"
	Limit     OrderType = "LIMIT"
	Stop      OrderType = "STOP"
	StopLimit OrderType = "STOP_LIMIT"
	Cancel    OrderType = "CANCEL"
	Modify    OrderType = "MODIFY"
)

// Order is the identity and mutable fill state for one client instruction.
//
// OrderID, ClientID, Symbol, Type, Side, Price, StopPrice, and Quantity
// are fixed at construction. RemainingQty, Timestamp, and LastModified
// change over the order's lifetime in the book.
type Order struct {
	OrderID   uint64
	ClientID  uint64
	Symbol    string
	Type      OrderType
	Side      Side
	Price     decimal.Decimal
	StopPrice decimal.Decimal

	Quantity     uint32
	RemainingQty uint32

	// Timestamp is a monotonic arrival sequence assigned by OrderBook.Add
	// at admission, not at construction — a fresh Order has Timestamp 0
	// until it reaches the book. LastModified updates on every fill or
	// cancel.
	Timestamp    int64
	LastModified int64

	// next/prev make Order an intrusive node of the PriceLevel FIFO it
	// currently resides in. They are meaningless once an order leaves the
	// book and are not part of its logical identity or fill state.
	next *Order
	prev *Order
}

// NewOrder constructs a fully-specified order. RemainingQty starts equal
// to quantity; Timestamp is left zero until the order is admitted to a
// book.
func NewOrder(orderID, clientID uint64, symbol string, typ OrderType, side Side, price decimal.Decimal, quantity uint32) Order {
	return Order{
		OrderID:      orderID,
		ClientID:     clientID,
		Symbol:       symbol,
		Type:         typ,
		Side:         side,
		Price:        price,
		Quantity:     quantity,
		RemainingQty: quantity,
	}
}

// IsValid reports whether o satisfies the admission predicate:
// order_id>0 ∧ quantity>0 ∧ symbol≠"".
func (o Order) IsValid() bool {
	return o.OrderID > 0 && o.Quantity > 0 && o.Symbol != ""
}

// IsFullyFilled reports whether the order has no remaining quantity.
func (o Order) IsFullyFilled() bool {
	return o.RemainingQty == 0
}

// IsPartiallyFilled reports whether the order has been filled but not
// fully consumed.
func (o Order) IsPartiallyFilled() bool {
	return o.RemainingQty > 0 && o.RemainingQty < o.Quantity
}

// FilledQty returns quantity - remaining_qty.
func (o Order) FilledQty() uint32 {
	return o.Quantity - o.RemainingQty
}

// ApplyFill decreases RemainingQty by qty and bumps LastModified. Callers
// (the matching loop) are responsible for qty <= RemainingQty; this is an
// internal invariant of the matching algorithm, not user input, so it is
// not re-validated here.
func (o *Order) ApplyFill(qty uint32, at int64) {
	o.RemainingQty -= qty
	o.LastModified = at
}

// Cancel forces RemainingQty to zero and bumps LastModified.
func (o *Order) Cancel(at int64) {
	o.RemainingQty = 0
	o.LastModified = at
}

// SetArrivalTimestamp stamps the order with its book-admission time. Called
// exactly once, by OrderBook.Add.
func (o *Order) SetArrivalTimestamp(t int64) {
	o.Timestamp = t
	o.LastModified = t
}

// Clone returns an independent copy of o. decimal.Decimal values are
// immutable, so a plain struct copy already yields a value that shares no
// mutable state with o; Clone exists to make that independence explicit
// at call sites and to strip the intrusive list pointers, which are never
// meaningful outside the PriceLevel o currently resides in.
func (o Order) Clone() Order {
	o.next = nil
	o.prev = nil
	return o
}

// CanMatchWith reports whether o and other could execute against each
// other right now: same symbol, opposite sides, both valid, both carrying
// remaining quantity, and price-compatible. A LIMIT vs LIMIT pair is
// price-compatible iff the buy price is at least the sell price; any pair
// involving a MARKET order is unconditionally price-compatible (subject
// to the checks above).
func (o Order) CanMatchWith(other Order) bool {
	if o.Symbol != other.Symbol {
		return false
	}
	if o.Side == other.Side {
		return false
	}
	if !o.IsValid() || !other.IsValid() {
		return false
	}
	if o.RemainingQty == 0 || other.RemainingQty == 0 {
		return false
	}
	if o.Type == Market || other.Type == Market {
		return true
	}

	buyPrice, sellPrice := o.Price, other.Price
	if o.Side == Sell {
		buyPrice, sellPrice = other.Price, o.Price
	}
	return buyPrice.GreaterThanOrEqual(sellPrice)
}

// ExecutionPrice returns the price a fill between o and other would print
// at: the limit side's price when one side is MARKET, otherwise the price
// of whichever order arrived first (the passive/maker price).
func (o Order) ExecutionPrice(other Order) decimal.Decimal {
	if o.Type == Market && other.Type != Market {
		return other.Price
	}
	if other.Type == Market && o.Type != Market {
		return o.Price
	}
	if o.Timestamp <= other.Timestamp {
		return o.Price
	}
	return other.Price
}
