package book

import "github.com/shopspring/decimal"

// PriceLevel is a FIFO queue of resting orders at one price, oldest first.
// Insertion is at the tail; matching consumes at the head; cancel removes
// by order ID anywhere in the level (the rare path).
//
// The intrusive next/prev pointers on Order give PushBack/PopFront/Front
// amortized O(1) cost. RemoveByID is O(1) too, via the secondary byID
// index the spec allows as an optional optimization over the O(n) scan.
type PriceLevel struct {
	Price decimal.Decimal

	head, tail *Order
	byID       map[uint64]*Order
	totalQty   uint32
}

func newPriceLevel(price decimal.Decimal) *PriceLevel {
	return &PriceLevel{
		Price: price,
		byID:  make(map[uint64]*Order),
	}
}

// PushBack appends an order to the tail of the level.
func (pl *PriceLevel) PushBack(o *Order) {
	o.prev = pl.tail
	o.next = nil
	if pl.tail != nil {
		pl.tail.next = o
	} else {
		pl.head = o
	}
	pl.tail = o
	pl.byID[o.OrderID] = o
	pl.totalQty += o.RemainingQty
}

// Front returns the head order without removing it, or nil if empty.
func (pl *PriceLevel) Front() *Order {
	return pl.head
}

// PopFront removes and returns the head order, or nil if empty.
func (pl *PriceLevel) PopFront() *Order {
	o := pl.head
	if o == nil {
		return nil
	}
	pl.unlink(o)
	return o
}

// RemoveByID removes the order with the given ID from anywhere in the
// level. Reports whether an order was removed.
func (pl *PriceLevel) RemoveByID(id uint64) bool {
	o, ok := pl.byID[id]
	if !ok {
		return false
	}
	pl.unlink(o)
	return true
}

func (pl *PriceLevel) unlink(o *Order) {
	if o.prev != nil {
		o.prev.next = o.next
	} else {
		pl.head = o.next
	}
	if o.next != nil {
		o.next.prev = o.prev
	} else {
		pl.tail = o.prev
	}
	o.next = nil
	o.prev = nil
	delete(pl.byID, o.OrderID)
	pl.totalQty -= o.RemainingQty
}

// IsEmpty reports whether the level holds no orders.
func (pl *PriceLevel) IsEmpty() bool {
	return len(pl.byID) == 0
}

// Len returns the number of resting orders in the level.
func (pl *PriceLevel) Len() int {
	return len(pl.byID)
}

// TotalQty returns the sum of RemainingQty across all resting orders in
// the level. It is maintained incrementally: PushBack adds an order's
// RemainingQty, unlink subtracts it at removal, and the matching loop
// calls adjustQty for every fill it applies to a resident order.
func (pl *PriceLevel) TotalQty() uint32 {
	return pl.totalQty
}

// adjustQty updates the level's running total after a fill changes the
// remaining quantity of a resident order. A fully consumed order is then
// popped with RemainingQty 0, so unlink subtracts nothing further.
func (pl *PriceLevel) adjustQty(delta int64) {
	if delta < 0 {
		pl.totalQty -= uint32(-delta)
	} else {
		pl.totalQty += uint32(delta)
	}
}
