package book

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestOrderIsValid(t *testing.T) {
	valid := NewOrder(1, 1, "AAPL", Limit, Buy, dec("100.00"), 10)
	assert.True(t, valid.IsValid())

	noID := valid
	noID.OrderID = 0
	assert.False(t, noID.IsValid())

	noQty := valid
	noQty.Quantity = 0
	assert.False(t, noQty.IsValid())

	noSymbol := valid
	noSymbol.Symbol = ""
	assert.False(t, noSymbol.IsValid())
}

func TestOrderApplyFill(t *testing.T) {
	o := NewOrder(1, 1, "AAPL", Limit, Buy, dec("100.00"), 10)
	o.ApplyFill(4, 5)
	assert.Equal(t, uint32(6), o.RemainingQty)
	assert.Equal(t, int64(5), o.LastModified)
	assert.True(t, o.IsPartiallyFilled())
	assert.False(t, o.IsFullyFilled())
	assert.Equal(t, uint32(4), o.FilledQty())

	o.ApplyFill(6, 9)
	assert.True(t, o.IsFullyFilled())
	assert.False(t, o.IsPartiallyFilled())
}

func TestOrderCancelIsIdempotent(t *testing.T) {
	o := NewOrder(1, 1, "AAPL", Limit, Buy, dec("100.00"), 10)
	o.Cancel(1)
	assert.Equal(t, uint32(0), o.RemainingQty)
	o.Cancel(2)
	assert.Equal(t, uint32(0), o.RemainingQty)
	assert.Equal(t, int64(2), o.LastModified)
}

func TestOrderCanMatchWith(t *testing.T) {
	buy := NewOrder(1, 1, "AAPL", Limit, Buy, dec("100.00"), 10)
	sell := NewOrder(2, 2, "AAPL", Limit, Sell, dec("99.00"), 10)
	assert.True(t, buy.CanMatchWith(sell))
	assert.True(t, sell.CanMatchWith(buy))

	tooHighAsk := NewOrder(3, 2, "AAPL", Limit, Sell, dec("101.00"), 10)
	assert.False(t, buy.CanMatchWith(tooHighAsk))

	wrongSymbol := NewOrder(4, 2, "MSFT", Limit, Sell, dec("99.00"), 10)
	assert.False(t, buy.CanMatchWith(wrongSymbol))

	sameSide := NewOrder(5, 2, "AAPL", Limit, Buy, dec("99.00"), 10)
	assert.False(t, buy.CanMatchWith(sameSide))

	market := NewOrder(6, 2, "AAPL", Market, Sell, decimal.Zero, 10)
	assert.True(t, buy.CanMatchWith(market))
}

func TestOrderClone(t *testing.T) {
	level := newPriceLevel(dec("100.00"))
	o := NewOrder(1, 1, "AAPL", Limit, Buy, dec("100.00"), 10)
	level.PushBack(&o)

	clone := level.Front().Clone()
	assert.Equal(t, uint64(1), clone.OrderID)
	assert.Nil(t, clone.next)
	assert.Nil(t, clone.prev)

	clone.RemainingQty = 0
	assert.Equal(t, uint32(10), level.Front().RemainingQty, "cloning must not mutate the resident order")
}

func TestOrderExecutionPrice(t *testing.T) {
	earlier := NewOrder(1, 1, "AAPL", Limit, Buy, dec("100.00"), 10)
	earlier.Timestamp = 1
	later := NewOrder(2, 2, "AAPL", Limit, Sell, dec("99.00"), 10)
	later.Timestamp = 2

	assert.True(t, earlier.ExecutionPrice(later).Equal(earlier.Price))
	assert.True(t, later.ExecutionPrice(earlier).Equal(earlier.Price))

	market := NewOrder(3, 3, "AAPL", Market, Sell, decimal.Zero, 10)
	assert.True(t, earlier.ExecutionPrice(market).Equal(earlier.Price))
	assert.True(t, market.ExecutionPrice(earlier).Equal(earlier.Price))
}
