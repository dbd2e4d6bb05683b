package book

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestBook() *OrderBook {
	return NewOrderBook("AAPL")
}

func collectTrades(ob *OrderBook) *[]Trade {
	trades := &[]Trade{}
	ob.SetTradeCallback(func(t Trade) {
		*trades = append(*trades, t)
	})
	return trades
}

func TestScenarioTrivialCrossAtIdenticalPrice(t *testing.T) {
	ob := newTestBook()
	trades := collectTrades(ob)

	ob.Add(NewOrder(1, 1, "AAPL", Limit, Buy, dec("100.00"), 10))
	ob.Add(NewOrder(2, 2, "AAPL", Limit, Sell, dec("100.00"), 10))

	assert.Len(t, *trades, 1)
	tr := (*trades)[0]
	assert.Equal(t, uint64(1), tr.Buy.OrderID)
	assert.Equal(t, uint64(2), tr.Sell.OrderID)
	assert.True(t, tr.Price.Equal(dec("100.00")))
	assert.Equal(t, uint32(10), tr.Qty)

	assert.True(t, ob.BestBid().IsZero())
	assert.True(t, ob.BestAsk().IsZero())
}

func TestScenarioPartialFillLeavesResidualMaker(t *testing.T) {
	ob := newTestBook()
	trades := collectTrades(ob)

	ob.Add(NewOrder(1, 1, "AAPL", Limit, Buy, dec("100"), 10))
	ob.Add(NewOrder(2, 2, "AAPL", Limit, Sell, dec("100"), 4))

	assert.Len(t, *trades, 1)
	assert.Equal(t, uint32(4), (*trades)[0].Qty)
	assert.Equal(t, uint64(1), ob.TotalTrades())

	assert.True(t, ob.BestBid().Equal(dec("100")))
	assert.True(t, ob.BestAsk().IsZero())

	level, ok := ob.bids.LevelAt(ob.priceToTicks(dec("100")))
	assert.True(t, ok)
	assert.Equal(t, 1, level.Len())
	assert.Equal(t, uint64(1), level.Front().OrderID)
	assert.Equal(t, uint32(6), level.Front().RemainingQty)
}

func TestScenarioPriceTimePriority(t *testing.T) {
	ob := newTestBook()
	trades := collectTrades(ob)

	ob.Add(NewOrder(1, 1, "AAPL", Limit, Buy, dec("100"), 5))
	ob.Add(NewOrder(2, 2, "AAPL", Limit, Buy, dec("100"), 5))
	ob.Add(NewOrder(3, 3, "AAPL", Limit, Sell, dec("100"), 5))

	assert.Len(t, *trades, 1)
	assert.Equal(t, uint64(1), (*trades)[0].Buy.OrderID)
	assert.Equal(t, uint64(3), (*trades)[0].Sell.OrderID)

	level, ok := ob.bids.LevelAt(ob.priceToTicks(dec("100")))
	assert.True(t, ok)
	assert.Equal(t, 1, level.Len())
	assert.Equal(t, uint64(2), level.Front().OrderID)
	assert.Equal(t, uint32(5), level.Front().RemainingQty)
}

func TestScenarioBetterPriceBeatsTime(t *testing.T) {
	ob := newTestBook()
	trades := collectTrades(ob)

	ob.Add(NewOrder(1, 1, "AAPL", Limit, Buy, dec("99"), 5))
	ob.Add(NewOrder(2, 2, "AAPL", Limit, Buy, dec("100"), 5))
	ob.Add(NewOrder(3, 3, "AAPL", Limit, Sell, dec("99"), 5))

	assert.Len(t, *trades, 1)
	assert.Equal(t, uint64(2), (*trades)[0].Buy.OrderID)
	assert.Equal(t, uint64(3), (*trades)[0].Sell.OrderID)
	assert.True(t, (*trades)[0].Price.Equal(dec("100")))

	assert.True(t, ob.BestBid().Equal(dec("99")))
	level, ok := ob.bids.LevelAt(ob.priceToTicks(dec("99")))
	assert.True(t, ok)
	assert.Equal(t, uint64(1), level.Front().OrderID)
}

func TestScenarioNonCrossingLimitRests(t *testing.T) {
	ob := newTestBook()
	trades := collectTrades(ob)

	ob.Add(NewOrder(1, 1, "AAPL", Limit, Buy, dec("99"), 10))
	ob.Add(NewOrder(2, 2, "AAPL", Limit, Sell, dec("101"), 10))

	assert.Len(t, *trades, 0)
	assert.True(t, ob.BestBid().Equal(dec("99")))
	assert.True(t, ob.BestAsk().Equal(dec("101")))
}

func TestScenarioCancelRemovesLiquidity(t *testing.T) {
	ob := newTestBook()
	trades := collectTrades(ob)

	ob.Add(NewOrder(1, 1, "AAPL", Limit, Buy, dec("100"), 10))
	ob.Cancel(1)
	ob.Add(NewOrder(2, 2, "AAPL", Limit, Sell, dec("100"), 10))

	assert.Len(t, *trades, 0)
	assert.True(t, ob.BestAsk().Equal(dec("100")))
	assert.True(t, ob.BestBid().IsZero())
}

func TestCancelIsIdempotent(t *testing.T) {
	ob := newTestBook()
	ob.Add(NewOrder(1, 1, "AAPL", Limit, Buy, dec("100"), 10))

	ob.Cancel(1)
	assert.True(t, ob.BestBid().IsZero())
	_, stillThere := ob.index[1]
	assert.False(t, stillThere)

	assert.NotPanics(t, func() { ob.Cancel(1) })
	assert.NotPanics(t, func() { ob.Cancel(999) })
}

func TestIndexConsistencyAfterMixedActivity(t *testing.T) {
	ob := newTestBook()

	ob.Add(NewOrder(1, 1, "AAPL", Limit, Buy, dec("100"), 10))
	ob.Add(NewOrder(2, 2, "AAPL", Limit, Buy, dec("99"), 10))
	ob.Add(NewOrder(3, 3, "AAPL", Limit, Sell, dec("102"), 10))
	ob.Cancel(2)
	ob.Add(NewOrder(4, 4, "AAPL", Limit, Sell, dec("100"), 6))

	for id, loc := range ob.index {
		var side *BookSide
		if loc.side == Buy {
			side = ob.bids
		} else {
			side = ob.asks
		}
		level, ok := side.LevelAt(loc.tick)
		assert.True(t, ok, "indexed order %d must have a live level", id)
		_, present := level.byID[id]
		assert.True(t, present, "indexed order %d must actually be in its level", id)
	}
}

func TestTradeSeqIsMonotonicAndMatchesTotalTrades(t *testing.T) {
	ob := newTestBook()
	trades := collectTrades(ob)

	ob.Add(NewOrder(1, 1, "AAPL", Limit, Sell, dec("100"), 5))
	ob.Add(NewOrder(2, 2, "AAPL", Limit, Sell, dec("100"), 5))
	ob.Add(NewOrder(3, 3, "AAPL", Limit, Buy, dec("100"), 10))

	assert.Len(t, *trades, 2)
	assert.Equal(t, uint64(1), (*trades)[0].Seq)
	assert.Equal(t, uint64(2), (*trades)[1].Seq)
	assert.Equal(t, ob.TotalTrades(), (*trades)[1].Seq)
}

func TestMarketOrderConsumesBookAndDiscardsResidual(t *testing.T) {
	ob := newTestBook()
	trades := collectTrades(ob)

	ob.Add(NewOrder(1, 1, "AAPL", Limit, Sell, dec("100"), 5))
	ob.Add(NewOrder(2, 2, "AAPL", Market, Buy, decimal.Zero, 20))

	assert.Len(t, *trades, 1)
	assert.Equal(t, uint32(5), (*trades)[0].Qty)
	assert.True(t, (*trades)[0].Price.Equal(dec("100")))

	_, ok := ob.index[2]
	assert.False(t, ok, "unfilled market residual must never rest in the book")
	assert.True(t, ob.asks.IsEmpty())
}
