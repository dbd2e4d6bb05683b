package feed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"lobme/internal/synth"
)

var (
	simMinPx = decimal.NewFromFloat(99.0)
	simMaxPx = decimal.NewFromFloat(101.0)
)

// generateMarketData produces one synthetic pipe-delimited order line,
// grounded in the original simulation feed's market-data generator but
// emitting the same field layout the parser package already understands
// instead of a bespoke JSON shape. rng belongs to the calling Feed; it is
// never shared across feeds.
func generateMarketData(rng *rand.Rand, seq uint64) string {
	price := synth.RandomPrice(rng, simMinPx, simMaxPx)
	qty := synth.RandomQuantity(rng, 1, 1000)
	side := "SELL"
	if synth.CoinFlip(rng) {
		side = "BUY"
	}
	return fmt.Sprintf("%d|AAPL|LIMIT|%s|%s|%d", seq+1, side, synth.FormatPrice(price), qty)
}

// generateNetworkMessage produces a synthetic heartbeat-style JSON
// message, standing in for an inbound network frame. It deliberately
// carries none of the order fields; a Handler wired to the parser
// package will see it come back as parser.ErrUnknownOrderType (its
// "type" is "heartbeat"), the same as
// a keepalive frame would in the original network feed. It takes no
// randomness but matches runGenerated's generator signature.
func generateNetworkMessage(_ *rand.Rand, seq uint64) string {
	return fmt.Sprintf(`{"messageId":%d,"type":"heartbeat","timestamp":%d}`, seq, time.Now().UnixMilli())
}
