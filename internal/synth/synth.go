// Package synth provides formatting and synthetic-data helpers shared by
// the feed generators and the CLI demo harness: random order fields and
// human-readable formatting of prices, durations, and byte counts.
package synth

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
)

var symbols = []string{"AAPL", "MSFT", "GOOG", "AMZN", "TSLA"}

// RandomSymbol returns one of a small fixed set of equity-looking
// tickers.
func RandomSymbol(rng *rand.Rand) string {
	return symbols[rng.Intn(len(symbols))]
}

// RandomPrice returns a decimal price in [min, max], rounded to cents.
func RandomPrice(rng *rand.Rand, min, max decimal.Decimal) decimal.Decimal {
	spread := max.Sub(min)
	frac := decimal.NewFromFloat(rng.Float64())
	return min.Add(spread.Mul(frac)).Round(2)
}

// RandomQuantity returns an integer quantity in [min, max].
func RandomQuantity(rng *rand.Rand, min, max uint32) uint32 {
	if max <= min {
		return min
	}
	return min + uint32(rng.Intn(int(max-min+1)))
}

// CoinFlip returns true or false with equal probability.
func CoinFlip(rng *rand.Rand) bool {
	return rng.Intn(2) == 1
}

var orderIDCounter uint64

// NextOrderID returns a process-wide, strictly increasing, strictly
// positive order ID, for callers (the CLI harness) that need to mint
// fresh IDs rather than replay existing ones.
func NextOrderID() uint64 {
	return atomic.AddUint64(&orderIDCounter, 1)
}

// FormatPrice renders a decimal price fixed to two places, e.g. "100.00".
func FormatPrice(p decimal.Decimal) string {
	return p.StringFixed(2)
}

// FormatDuration renders d the way a throughput report wants it: seconds
// with millisecond precision for anything under a minute, otherwise
// Go's default duration string.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.3fs", d.Seconds())
	}
	return d.String()
}

// FormatBytes renders n bytes as the largest whole unit that keeps the
// value >= 1, e.g. 1536 -> "1.5 KB".
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	units := []string{"KB", "MB", "GB", "TB"}
	return fmt.Sprintf("%.1f %s", float64(n)/float64(div), units[exp])
}
