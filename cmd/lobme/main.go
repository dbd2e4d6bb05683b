// Command lobme is the demo harness for the matching engine: it wires a
// Logger, an OrderBook, and a Matcher together, drives an order stream
// into them (either synthetic or replayed from a file via -feed), and
// reports throughput, trade count, and best bid/ask on exit — the same
// shape as the original reference harness's main().
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"lobme"
	"lobme/feed"
	"lobme/internal/synth"
	"lobme/parser"
)

func main() {
	symbol := flag.String("symbol", "AAPL", "symbol to trade")
	numOrders := flag.Int("orders", 10000, "number of synthetic orders to generate when -feed is not given")
	feedPath := flag.String("feed", "", "path to a file of parser-format order lines; overrides -orders")
	logPath := flag.String("log", "", "log file path; stdout if empty")
	seed := flag.Int64("seed", 42, "RNG seed for synthetic order generation")
	flag.Parse()

	logger, err := setupLogger(*logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lobme:", err)
		os.Exit(1)
	}

	ob := book.NewOrderBook(*symbol)
	ob.SetTradeCallback(func(t book.Trade) {
		logger.Info("trade",
			"seq", t.Seq,
			"buy", t.Buy.OrderID,
			"sell", t.Sell.OrderID,
			"price", synth.FormatPrice(t.Price),
			"qty", t.Qty,
		)
	})

	matcher := book.NewMatcher(ob, logger)
	if err := matcher.Start(); err != nil {
		fmt.Fprintln(os.Stderr, "lobme:", err)
		os.Exit(1)
	}

	start := time.Now()
	if *feedPath != "" {
		if err := replayFile(matcher, *feedPath, logger); err != nil {
			fmt.Fprintln(os.Stderr, "lobme:", err)
		}
	} else {
		generateSynthetic(matcher, *symbol, *numOrders, *seed)
	}
	matcher.Stop()
	elapsed := time.Since(start)

	processed := matcher.ProcessedOrders()
	var rate float64
	if elapsed > 0 {
		rate = float64(processed) / elapsed.Seconds()
	}
	fmt.Printf("Processed %d orders in %s (%.0f/sec)\n", processed, synth.FormatDuration(elapsed), rate)
	fmt.Printf("Total trades: %d\n", ob.TotalTrades())
	fmt.Printf("Best Bid: %s, Best Ask: %s\n", synth.FormatPrice(ob.BestBid()), synth.FormatPrice(ob.BestAsk()))
}

func setupLogger(path string) (*slog.Logger, error) {
	if path == "" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil)), nil
	}
	return book.NewFileLogger(path)
}

func replayFile(m *book.Matcher, path string, logger *slog.Logger) error {
	f := feed.New(feed.File, path)
	if err := f.Connect(); err != nil {
		return err
	}
	f.SetHandler(func(line string) error {
		o, err := parser.Parse(line)
		if err != nil {
			logger.Warn("skipping unparseable feed line", "line", line, "err", err)
			return nil
		}
		return m.Submit(o)
	})

	if err := f.Start(context.Background()); err != nil {
		return err
	}
	<-f.Done()
	f.Stop()
	return nil
}

func generateSynthetic(m *book.Matcher, symbol string, n int, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	minPx := decimal.NewFromFloat(99.0)
	maxPx := decimal.NewFromFloat(101.0)

	for i := 0; i < n; i++ {
		side := book.Sell
		if synth.CoinFlip(rng) {
			side = book.Buy
		}
		price := synth.RandomPrice(rng, minPx, maxPx)
		qty := synth.RandomQuantity(rng, 1, 100)
		o := book.NewOrder(synth.NextOrderID(), 0, symbol, book.Limit, side, price, qty)
		_ = m.Submit(o)
	}
}
