// Package parser turns a single line of text into a book.Order, sniffing
// the line's format the way the original feed-ingestion tool did: a JSON
// object, a comma-separated record, or a pipe-delimited record.
package parser

import (
	"fmt"
	"strings"

	"lobme"
)

// Parse inspects input and dispatches to the matching format parser. The
// sniff order is JSON first (input wrapped in braces), then CSV (contains
// a comma), then pipe-delimited (contains a pipe); anything else is
// ErrUnrecognizedFormat.
func Parse(input string) (book.Order, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return book.Order{}, ErrEmptyInput
	}

	switch {
	case strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}"):
		return parseJSON(trimmed)
	case strings.Contains(trimmed, ","):
		return parseCSV(trimmed)
	case strings.Contains(trimmed, "|"):
		return parsePipe(trimmed)
	default:
		return book.Order{}, fmt.Errorf("%w: %q", ErrUnrecognizedFormat, trimmed)
	}
}

func stringToOrderType(s string) (book.OrderType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MARKET":
		return book.Market, nil
	case "LIMIT":
		return book.Limit, nil
	case "STOP":
		return book.Stop, nil
	case "STOP_LIMIT":
		return book.StopLimit, nil
	case "CANCEL":
		return book.Cancel, nil
	case "MODIFY":
		return book.Modify, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOrderType, s)
	}
}

func stringToSide(s string) (book.Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY":
		return book.Buy, nil
	case "SELL":
		return book.Sell, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSide, s)
	}
}

func finish(o book.Order) (book.Order, error) {
	if !o.IsValid() {
		return book.Order{}, fmt.Errorf("%w: %+v", ErrInvalidOrder, o)
	}
	return o, nil
}
