package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"lobme"
)

// parseCSV parses "orderId,symbol,type,side,price,quantity[,clientId[,remainingQty[,stopPrice]]]".
func parseCSV(input string) (book.Order, error) {
	return parseDelimited(input, ",")
}

// parsePipe parses the same field layout as parseCSV but pipe-delimited,
// a second format the original ingestion tool accepted verbatim.
func parsePipe(input string) (book.Order, error) {
	return parseDelimited(input, "|")
}

func parseDelimited(input, sep string) (book.Order, error) {
	fields := strings.Split(input, sep)
	if len(fields) < 6 {
		return book.Order{}, fmt.Errorf("%w: need at least 6 fields, got %d", ErrMalformed, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	orderID, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return book.Order{}, fmt.Errorf("%w: orderId: %v", ErrMalformed, err)
	}
	symbol := fields[1]
	typ, err := stringToOrderType(fields[2])
	if err != nil {
		return book.Order{}, err
	}
	side, err := stringToSide(fields[3])
	if err != nil {
		return book.Order{}, err
	}
	price, err := decimal.NewFromString(fields[4])
	if err != nil {
		return book.Order{}, fmt.Errorf("%w: price: %v", ErrMalformed, err)
	}
	quantity, err := strconv.ParseUint(fields[5], 10, 32)
	if err != nil {
		return book.Order{}, fmt.Errorf("%w: quantity: %v", ErrMalformed, err)
	}

	o := book.NewOrder(orderID, 0, symbol, typ, side, price, uint32(quantity))

	if len(fields) > 6 && fields[6] != "" {
		clientID, err := strconv.ParseUint(fields[6], 10, 64)
		if err != nil {
			return book.Order{}, fmt.Errorf("%w: clientId: %v", ErrMalformed, err)
		}
		o.ClientID = clientID
	}
	if len(fields) > 7 && fields[7] != "" {
		remaining, err := strconv.ParseUint(fields[7], 10, 32)
		if err != nil {
			return book.Order{}, fmt.Errorf("%w: remainingQty: %v", ErrMalformed, err)
		}
		o.RemainingQty = uint32(remaining)
	}
	if len(fields) > 8 && fields[8] != "" {
		stopPrice, err := decimal.NewFromString(fields[8])
		if err != nil {
			return book.Order{}, fmt.Errorf("%w: stopPrice: %v", ErrMalformed, err)
		}
		o.StopPrice = stopPrice
	}

	return finish(o)
}
