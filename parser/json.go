package parser

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"lobme"
)

// jsonOrder mirrors the wire shape of a JSON order record. clientId,
// remainingQty, and stopPrice are optional, matching the original
// ingestion tool's default-filling behavior.
type jsonOrder struct {
	OrderID      uint64          `json:"orderId"`
	ClientID     uint64          `json:"clientId"`
	Symbol       string          `json:"symbol"`
	Type         string          `json:"type"`
	Side         string          `json:"side"`
	Price        decimal.Decimal `json:"price"`
	Quantity     uint32          `json:"quantity"`
	RemainingQty uint32          `json:"remainingQty"`
	StopPrice    decimal.Decimal `json:"stopPrice"`
}

func parseJSON(input string) (book.Order, error) {
	var jo jsonOrder
	if err := json.Unmarshal([]byte(input), &jo); err != nil {
		return book.Order{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	typ, err := stringToOrderType(jo.Type)
	if err != nil {
		return book.Order{}, err
	}
	side, err := stringToSide(jo.Side)
	if err != nil {
		return book.Order{}, err
	}

	o := book.NewOrder(jo.OrderID, jo.ClientID, jo.Symbol, typ, side, jo.Price, jo.Quantity)
	o.StopPrice = jo.StopPrice
	if jo.RemainingQty > 0 {
		o.RemainingQty = jo.RemainingQty
	}
	return finish(o)
}
