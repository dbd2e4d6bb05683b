package parser

import "errors"

// Error taxonomy for order parsing: every failure mode collapses to one
// of these, wrapped with fmt.Errorf("%w: ...") for context. Callers that
// need to distinguish "string didn't parse" from "fields were missing"
// from "parsed but invalid" can errors.Is against these.
var (
	// ErrEmptyInput is returned for a zero-length or all-whitespace line.
	ErrEmptyInput = errors.New("parser: empty input")

	// ErrUnrecognizedFormat is returned when the input matches none of
	// the sniffed formats (JSON object, CSV, pipe-delimited).
	ErrUnrecognizedFormat = errors.New("parser: unrecognized input format")

	// ErrMalformed is returned when a recognized format's fields fail to
	// convert to the expected types, or too few fields are present.
	ErrMalformed = errors.New("parser: malformed input")

	// ErrUnknownOrderType is returned by stringToOrderType for any value
	// outside the fixed enum.
	ErrUnknownOrderType = errors.New("parser: unknown order type")

	// ErrUnknownSide is returned by stringToSide for any value outside
	// BUY/SELL.
	ErrUnknownSide = errors.New("parser: unknown order side")

	// ErrInvalidOrder is returned when every field parses individually
	// but the resulting order fails book.Order.IsValid.
	ErrInvalidOrder = errors.New("parser: parsed order is invalid")
)
