package clause

import (
	"time"

	"github.com/shopspring/decimal"
)

// DelayInput is the delay fact of a raw request. Amount may be
// fractional and may be negative (early delivery).
type DelayInput struct {
	Amount decimal.Decimal `json:"amount"`
	Unit   TimeUnit        `json:"unit"`
}

// RequestInput is the raw shape of a runtime evaluation request.
// The delay may be given either directly (Delay) or as the pair of
// agreed/actual delivery timestamps (AgreedAt, DeliveredAt); exactly
// one of the two forms must be present.
type RequestInput struct {
	GoodsValue  decimal.Decimal `json:"goodsValue"`
	Delay       *DelayInput     `json:"delay,omitempty"`
	AgreedAt    string          `json:"agreedAt,omitempty"`
	DeliveredAt string          `json:"deliveredAt,omitempty"`
}

// Request is a validated, single-use evaluation request. The delay is
// already normalized to the base unit; a non-positive Delay means
// delivery was on time or early.
type Request struct {
	GoodsValue decimal.Decimal
	Delay      time.Duration
}

// NewRequest validates a raw request and normalizes its delay fact.
func NewRequest(in RequestInput) (*Request, error) {
	if in.GoodsValue.IsNegative() {
		return nil, &ValidationError{
			Field:   "goodsValue",
			Message: "goods value must not be negative, got " + in.GoodsValue.String(),
		}
	}

	delay, err := normalizeDelay(in)
	if err != nil {
		return nil, err
	}

	return &Request{GoodsValue: in.GoodsValue, Delay: delay}, nil
}

func normalizeDelay(in RequestInput) (time.Duration, error) {
	hasTimestamps := in.AgreedAt != "" || in.DeliveredAt != ""

	switch {
	case in.Delay != nil && hasTimestamps:
		return 0, &ValidationError{
			Field:   "delay",
			Message: "give either a delay amount or agreedAt/deliveredAt timestamps, not both",
		}

	case in.Delay != nil:
		if !in.Delay.Unit.Valid() {
			return 0, &ValidationError{
				Field:   "delay.unit",
				Message: "unrecognized time unit " + string(in.Delay.Unit),
			}
		}
		// Scale into base nanoseconds. Truncation below nanosecond
		// resolution is irrelevant at clause granularity.
		ns := in.Delay.Amount.Mul(decimal.NewFromInt(int64(in.Delay.Unit.Duration())))
		return time.Duration(ns.IntPart()), nil

	case in.AgreedAt != "" && in.DeliveredAt != "":
		agreed, err := time.Parse(time.RFC3339, in.AgreedAt)
		if err != nil {
			return 0, &ValidationError{Field: "agreedAt", Message: "not a valid RFC3339 timestamp: " + in.AgreedAt}
		}
		delivered, err := time.Parse(time.RFC3339, in.DeliveredAt)
		if err != nil {
			return 0, &ValidationError{Field: "deliveredAt", Message: "not a valid RFC3339 timestamp: " + in.DeliveredAt}
		}
		return delivered.Sub(agreed), nil

	default:
		return 0, &ValidationError{
			Field:   "delay",
			Message: "missing delay fact: give a delay amount or both agreedAt and deliveredAt",
		}
	}
}
