package app

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/luma/rollcall/protocol"
)

type Method string

const (
	MethodAdd Method = "add"
	MethodSub Method = "sub"
	MethodMul Method = "mul"
	MethodDiv Method = "div"
)

// Calculator is stateless. Each advance request evaluates one binary
// operation and emits the result as a notice.
type Calculator struct {
	emitter Emitter
	log     *zap.Logger
}

func NewCalculator(emitter Emitter, log *zap.Logger) *Calculator {
	return &Calculator{
		emitter: emitter,
		log:     log,
	}
}

func (c *Calculator) Advance(ctx context.Context, req *protocol.Request) (protocol.Status, error) {
	cmd, err := decode(req)
	if err != nil {
		return protocol.StatusReject, err
	}

	method, ok := cmd.Discriminant("method")
	if !ok {
		return protocol.StatusReject, ErrMissingDiscriminant
	}

	a, aErr := cmd.Float("value_1")
	b, bErr := cmd.Float("value_2")
	if err := multierr.Combine(aErr, bErr); err != nil {
		return protocol.StatusReject, fmt.Errorf("Failed to read %s command: %w", method, err)
	}

	var result float64

	switch Method(method) {
	case MethodAdd:
		result = a + b
	case MethodSub:
		result = a - b
	case MethodMul:
		result = a * b
	case MethodDiv:
		result = a / b
	default:
		c.log.Warn("Unknown method", zap.String("method", method))
		return protocol.StatusAccept, nil
	}

	formatted := FormatResult(result)
	c.log.Info("Computed result",
		zap.String("method", method),
		zap.Float64("value1", a),
		zap.Float64("value2", b),
		zap.String("result", formatted))

	if err := c.emitter.Notice(ctx, protocol.EncodeText(formatted)); err != nil {
		return protocol.StatusReject, fmt.Errorf("Failed to send notice: %w", err)
	}

	return protocol.StatusAccept, nil
}

func (c *Calculator) Inspect(ctx context.Context, req *protocol.Request) (protocol.Status, error) {
	if _, err := req.Payload(); err != nil {
		return protocol.StatusReject, err
	}

	return protocol.StatusAccept, nil
}

// FormatResult renders v as the shortest decimal that round trips, without
// an exponent, and spells out infinities as inf and -inf.
func FormatResult(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "NaN"
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

var _ Handler = (*Calculator)(nil)
