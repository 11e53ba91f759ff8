package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/luma/rollcall/protocol"
	"github.com/luma/rollcall/storage"
)

const (
	RosterApp     = "roster"
	CalculatorApp = "calculator"
)

var (
	ErrUnknownApp          = errors.New("Unknown app")
	ErrMissingDiscriminant = errors.New("Command has no method or operation")
)

// Handler applies a single request and returns the status to report for it.
// A non-nil error always comes with StatusReject.
type Handler interface {
	Advance(ctx context.Context, req *protocol.Request) (protocol.Status, error)
	Inspect(ctx context.Context, req *protocol.Request) (protocol.Status, error)
}

// Emitter sends outputs to the node. Payloads are already hex encoded.
type Emitter interface {
	Notice(ctx context.Context, payload string) error
	Report(ctx context.Context, payload string) error
}

// New builds the handler registered under name.
func New(name string, emitter Emitter, log *zap.Logger) (Handler, error) {
	switch name {
	case RosterApp:
		return NewRoster(storage.NewInmemoryRoster(), emitter, log), nil

	case CalculatorApp:
		return NewCalculator(emitter, log), nil

	default:
		return nil, fmt.Errorf("'%s': %w", name, ErrUnknownApp)
	}
}

// decode runs the payload of req through the codec.
func decode(req *protocol.Request) (*protocol.Command, error) {
	payload, err := req.Payload()
	if err != nil {
		return nil, err
	}

	return protocol.DecodeCommand(payload)
}
