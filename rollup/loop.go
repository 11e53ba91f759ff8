package rollup

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/luma/rollcall/app"
	"github.com/luma/rollcall/protocol"
)

// Finisher reports a status to the node and fetches the next request body.
// A nil body means nothing is pending.
type Finisher interface {
	Finish(ctx context.Context, status protocol.Status) ([]byte, error)
}

// Stats counts what the loop has done since it started.
type Stats struct {
	Polls    uint64 `json:"polls"`
	Idle     uint64 `json:"idle"`
	Accepted uint64 `json:"accepted"`
	Rejected uint64 `json:"rejected"`
}

// Loop drives a Handler from the node's finish long-poll. It handles one
// request at a time, so the handler's state is only touched from Run.
type Loop struct {
	node    Finisher
	handler app.Handler
	log     *zap.Logger

	polls    uint64
	idle     uint64
	accepted uint64
	rejected uint64
}

func NewLoop(node Finisher, handler app.Handler, log *zap.Logger) *Loop {
	return &Loop{
		node:    node,
		handler: handler,
		log:     log,
	}
}

// Run polls the node until ctx is cancelled or the node cannot be reached.
// The first finish call reports accept.
func (l *Loop) Run(ctx context.Context) error {
	status := protocol.StatusAccept

	for {
		if ctx.Err() != nil {
			return nil
		}

		atomic.AddUint64(&l.polls, 1)

		body, err := l.node.Finish(ctx, status)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			l.log.Error("Failed to finish", zap.Error(err))
			return err
		}

		if body == nil {
			atomic.AddUint64(&l.idle, 1)
			l.log.Debug("No pending rollup request, trying again")
			continue
		}

		status = l.Handle(ctx, body)
	}
}

// Handle processes one request body and returns the status to report for
// it. Every failure becomes a reject.
func (l *Loop) Handle(ctx context.Context, body []byte) protocol.Status {
	status, err := l.handle(ctx, body)
	if err != nil {
		l.log.Warn("Rejecting request", zap.Error(err))
		status = protocol.StatusReject
	}

	if status == protocol.StatusAccept {
		atomic.AddUint64(&l.accepted, 1)
	} else {
		atomic.AddUint64(&l.rejected, 1)
	}

	return status
}

func (l *Loop) handle(ctx context.Context, body []byte) (protocol.Status, error) {
	req, err := protocol.ReadRequest(body)
	if err != nil {
		return protocol.StatusReject, err
	}

	route := Classify(req.Type)
	l.log.Info("Received request",
		zap.String("requestType", string(req.Type)),
		zap.Stringer("route", route))

	switch route {
	case RouteAdvance:
		return l.handler.Advance(ctx, req)

	case RouteInspect:
		return l.handler.Inspect(ctx, req)

	default:
		l.log.Warn("Unknown request type", zap.String("requestType", string(req.Type)))
		return protocol.StatusReject, nil
	}
}

func (l *Loop) Stats() Stats {
	return Stats{
		Polls:    atomic.LoadUint64(&l.polls),
		Idle:     atomic.LoadUint64(&l.idle),
		Accepted: atomic.LoadUint64(&l.accepted),
		Rejected: atomic.LoadUint64(&l.rejected),
	}
}
