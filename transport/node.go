package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"github.com/luma/rollcall/protocol"
)

const (
	FinishPath = "/finish"
	NoticePath = "/notice"
	ReportPath = "/report"
)

var ErrUnexpectedStatus = errors.New("Node responded with an unexpected status")

// Node talks to the rollup node over HTTP.
type Node struct {
	url           string
	maxTries      uint
	retryInterval time.Duration
	client        *http.Client
	log           *zap.Logger
}

func NewNode(options Options) *Node {
	client := options.Client
	if client == nil {
		client = &http.Client{}
	}

	maxTries := options.MaxTries
	if maxTries < 1 {
		maxTries = 1
	}

	return &Node{
		url:           strings.TrimSuffix(options.URL, "/"),
		maxTries:      maxTries,
		retryInterval: options.RetryInterval,
		client:        client,
		log:           options.Log,
	}
}

// Finish reports status for the previous request and asks for the next one.
// It returns a nil body when the node has no pending request. Failed
// attempts are retried with exponential backoff up to MaxTries.
func (n *Node) Finish(ctx context.Context, status protocol.Status) ([]byte, error) {
	body, err := protocol.FinishBody(status)
	if err != nil {
		return nil, err
	}

	b := backoff.NewExponentialBackOff()
	if n.retryInterval > 0 {
		b.InitialInterval = n.retryInterval
	}

	return backoff.Retry(ctx, func() ([]byte, error) {
		return n.finish(ctx, body)
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(n.maxTries),
		backoff.WithNotify(func(err error, next time.Duration) {
			n.log.Warn("Finish failed, retrying",
				zap.Duration("backoff", next),
				zap.Error(err))
		}),
	)
}

func (n *Node) finish(ctx context.Context, body []byte) ([]byte, error) {
	resp, err := n.post(ctx, FinishPath, body)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	n.log.Debug("Received finish status", zap.Int("status", resp.StatusCode))

	if resp.StatusCode == http.StatusAccepted {
		return nil, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("finish returned %d: %w", resp.StatusCode, ErrUnexpectedStatus)
	}

	// The node has handed out its input once it answers 2xx, a retry would
	// report the previous status again and skip that input.
	next, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("Failed to read finish body: %w", err))
	}

	return next, nil
}

// Notice emits a notice carrying payload. The node's status is logged, not
// acted upon.
func (n *Node) Notice(ctx context.Context, payload string) error {
	return n.emit(ctx, NoticePath, payload)
}

// Report emits a report carrying payload.
func (n *Node) Report(ctx context.Context, payload string) error {
	return n.emit(ctx, ReportPath, payload)
}

func (n *Node) emit(ctx context.Context, path, payload string) error {
	body, err := protocol.PayloadBody(payload)
	if err != nil {
		return err
	}

	resp, err := n.post(ctx, path, body)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	n.log.Info("Sent output",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode))

	return nil
}

func (n *Node) post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	return n.client.Do(req)
}
