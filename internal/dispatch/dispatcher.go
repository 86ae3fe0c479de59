// Package dispatch routes MCP tool calls to the DoorDash client.
//
// A Dispatcher owns the client handle. The handle is provisioned on the
// first call that needs it and kept for the life of the Dispatcher; while
// provisioning keeps failing, every call retries it and fails with
// ErrClientUnavailable.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"

	"doordash-mcp/internal/doordash"
	"doordash-mcp/internal/metricskey"
	"doordash-mcp/internal/tools"
)

var logger = xlog.NewPackageLogger("doordash-mcp/internal", "dispatch")

//go:generate mockgen -source=dispatcher.go -destination=../mocks/mockdispatch/backend_mock.gen.go -package mockdispatch

// Backend is the DoorDash client capability, one method per Drive operation.
type Backend interface {
	DeliveryQuote(ctx context.Context, body map[string]any) (*doordash.Response, error)
	DeliveryQuoteAccept(ctx context.Context, externalDeliveryID string, body map[string]any) (*doordash.Response, error)
	CreateDelivery(ctx context.Context, body map[string]any) (*doordash.Response, error)
	GetDelivery(ctx context.Context, externalDeliveryID string) (*doordash.Response, error)
	CancelDelivery(ctx context.Context, externalDeliveryID string) (*doordash.Response, error)
	UpdateDelivery(ctx context.Context, externalDeliveryID string, body map[string]any) (*doordash.Response, error)
}

// Provisioner builds a Backend, or returns nil when it cannot be configured.
// Implementations must return an untyped nil, not a nil pointer.
type Provisioner func() Backend

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithStrictArguments validates arguments against the tool's input schema
// before calling the backend.
func WithStrictArguments() Option {
	return func(d *Dispatcher) {
		d.strict = true
	}
}

// Dispatcher resolves tool calls and invokes the backend.
type Dispatcher struct {
	provision Provisioner
	strict    bool

	mu      sync.Mutex
	backend Backend
}

// New returns a Dispatcher that provisions its backend with provision.
func New(provision Provisioner, opts ...Option) *Dispatcher {
	d := &Dispatcher{provision: provision}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetBackend replaces the backend handle; nil resets it so the next call
// provisions again.
func (d *Dispatcher) SetBackend(b Backend) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.backend = b
}

// client returns the cached backend, provisioning it if absent.
func (d *Dispatcher) client() Backend {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.backend == nil && d.provision != nil {
		d.backend = d.provision()
	}
	return d.backend
}

// Dispatch calls the named tool with args.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any) (*Result, error) {
	b := d.client()
	if b == nil {
		metricskey.StatsClientUnavailable.IncrCounter(1, toolTag(name))
		return nil, ErrClientUnavailable
	}

	call, ok := routes[tools.Name(name)]
	if _, known := tools.Resolve(name); !ok || !known {
		metricskey.StatsToolCallsNotFound.IncrCounter(1, toolTag(name))
		logger.ContextKV(ctx, xlog.WARNING, "reason", "unknown_tool", "tool", name)
		return nil, errors.Mark(errors.Newf("Unknown tool: %s", name), ErrUnknownTool)
	}

	if args == nil {
		args = map[string]any{}
	}
	if d.strict {
		if err := tools.Validate(name, args); err != nil {
			return nil, errors.Mark(err, ErrInvalidArguments)
		}
	}

	started := time.Now()
	defer metricskey.PerfToolCall.MeasureSince(started, name)

	resp, err := call(ctx, b, args)
	if err != nil {
		metricskey.StatsToolCallsFailed.IncrCounter(1, name)
		logger.ContextKV(ctx, xlog.ERROR, "tool", name, "err", err.Error())
		return nil, errors.Mark(errors.Wrap(err, "DoorDash API error"), ErrBackend)
	}
	if resp == nil {
		resp = &doordash.Response{}
	}

	metricskey.StatsToolCallsSucceeded.IncrCounter(1, name)
	logger.ContextKV(ctx, xlog.DEBUG, "tool", name, "status", resp.StatusCode)

	return NewTextResult(formatJSON(resp.Data)), nil
}

// toolTag bounds metric tag values to catalog names.
func toolTag(name string) string {
	if _, ok := tools.Resolve(name); ok {
		return name
	}
	return "unknown"
}

// formatJSON indents data with two spaces, keeping keys in the order the
// API returned them.
func formatJSON(data json.RawMessage) string {
	if len(data) == 0 {
		return "null"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return string(data)
	}
	return buf.String()
}
