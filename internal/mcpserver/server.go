// Package mcpserver exposes the DoorDash tools over the Model Context
// Protocol, on top of the official MCP Go SDK.
package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/effective-security/xlog"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"doordash-mcp/internal/dispatch"
	"doordash-mcp/internal/tools"
)

var logger = xlog.NewPackageLogger("doordash-mcp/internal", "mcpserver")

// Server identity reported on initialize.
const (
	ServerName    = "doordash-mcp"
	ServerVersion = "1.0.0"
)

const (
	methodListTools = "tools/list"
	methodCallTool  = "tools/call"
)

// Dispatcher calls a tool by name.
type Dispatcher interface {
	Dispatch(ctx context.Context, name string, args map[string]any) (*dispatch.Result, error)
}

// Handler serves the tool catalog and forwards calls to a Dispatcher.
type Handler struct {
	dispatcher Dispatcher
	server     *mcp.Server
}

// NewHandler returns a Handler that forwards tool calls to d.
func NewHandler(d Dispatcher) *Handler {
	h := &Handler{dispatcher: d}
	h.server = mcp.NewServer(
		&mcp.Implementation{Name: ServerName, Version: ServerVersion},
		&mcp.ServerOptions{
			Capabilities: &mcp.ServerCapabilities{Tools: &mcp.ToolCapabilities{}},
			GetSessionID: uuid.NewString,
		},
	)
	for _, t := range ListTools() {
		h.server.AddTool(t, h.handleCallTool)
	}
	h.server.AddReceivingMiddleware(h.catalog)
	return h
}

// Server returns the underlying MCP server.
func (h *Handler) Server() *mcp.Server {
	return h.server
}

// Serve runs a single session over t until the peer disconnects or ctx is done.
func (h *Handler) Serve(ctx context.Context, t mcp.Transport) error {
	return h.server.Run(ctx, t)
}

// ServeStdio runs a session over newline-delimited JSON on stdin and stdout.
func (h *Handler) ServeStdio(ctx context.Context) error {
	return h.Serve(ctx, &mcp.StdioTransport{})
}

// HTTPHandler returns the streamable HTTP transport. Sessions are keyed by
// the Mcp-Session-Id header issued on initialize.
func (h *Handler) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return h.server
	}, nil)
}

// ListTools returns the tool catalog in declaration order.
func ListTools() []*mcp.Tool {
	catalog := tools.Catalog()
	list := make([]*mcp.Tool, 0, len(catalog))
	for _, d := range catalog {
		list = append(list, &mcp.Tool{
			Name:        string(d.Name),
			Description: d.Description,
			InputSchema: d.InputSchema,
		})
	}
	return list
}

// CallTool dispatches a tool call.
func (h *Handler) CallTool(ctx context.Context, name string, args map[string]any) (*dispatch.Result, error) {
	return h.dispatcher.Dispatch(ctx, name, args)
}

// catalog answers tools/list in declaration order, and sends calls for
// unregistered names to the dispatcher so its error precedence holds.
func (h *Handler) catalog(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		switch method {
		case methodListTools:
			return &mcp.ListToolsResult{Tools: ListTools()}, nil
		case methodCallTool:
			if r, ok := req.(*mcp.CallToolRequest); ok && r.Params != nil {
				if _, known := tools.Resolve(r.Params.Name); !known {
					return h.handleCallTool(ctx, r)
				}
			}
		}
		return next(ctx, method, req)
	}
}

func (h *Handler) handleCallTool(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := decodeArguments(req.Params.Arguments)
	if err != nil {
		return nil, &jsonrpc.Error{Code: jsonrpc.CodeInvalidParams, Message: "invalid params: " + err.Error()}
	}

	res, err := h.CallTool(ctx, req.Params.Name, args)
	if err != nil {
		logger.ContextKV(ctx, xlog.DEBUG, "tool", req.Params.Name, "err", err.Error())
		return nil, &jsonrpc.Error{Code: jsonrpc.CodeInternalError, Message: err.Error()}
	}

	content := make([]mcp.Content, 0, len(res.Content))
	for _, c := range res.Content {
		content = append(content, &mcp.TextContent{Text: c.Text})
	}
	return &mcp.CallToolResult{Content: content}, nil
}

func decodeArguments(raw json.RawMessage) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, err
	}
	return args, nil
}
