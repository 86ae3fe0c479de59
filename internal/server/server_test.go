package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/metrics"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/mock/gomock"

	"doordash-mcp/internal/dispatch"
	"doordash-mcp/internal/doordash"
	"doordash-mcp/internal/mcpserver"
	"doordash-mcp/internal/mocks/mockdispatch"
)

func newServer(t *testing.T, cfg Config) (*Server, *mockdispatch.MockBackend) {
	ctrl := gomock.NewController(t)
	mock := mockdispatch.NewMockBackend(ctrl)
	d := dispatch.New(nil)
	d.SetBackend(mock)
	return New(cfg, mcpserver.NewHandler(d)), mock
}

func do(s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	s, _ := newServer(t, Config{})
	rr := do(s, http.MethodGet, "/health", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestToolsAndCall(t *testing.T) {
	s, mock := newServer(t, Config{Token: "x"})
	mock.EXPECT().GetDelivery(gomock.Any(), "D-1").
		Return(&doordash.Response{StatusCode: http.StatusOK, Data: json.RawMessage(`{"external_delivery_id":"D-1"}`)}, nil)

	// Unauthorized
	rr := do(s, http.MethodGet, "/mcp/tools", "", nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}

	// Authorized tools
	rr = do(s, http.MethodGet, "/mcp/tools", "x", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var list struct {
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&list); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(list.Tools) != 6 || list.Tools[0].Name != "create_delivery_quote" {
		t.Fatalf("unexpected tools: %+v", list.Tools)
	}

	// Call get_delivery
	rr = do(s, http.MethodPost, "/mcp/call", "x", map[string]any{
		"name":      "get_delivery",
		"arguments": map[string]any{"external_delivery_id": "D-1"},
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var res dispatch.Result
	if err := json.NewDecoder(rr.Body).Decode(&res); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(res.Content) != 1 || res.Content[0].Text != "{\n  \"external_delivery_id\": \"D-1\"\n}" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestCallErrors(t *testing.T) {
	s, mock := newServer(t, Config{})
	mock.EXPECT().CancelDelivery(gomock.Any(), "D-1").Return(nil, errors.New("timeout"))

	tcs := []struct {
		name   string
		body   any
		status int
		msg    string
	}{
		{"bad json", "{", http.StatusBadRequest, "invalid json"},
		{"unknown tool", map[string]any{"name": "bad_tool"}, http.StatusNotFound, "Unknown tool: bad_tool"},
		{"backend", map[string]any{"name": "cancel_delivery", "arguments": map[string]any{"external_delivery_id": "D-1"}}, http.StatusBadGateway, "DoorDash API error: timeout"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			rr := do(s, http.MethodPost, "/mcp/call", "", tc.body)
			if rr.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rr.Code)
			}
			var body errorBody
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Error != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, body.Error)
			}
		})
	}
}

func TestCallWithoutClient(t *testing.T) {
	s := New(Config{}, mcpserver.NewHandler(dispatch.New(func() dispatch.Backend { return nil })))
	rr := do(s, http.MethodPost, "/mcp/call", "", map[string]any{"name": "get_delivery"})
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}

type bearer struct {
	token string
	next  http.RoundTripper
}

func (b bearer) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("Authorization", "Bearer "+b.token)
	return b.next.RoundTrip(r)
}

func TestStreamableHTTP(t *testing.T) {
	s, mock := newServer(t, Config{Token: "x"})
	mock.EXPECT().GetDelivery(gomock.Any(), "D-1").
		Return(&doordash.Response{StatusCode: http.StatusOK, Data: json.RawMessage(`{"external_delivery_id":"D-1"}`)}, nil)

	ts := httptest.NewServer(s.Router())
	defer ts.Close()

	// Unauthorized
	resp, err := ts.Client().Post(ts.URL+"/mcp", "application/json",
		strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}

	ctx := context.Background()
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.1.0"}, nil)
	cs, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint:             ts.URL + "/mcp",
		HTTPClient:           &http.Client{Transport: bearer{token: "x", next: http.DefaultTransport}},
		DisableStandaloneSSE: true,
	}, nil)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer cs.Close()

	if _, err := uuid.Parse(cs.ID()); err != nil {
		t.Fatalf("expected a uuid session id, got %q", cs.ID())
	}
	if info := cs.InitializeResult().ServerInfo; info.Name != "doordash-mcp" {
		t.Fatalf("unexpected server info: %+v", info)
	}

	list, err := cs.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	if len(list.Tools) != 6 || list.Tools[0].Name != "create_delivery_quote" {
		t.Fatalf("unexpected tools: %+v", list.Tools)
	}

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_delivery",
		Arguments: map[string]any{"external_delivery_id": "D-1"},
	})
	if err != nil {
		t.Fatalf("call tool: %v", err)
	}
	tc, ok := res.Content[0].(*mcp.TextContent)
	if !ok || tc.Text != "{\n  \"external_delivery_id\": \"D-1\"\n}" {
		t.Fatalf("unexpected result: %+v", res.Content)
	}
}

func TestSessionIsRequired(t *testing.T) {
	s, _ := newServer(t, Config{})
	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")
	req.Header.Set(SessionHeader, "not-a-session")
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an unknown session, got %d", rr.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newServer(t, Config{})
	rr := do(s, http.MethodGet, "/metrics", "", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without a sink, got %d", rr.Code)
	}

	sink := metrics.NewInmemSink(time.Minute, time.Hour)
	sink.IncrCounter("stats_tool_calls_succeeded", 1, []metrics.Tag{{Name: "tool", Value: "get_delivery"}})

	s, _ = newServer(t, Config{Token: "x", Metrics: sink})
	if rr := do(s, http.MethodGet, "/metrics", "", nil); rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	rr = do(s, http.MethodGet, "/metrics", "x", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var summary metrics.Summary
	if err := json.NewDecoder(rr.Body).Decode(&summary); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(summary.Counters) != 1 || summary.Counters[0].Name != "stats_tool_calls_succeeded" || summary.Counters[0].Count != 1 {
		t.Fatalf("unexpected counters: %+v", summary.Counters)
	}
}

func TestStatusFor(t *testing.T) {
	if got := statusFor(dispatch.ErrInvalidArguments); got != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", got)
	}
	if got := statusFor(errors.New("other")); got != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", got)
	}
}
