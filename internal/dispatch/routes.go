package dispatch

import (
	"context"
	"strconv"

	"doordash-mcp/internal/doordash"
	"doordash-mcp/internal/tools"
)

type route func(ctx context.Context, b Backend, args map[string]any) (*doordash.Response, error)

var routes = map[tools.Name]route{
	tools.CreateDeliveryQuote: withBody(Backend.DeliveryQuote),
	tools.CreateDelivery:      withBody(Backend.CreateDelivery),
	tools.GetDelivery:         withID(Backend.GetDelivery),
	tools.CancelDelivery:      withID(Backend.CancelDelivery),
	tools.AcceptDeliveryQuote: withIDAndBody(Backend.DeliveryQuoteAccept),
	tools.UpdateDelivery:      withIDAndBody(Backend.UpdateDelivery),
}

// withBody passes the arguments through unchanged.
func withBody(m func(Backend, context.Context, map[string]any) (*doordash.Response, error)) route {
	return func(ctx context.Context, b Backend, args map[string]any) (*doordash.Response, error) {
		return m(b, ctx, args)
	}
}

// withID passes only external_delivery_id.
func withID(m func(Backend, context.Context, string) (*doordash.Response, error)) route {
	return func(ctx context.Context, b Backend, args map[string]any) (*doordash.Response, error) {
		return m(b, ctx, deliveryID(args))
	}
}

// withIDAndBody passes external_delivery_id and, separately, everything else.
func withIDAndBody(m func(Backend, context.Context, string, map[string]any) (*doordash.Response, error)) route {
	return func(ctx context.Context, b Backend, args map[string]any) (*doordash.Response, error) {
		body := make(map[string]any, len(args))
		for k, v := range args {
			if k != tools.ExternalDeliveryID {
				body[k] = v
			}
		}
		return m(b, ctx, deliveryID(args), body)
	}
}

// deliveryID returns external_delivery_id as a string. Numbers are
// formatted without exponent; anything else, including absence, yields ""
// and is left for the API to reject.
func deliveryID(args map[string]any) string {
	switch v := args[tools.ExternalDeliveryID].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}
