package metricskey

import "github.com/effective-security/metrics"

// Stats
var (
	// StatsToolCallsSucceeded is base for counter metric for tool calls that returned a result
	StatsToolCallsSucceeded = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_succeeded",
		Help:         "stats_tool_calls_succeeded provides total tool calls succeeded",
		RequiredTags: []string{"tool"},
	}

	// StatsToolCallsFailed is base for counter metric for tool calls rejected by DoorDash
	StatsToolCallsFailed = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_failed",
		Help:         "stats_tool_calls_failed provides total tool calls failed",
		RequiredTags: []string{"tool"},
	}

	// StatsToolCallsNotFound is base for counter metric for calls to unknown tools
	StatsToolCallsNotFound = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_not_found",
		Help:         "stats_tool_calls_not_found provides total calls to unknown tools",
		RequiredTags: []string{"tool"},
	}

	// StatsClientUnavailable is base for counter metric for calls made without credentials
	StatsClientUnavailable = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_client_unavailable",
		Help:         "stats_client_unavailable provides total calls rejected because the DoorDash client is not configured",
		RequiredTags: []string{"tool"},
	}
)

// Perf
var (
	PerfToolCall = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_tool_call",
		Help:         "perf_tool_call provides duration of tool call",
		RequiredTags: []string{"tool"},
	}
)

// Metrics returns slice of metrics from this repo
var Metrics = []*metrics.Describe{
	&PerfToolCall,
	&StatsClientUnavailable,
	&StatsToolCallsFailed,
	&StatsToolCallsNotFound,
	&StatsToolCallsSucceeded,
}
