package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var toolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "localmem",
	Subsystem: "mcp",
	Name:      "tool_calls_total",
	Help:      "Tool invocations by tool name and outcome.",
}, []string{"tool", "outcome"})

// metricsMiddleware counts tools/call traffic. Other methods pass through
// uncounted.
func metricsMiddleware() sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			result, err := next(ctx, method, req)
			if method != "tools/call" {
				return result, err
			}

			tool := "unknown"
			if params, ok := safeParams(req).(*sdkmcp.CallToolParams); ok && params != nil {
				tool = params.Name
			}
			outcome := "ok"
			if err != nil {
				outcome = "error"
			} else if callResult, ok := result.(*sdkmcp.CallToolResult); ok && callResult != nil && callResult.IsError {
				outcome = "tool_error"
			}
			toolCalls.WithLabelValues(tool, outcome).Inc()

			return result, err
		}
	}
}
