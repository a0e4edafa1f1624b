package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/xid"
	"pkt.systems/pslog"
)

// Dispatcher turns one untyped (name, arguments) pair into one WireResponse.
// It is transport-agnostic and total: unknown tools, malformed arguments,
// domain errors, defects and cancellation all map to a response shape, and
// nothing escapes as a panic or unhandled error.
type Dispatcher struct {
	registry *Registry
	logger   pslog.Logger
	metrics  *serverMetrics
}

// NewDispatcher binds a dispatcher to an immutable registry. metrics may be
// nil.
func NewDispatcher(registry *Registry, logger pslog.Logger, metrics *serverMetrics) *Dispatcher {
	if logger == nil {
		logger = pslog.NoopLogger()
	}
	return &Dispatcher{registry: registry, logger: logger, metrics: metrics}
}

// Dispatch executes one tool call end to end.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, rawArgs json.RawMessage) (resp WireResponse) {
	requestID := xid.New().String()
	defer func() {
		if rec := recover(); rec != nil {
			// A panicking handler is a defect; full detail stays in the
			// log, the caller gets the fixed generic message.
			d.logger.Error("mcp.dispatch.panic", "request_id", requestID, "tool", name, "panic", fmt.Sprint(rec))
			resp = internalError(genericErrorMessage)
		}
		d.metrics.observe(name, resp.ErrorCode())
	}()

	def, ok := d.registry.Lookup(name)
	if !ok {
		d.logger.Debug("mcp.dispatch.unknown_tool", "request_id", requestID, "tool", name)
		return invalidParams("Unknown tool: " + name)
	}

	args, fieldErrs := def.Shape.Decode(rawArgs)
	if len(fieldErrs) > 0 {
		message := def.Name + ": " + formatFieldErrors(fieldErrs)
		d.logger.Debug("mcp.dispatch.invalid_arguments", "request_id", requestID, "tool", name, "violations", len(fieldErrs))
		return invalidParams(message)
	}

	value, err := def.Handler(ctx, args)
	if err != nil {
		resp = translateError(err)
		if resp.ErrorCode() == CodeInternalError {
			// Internal detail is logged here and only here; the wire
			// message has already been sanitized.
			d.logger.Error("mcp.dispatch.tool_failed", "request_id", requestID, "tool", name, "error", err)
		} else {
			d.logger.Debug("mcp.dispatch.tool_rejected", "request_id", requestID, "tool", name, "error", err)
		}
		return resp
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		d.logger.Error("mcp.dispatch.encode_failed", "request_id", requestID, "tool", name, "error", err)
		return internalError(genericErrorMessage)
	}
	return successResponse(string(encoded))
}
