package calculator

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/Louies89/calculator/internal/handlers"
	"github.com/Louies89/calculator/internal/observability"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// Add handles GET /calculator/add
func Add(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, "add", func(a, b float64) (float64, error) {
		return a + b, nil
	})
}

// Sub handles GET /calculator/sub
func Sub(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, "sub", func(a, b float64) (float64, error) {
		return a - b, nil
	})
}

// Mul handles GET /calculator/mul
func Mul(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, "mul", func(a, b float64) (float64, error) {
		return a * b, nil
	})
}

// Div handles GET /calculator/div — the only operation with a domain error.
// second == 0 is rejected up front so a 200 never carries Inf or NaN.
func Div(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, "div", func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, fmt.Errorf("%w: %g / %g", ErrDivisionByZero, a, b)
		}
		return a / b, nil
	})
}

// handleBinaryOp is the shared implementation for all calculator operations:
// parse the two query-string operands, compute, respond. It also carries the
// observability plumbing — a child span with operand and result attributes,
// the operation metrics, and a trace-correlated completion log.
func handleBinaryOp(w http.ResponseWriter, r *http.Request, opName string, compute func(float64, float64) (float64, error)) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", opName),
		trace.WithAttributes(
			attribute.String("calculator.operation", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	first, second, err := parseOperands(r)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, err.Error(), err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.Float64("calculator.operand.first", first),
		attribute.Float64("calculator.operand.second", second),
	)

	start := time.Now()
	result, err := compute(first, second)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		status := http.StatusInternalServerError
		msg := "internal error"
		if errors.Is(err, ErrDivisionByZero) {
			status = http.StatusBadRequest
			msg = err.Error()
		}
		observability.RecordError(ctx, span, logger, errorCounter, opName, msg, err, status, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", opName))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, result, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("calculator.result", result))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator operation completed",
		zap.String("operation", opName),
		zap.Float64("first", first),
		zap.Float64("second", second),
		zap.Float64("result", result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, Result{Result: result})
}
