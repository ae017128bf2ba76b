package middleware

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor logs every RPC with the default logger.
// Place it after RequireAuth so the acting user is known.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return NewLoggingInterceptor(slog.Default())
}

// NewLoggingInterceptor logs each RPC to logger with its service, method,
// acting user and latency. Client-side failures log at warn, CodeInternal
// and non-Connect errors at error.
func NewLoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			service, method := splitProcedure(req.Spec().Procedure)

			resp, err := next(ctx, req)

			attrs := []any{
				"service", service,
				"method", method,
				"user_id", GetUserID(ctx),
				"peer", req.Peer().Addr,
				"duration_ms", time.Since(start).Milliseconds(),
			}

			var connectErr *connect.Error
			switch {
			case err == nil:
				logger.InfoContext(ctx, "RPC ok", attrs...)
			case errors.As(err, &connectErr) && connectErr.Code() != connect.CodeInternal:
				logger.WarnContext(ctx, "RPC rejected", append(attrs, "code", connectErr.Code().String(), "error", connectErr.Message())...)
			default:
				logger.ErrorContext(ctx, "RPC failed", append(attrs, "code", connect.CodeOf(err).String(), "error", err)...)
			}
			return resp, err
		}
	}
}

// splitProcedure turns "/paylash.v1.LedgerService/CreateExpense" into
// ("LedgerService", "CreateExpense").
func splitProcedure(procedure string) (service, method string) {
	full, method, ok := strings.Cut(strings.TrimPrefix(procedure, "/"), "/")
	if !ok {
		return procedure, ""
	}
	if i := strings.LastIndexByte(full, '.'); i >= 0 {
		full = full[i+1:]
	}
	return full, method
}
