package interceptor

import (
	"context"
	"runtime/debug"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"trustrent-backend/internal/logger"
)

type LoggingInterceptor struct {
	// quiet methods are logged at debug level, e.g. health probes.
	quiet map[string]bool
}

func NewLoggingInterceptor(quietMethods ...string) *LoggingInterceptor {
	quiet := make(map[string]bool, len(quietMethods))
	for _, m := range quietMethods {
		quiet[m] = true
	}
	return &LoggingInterceptor{quiet: quiet}
}

// Unary returns a server interceptor that logs every unary RPC and turns
// handler panics into Internal errors.
func (i *LoggingInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				logger.Error("gRPC handler panicked", "method", info.FullMethod, "panic", r, "stack", string(debug.Stack()))
				err = status.Error(codes.Internal, "internal error")
			}
			i.log(info.FullMethod, err, time.Since(start))
		}()
		return handler(ctx, req)
	}
}

func (i *LoggingInterceptor) log(method string, err error, elapsed time.Duration) {
	code := status.Code(err)
	switch {
	case err != nil && code == codes.Internal:
		logger.Error("gRPC call failed", "method", method, "code", code.String(), "error", err, "duration", elapsed)
	case i.quiet[method]:
		logger.Debug("gRPC call", "method", method, "code", code.String(), "duration", elapsed)
	default:
		logger.Info("gRPC call", "method", method, "code", code.String(), "duration", elapsed)
	}
}
