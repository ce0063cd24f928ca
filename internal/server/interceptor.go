package server

import (
	"context"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/macosusesdk/automationd/internal/metrics"
)

// loggingInterceptor logs each unary call with its code and latency, and
// feeds the request counters.
func loggingInterceptor(logger *log.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		code := status.Code(err)
		metrics.RequestsTotal.WithLabelValues(info.FullMethod, code.String()).Inc()
		metrics.RequestDuration.WithLabelValues(info.FullMethod).Observe(elapsed.Seconds())
		if err != nil {
			logger.Printf("%s -> %s (%s): %v", info.FullMethod, code, elapsed, err)
		} else {
			logger.Printf("%s -> OK (%s)", info.FullMethod, elapsed)
		}
		return resp, err
	}
}

// streamLoggingInterceptor logs stream open/close.
func streamLoggingInterceptor(logger *log.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, ss)
		logger.Printf("stream %s closed after %s: %v", info.FullMethod, time.Since(start), err)
		return err
	}
}
