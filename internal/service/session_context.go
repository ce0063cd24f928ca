package service

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// SessionMetadataKey is the request-metadata key clients set to tie a
// mutation to a session's operation history.
const SessionMetadataKey = "x-automation-session"

type sessionKey struct{}

// SessionInterceptor lifts the session name out of the incoming metadata so
// handlers can record operations without touching transport details.
func SessionInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if vals := md.Get(SessionMetadataKey); len(vals) > 0 && vals[0] != "" {
				ctx = context.WithValue(ctx, sessionKey{}, vals[0])
			}
		}
		return handler(ctx, req)
	}
}

// sessionFromContext returns the session name attached by the interceptor,
// or "" when the request is sessionless.
func sessionFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(sessionKey{}).(string); ok {
		return v
	}
	return ""
}

// record appends the mutation to the request's session history when one is
// attached. Best-effort: unknown sessions are ignored.
func (s *Service) record(ctx context.Context, opType, resource string, err error) {
	session := sessionFromContext(ctx)
	if session == "" {
		return
	}
	s.sessions.RecordOperation(session, opType, resource, err == nil, errMsg(err))
}
