package service

import (
	"context"

	statuspb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/macosusesdk/automationd/internal/metrics"
)

// payload packs a loose field map into a structpb.Struct for operation
// metadata and responses. Packing failures degrade to nil; the operation
// itself is the contract, the payload is advisory.
func payload(fields map[string]any) *structpb.Struct {
	if fields == nil {
		return nil
	}
	st, err := structpb.NewStruct(fields)
	if err != nil {
		return nil
	}
	return st
}

// metadataPayload is payload with the typed-nil hazard stripped for callers
// passing it straight into the operation store.
func metadataPayload(fields map[string]any) proto.Message {
	if st := payload(fields); st != nil {
		return st
	}
	return nil
}

// finishOperation lands a background task on the operation store and bumps
// the per-kind outcome counter. Background tasks never return errors to
// callers; the store is the observable result, so every path here must leave
// the operation done.
func (s *Service) finishOperation(kind, name string, response map[string]any, err error) {
	if err != nil {
		st := status.Convert(err)
		if ferr := s.ops.Fail(name, &statuspb.Status{Code: int32(st.Code()), Message: st.Message()}); ferr != nil {
			s.logger.Printf("operation %s: recording failure: %v", name, ferr)
		}
		metrics.OperationsFinished.WithLabelValues(kind, "failed").Inc()
		s.logger.Printf("operation %s failed: %v", name, err)
		return
	}
	var msg proto.Message
	if st := payload(response); st != nil {
		msg = st
	} else if response != nil {
		s.logger.Printf("operation %s: response not packable, completing without payload", name)
	}
	if ferr := s.ops.Finish(name, msg); ferr != nil {
		s.logger.Printf("operation %s: recording completion: %v", name, ferr)
		if ferr = s.ops.Fail(name, &statuspb.Status{
			Code:    int32(codes.Internal),
			Message: "recording operation completion: " + ferr.Error(),
		}); ferr != nil {
			s.logger.Printf("operation %s: recording fallback failure: %v", name, ferr)
		}
		metrics.OperationsFinished.WithLabelValues(kind, "failed").Inc()
		return
	}
	metrics.OperationsFinished.WithLabelValues(kind, "ok").Inc()
}

// background derives a task context that survives the originating request.
// The returned context ignores the caller's cancellation on purpose: the
// client already holds the operation handle.
func background() context.Context { return context.Background() }
