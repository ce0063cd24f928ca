package service

import (
	"context"
	"time"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/macosusesdk/automationd/internal/apierr"
	"github.com/macosusesdk/automationd/internal/operations"
)

// defaultWaitTimeout bounds WaitOperation calls that specify no timeout.
const defaultWaitTimeout = 15 * time.Second

// OperationsService serves google.longrunning.Operations off the shared
// operation store.
type OperationsService struct {
	longrunningpb.UnimplementedOperationsServer
	ops *operations.Store
}

func NewOperationsService(ops *operations.Store) *OperationsService {
	return &OperationsService{ops: ops}
}

// ListOperations treats the request name as a prefix ("operations/",
// "operations/executeMacro/", ...). The supported filters are exactly
// "done=true" and "done=false"; any other non-empty filter is rejected.
func (o *OperationsService) ListOperations(ctx context.Context, req *longrunningpb.ListOperationsRequest) (*longrunningpb.ListOperationsResponse, error) {
	var done *bool
	switch f := req.GetFilter(); f {
	case "":
	case "done=true":
		done = proto.Bool(true)
	case "done=false":
		done = proto.Bool(false)
	default:
		return nil, apierr.InvalidArgument(apierr.ReasonInvalidArgument,
			"unsupported filter: "+f, map[string]string{"filter": f})
	}
	ops, next, err := o.ops.List(req.GetName(), done, req.GetPageSize(), req.GetPageToken())
	if err != nil {
		return nil, err
	}
	return &longrunningpb.ListOperationsResponse{Operations: ops, NextPageToken: next}, nil
}

func (o *OperationsService) GetOperation(ctx context.Context, req *longrunningpb.GetOperationRequest) (*longrunningpb.Operation, error) {
	return o.ops.Get(req.GetName())
}

func (o *OperationsService) DeleteOperation(ctx context.Context, req *longrunningpb.DeleteOperationRequest) (*emptypb.Empty, error) {
	if err := o.ops.Delete(req.GetName()); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (o *OperationsService) CancelOperation(ctx context.Context, req *longrunningpb.CancelOperationRequest) (*emptypb.Empty, error) {
	if err := o.ops.Cancel(req.GetName()); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (o *OperationsService) WaitOperation(ctx context.Context, req *longrunningpb.WaitOperationRequest) (*longrunningpb.Operation, error) {
	timeout := defaultWaitTimeout
	if d := req.GetTimeout(); d != nil {
		timeout = d.AsDuration()
	}
	return o.ops.Wait(ctx, req.GetName(), timeout)
}
