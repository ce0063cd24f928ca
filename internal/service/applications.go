package service

import (
	"context"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/macosusesdk/automationd/internal/apierr"
	"github.com/macosusesdk/automationd/internal/fieldmask"
	"github.com/macosusesdk/automationd/internal/names"
	"github.com/macosusesdk/automationd/internal/pagination"
	"github.com/macosusesdk/automationd/internal/validate"
	"github.com/macosusesdk/automationd/pb"
)

// OpenApplication launches (or locates) the application and tracks it. The
// launch happens in a background task; the client polls or waits on the
// returned operation.
func (s *Service) OpenApplication(ctx context.Context, req *pb.OpenApplicationRequest) (*longrunningpb.Operation, error) {
	if err := validate.RequiredString("id", req.Id); err != nil {
		return nil, err
	}
	name := newOperationName(kindOpenApplication)
	op, err := s.ops.Create(name, metadataPayload(map[string]any{"id": req.Id}))
	if err != nil {
		return nil, err
	}

	session := sessionFromContext(ctx)
	go func() {
		ctx := background()
		info, err := s.sys.OpenApplication(ctx, req.Id)
		if err != nil {
			s.finishOperation(kindOpenApplication, name, nil, apierr.Platform(err))
			return
		}
		app := &pb.Application{
			Name:        names.Application(info.Pid),
			DisplayName: info.Name,
			Pid:         info.Pid,
			BundleId:    info.BundleID,
		}
		s.apps.AddApplication(app)
		// Opening activates the app; keep its activation burst out of the
		// observation streams.
		s.observation.MarkSDKActivation(info.Pid)
		if session != "" {
			s.sessions.TrackApplication(session, app.Name)
			s.sessions.RecordOperation(session, "open_application", app.Name, true, "")
		}
		s.finishOperation(kindOpenApplication, name, map[string]any{
			"name":        app.Name,
			"displayName": app.DisplayName,
			"pid":         float64(app.Pid),
			"bundleId":    app.BundleId,
		}, nil)
	}()
	return op, nil
}

func (s *Service) GetApplication(ctx context.Context, req *pb.GetApplicationRequest) (*pb.Application, error) {
	pid, err := names.ParseApplication(req.Name)
	if err != nil {
		return nil, err
	}
	app, ok := s.apps.GetApplication(pid)
	if !ok {
		return nil, apierr.NotFound(apierr.ReasonApplicationNotFound, req.Name)
	}
	return maskApplication(app, req.ReadMask), nil
}

func (s *Service) ListApplications(ctx context.Context, req *pb.ListApplicationsRequest) (*pb.ListApplicationsResponse, error) {
	all := s.apps.ListApplications()
	page, next, err := pagination.Page(all, req.PageSize, req.PageToken, pagination.DefaultPageSize)
	if err != nil {
		return nil, err
	}
	out := make([]*pb.Application, len(page))
	for i, app := range page {
		out[i] = maskApplication(app, req.ReadMask)
	}
	return &pb.ListApplicationsResponse{Applications: out, NextPageToken: next}, nil
}

// DeleteApplication stops tracking the application and drops its cached
// elements. The host process is left alone.
func (s *Service) DeleteApplication(ctx context.Context, req *pb.DeleteApplicationRequest) (*emptypb.Empty, error) {
	pid, err := names.ParseApplication(req.Name)
	if err != nil {
		return nil, err
	}
	if !s.apps.RemoveApplication(pid) {
		return nil, apierr.NotFound(apierr.ReasonApplicationNotFound, req.Name)
	}
	s.elements.ClearPid(pid)
	s.record(ctx, "delete_application", req.Name, nil)
	return &emptypb.Empty{}, nil
}

func (s *Service) ActivateApplication(ctx context.Context, req *pb.ActivateApplicationRequest) (*pb.Application, error) {
	pid, err := names.ParseApplication(req.Name)
	if err != nil {
		return nil, err
	}
	app, ok := s.apps.GetApplication(pid)
	if !ok {
		return nil, apierr.NotFound(apierr.ReasonApplicationNotFound, req.Name)
	}
	s.observation.MarkSDKActivation(pid)
	if err := s.sys.ActivateApplication(ctx, pid); err != nil {
		err = apierr.Platform(err)
		s.record(ctx, "activate_application", req.Name, err)
		return nil, err
	}
	s.record(ctx, "activate_application", req.Name, nil)
	return app, nil
}

// maskApplication applies an AIP-157 read mask; the name field survives any
// mask.
func maskApplication(app *pb.Application, mask *fieldmaskpb.FieldMask) *pb.Application {
	if fieldmask.ReadAll(mask) {
		return app
	}
	keep := fieldmask.NewKeep(mask, "name")
	out := &pb.Application{Name: app.Name}
	if keep.Has("display_name") {
		out.DisplayName = app.DisplayName
	}
	if keep.Has("pid") {
		out.Pid = app.Pid
	}
	if keep.Has("bundle_id") {
		out.BundleId = app.BundleId
	}
	return out
}
