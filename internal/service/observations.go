package service

import (
	"context"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"github.com/google/uuid"

	"github.com/macosusesdk/automationd/internal/apierr"
	"github.com/macosusesdk/automationd/internal/metrics"
	"github.com/macosusesdk/automationd/internal/names"
	"github.com/macosusesdk/automationd/internal/pagination"
	"github.com/macosusesdk/automationd/pb"
)

// CreateObservation returns an operation immediately; the background task
// attaches the native observer and completes the operation with the started
// observation.
func (s *Service) CreateObservation(ctx context.Context, req *pb.CreateObservationRequest) (*longrunningpb.Operation, error) {
	pid, err := names.ParseApplication(req.Parent)
	if err != nil {
		return nil, err
	}
	obs := &pb.Observation{}
	if req.Observation != nil {
		obs = req.Observation.Clone()
	}
	obs.Name = names.Observation(pid, uuid.NewString())

	opName := newOperationName(kindCreateObservation)
	op, err := s.ops.Create(opName, metadataPayload(map[string]any{"parent": req.Parent}))
	if err != nil {
		return nil, err
	}

	session := sessionFromContext(ctx)
	go func() {
		ctx := background()
		started, err := s.observation.Register(ctx, pid, obs)
		if err != nil {
			s.finishOperation(kindCreateObservation, opName, nil, err)
			return
		}
		if session != "" {
			s.sessions.TrackObservation(session, started.Name)
			s.sessions.RecordOperation(session, "create_observation", started.Name, true, "")
		}
		s.finishOperation(kindCreateObservation, opName, map[string]any{
			"name": started.Name,
			"type": started.Type,
		}, nil)
	}()
	return op, nil
}

func (s *Service) GetObservation(ctx context.Context, req *pb.GetObservationRequest) (*pb.Observation, error) {
	if _, _, err := names.ParseObservation(req.Name); err != nil {
		return nil, err
	}
	obs, ok := s.observation.Get(req.Name)
	if !ok {
		return nil, apierr.NotFound(apierr.ReasonObservationNotFound, req.Name)
	}
	return obs, nil
}

func (s *Service) ListObservations(ctx context.Context, req *pb.ListObservationsRequest) (*pb.ListObservationsResponse, error) {
	pid, err := names.ParseApplicationOrWildcard(req.Parent)
	if err != nil {
		return nil, err
	}
	all := s.observation.List(pid)
	page, next, err := pagination.Page(all, req.PageSize, req.PageToken, pagination.DefaultPageSize)
	if err != nil {
		return nil, err
	}
	return &pb.ListObservationsResponse{Observations: page, NextPageToken: next}, nil
}

func (s *Service) CancelObservation(ctx context.Context, req *pb.CancelObservationRequest) (*pb.Observation, error) {
	if _, _, err := names.ParseObservation(req.Name); err != nil {
		return nil, err
	}
	obs, err := s.observation.Cancel(ctx, req.Name)
	s.record(ctx, "cancel_observation", req.Name, err)
	return obs, err
}

// StreamObservations forwards events until the observation completes or the
// client goes away. A send failure closes only this subscriber.
func (s *Service) StreamObservations(req *pb.StreamObservationsRequest, stream pb.Automation_StreamObservationsServer) error {
	if _, _, err := names.ParseObservation(req.Name); err != nil {
		return err
	}
	sub, err := s.observation.Subscribe(req.Name)
	if err != nil {
		return err
	}
	defer sub.Close()

	ctx := stream.Context()
	for {
		ev, ok := sub.Next(ctx)
		if !ok {
			// Completed (cancelled observation) or client cancellation.
			return ctx.Err()
		}
		if err := stream.Send(ev); err != nil {
			return err
		}
		metrics.ObservationEvents.WithLabelValues("delivered").Inc()
	}
}
