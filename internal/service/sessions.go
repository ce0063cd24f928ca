package service

import (
	"context"
	"time"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/macosusesdk/automationd/internal/names"
	"github.com/macosusesdk/automationd/internal/pagination"
	"github.com/macosusesdk/automationd/pb"
)

func (s *Service) CreateSession(ctx context.Context, req *pb.CreateSessionRequest) (*pb.Session, error) {
	var metadata map[string]string
	if req.Session != nil {
		metadata = req.Session.Metadata
	}
	return s.sessions.Create(metadata), nil
}

func (s *Service) GetSession(ctx context.Context, req *pb.GetSessionRequest) (*pb.Session, error) {
	if _, err := names.ParseSession(req.Name); err != nil {
		return nil, err
	}
	return s.sessions.Get(req.Name)
}

func (s *Service) ListSessions(ctx context.Context, req *pb.ListSessionsRequest) (*pb.ListSessionsResponse, error) {
	size := req.PageSize
	if size <= 0 {
		size = pagination.SessionPageSize
	}
	page, next := s.sessions.List(size, req.PageToken)
	return &pb.ListSessionsResponse{Sessions: page, NextPageToken: next}, nil
}

func (s *Service) DeleteSession(ctx context.Context, req *pb.DeleteSessionRequest) (*emptypb.Empty, error) {
	if _, err := names.ParseSession(req.Name); err != nil {
		return nil, err
	}
	if err := s.sessions.Delete(req.Name); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (s *Service) BeginTransaction(ctx context.Context, req *pb.BeginTransactionRequest) (*pb.Transaction, error) {
	if _, err := names.ParseSession(req.Name); err != nil {
		return nil, err
	}
	timeout := time.Duration(req.TimeoutSeconds * float64(time.Second))
	return s.sessions.Begin(req.Name, req.IsolationLevel, timeout)
}

func (s *Service) CommitTransaction(ctx context.Context, req *pb.CommitTransactionRequest) (*pb.Transaction, error) {
	if _, err := names.ParseSession(req.Name); err != nil {
		return nil, err
	}
	return s.sessions.Commit(req.Name, req.TransactionId)
}

func (s *Service) RollbackTransaction(ctx context.Context, req *pb.RollbackTransactionRequest) (*pb.Transaction, error) {
	if _, err := names.ParseSession(req.Name); err != nil {
		return nil, err
	}
	return s.sessions.Rollback(req.Name, req.TransactionId, req.RevisionId)
}

// GetSessionSnapshot resolves the tracked resource names against the live
// registries; resources that have since disappeared are skipped.
func (s *Service) GetSessionSnapshot(ctx context.Context, req *pb.GetSessionSnapshotRequest) (*pb.SessionSnapshot, error) {
	if _, err := names.ParseSession(req.Name); err != nil {
		return nil, err
	}
	view, err := s.sessions.Snapshot(req.Name)
	if err != nil {
		return nil, err
	}
	snap := &pb.SessionSnapshot{
		Session:   view.Session,
		History:   view.History,
		Revisions: view.Revisions,
	}
	for _, appName := range view.Applications {
		if pid, err := names.ParseApplication(appName); err == nil {
			if app, ok := s.apps.GetApplication(pid); ok {
				snap.Applications = append(snap.Applications, app)
			}
		}
	}
	for _, obsName := range view.Observations {
		if obs, ok := s.observation.Get(obsName); ok {
			snap.Observations = append(snap.Observations, obs)
		}
	}
	return snap, nil
}
