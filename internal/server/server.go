// Package server owns the gRPC transport: listener setup (TCP or unix
// socket), service registration, background tasks, and signal-driven
// graceful shutdown.
package server

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/macosusesdk/automationd/internal/config"
	"github.com/macosusesdk/automationd/internal/metrics"
	"github.com/macosusesdk/automationd/internal/service"
	"github.com/macosusesdk/automationd/pb"
)

// socketSettle is how long the unix socket gets to materialize before its
// mode is tightened.
const socketSettle = 100 * time.Millisecond

// Server hosts the Automation and Operations services plus the registries'
// background tasks (reapers).
type Server struct {
	logger *log.Logger
	cfg    *config.Config
	grpc   *grpc.Server
	tasks  []func(context.Context)
}

func New(cfg *config.Config, svc *service.Service, ops *service.OperationsService, tasks ...func(context.Context)) *Server {
	logger := log.New(log.Writer(), "[SERVER] ", log.LstdFlags)

	gs := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			loggingInterceptor(logger),
			service.SessionInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			streamLoggingInterceptor(logger),
		),
	)
	pb.RegisterAutomationServer(gs, svc)
	longrunningpb.RegisterOperationsServer(gs, ops)
	// Server reflection needs bundled descriptor sets; the wire surface is
	// hand-maintained, so none ship. Clients use generated stubs instead.
	logger.Println("reflection unavailable: no descriptor sets bundled")

	return &Server{logger: logger, cfg: cfg, grpc: gs, tasks: tasks}
}

// listen opens the configured transport. Sockets are created with a 0177
// umask and tightened to 0600 once the file exists.
func (s *Server) listen() (net.Listener, error) {
	if sock := s.cfg.Server.UnixSocket; sock != "" {
		syscall.Umask(0o177)
		if err := os.Remove(sock); err == nil {
			s.logger.Printf("removed stale socket %s", sock)
		}
		lis, err := net.Listen("unix", sock)
		if err != nil {
			return nil, err
		}
		time.Sleep(socketSettle)
		if err := os.Chmod(sock, 0o600); err != nil {
			lis.Close()
			return nil, err
		}
		s.logger.Printf("listening on unix socket %s", sock)
		return lis, nil
	}
	lis, err := net.Listen("tcp", s.cfg.TCPAddr())
	if err != nil {
		return nil, err
	}
	s.logger.Printf("listening on %s", s.cfg.TCPAddr())
	return lis, nil
}

// Run serves until SIGTERM/SIGINT or a fatal serve error. Background tasks
// share the serve lifetime.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	lis, err := s.listen()
	if err != nil {
		return err
	}

	metrics.Serve(s.cfg.Metrics.Addr)

	g, ctx := errgroup.WithContext(ctx)
	for _, task := range s.tasks {
		task := task
		g.Go(func() error {
			task(ctx)
			return nil
		})
	}
	g.Go(func() error {
		return s.grpc.Serve(lis)
	})
	g.Go(func() error {
		<-ctx.Done()
		s.logger.Println("shutting down")
		s.grpc.GracefulStop()
		return nil
	})

	err = g.Wait()
	if err == grpc.ErrServerStopped {
		err = nil
	}
	return err
}
