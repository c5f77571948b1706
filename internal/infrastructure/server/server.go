package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	connectcors "connectrpc.com/cors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/validator"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	examprepv1 "github.com/eslsoft/examprep/api/gen/examprep/v1"
	"github.com/eslsoft/examprep/api/gen/examprep/v1/examprepv1connect"
	"github.com/eslsoft/examprep/internal/adapter/connectrpc"
	"github.com/eslsoft/examprep/internal/adapter/mapping"
	"github.com/eslsoft/examprep/internal/infrastructure/config"
)

// Server represents the application server: MaterialsService over gRPC, connect
// handlers and the REST gateway over HTTP (h2c), and a gRPC health endpoint.
type Server struct {
	config     *config.Config
	grpcServer *grpc.Server
	health     *health.Server
	httpServer *http.Server
	logger     *logrus.Logger

	stopGateway context.CancelFunc
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, logger *logrus.Logger, materials examprepv1connect.MaterialsServiceHandler, grpcMaterials examprepv1.MaterialsServiceServer) *Server {
	grpcLogger := InterceptorLogger(logger.WithField("transport", "grpc"))
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.UnaryServerInterceptor(grpcLogger),
			validator.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(logging.StreamServerInterceptor(grpcLogger)),
	)
	examprepv1.RegisterMaterialsServiceServer(grpcServer, grpcMaterials)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(examprepv1connect.MaterialsServiceName, healthpb.HealthCheckResponse_SERVING)

	// The gateway dials our own gRPC listener; the dial is lazy so the listener may start later.
	gwmux := runtime.NewServeMux(runtime.WithIncomingHeaderMatcher(gatewayHeaderMatcher))
	gatewayCtx, stopGateway := context.WithCancel(context.Background())
	dialOpts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	endpoint := fmt.Sprintf("localhost:%d", cfg.Server.GRPCPort)
	if err := examprepv1.RegisterMaterialsServiceHandlerFromEndpoint(gatewayCtx, gwmux, endpoint, dialOpts); err != nil {
		logger.Errorf("failed to register materials gateway handler: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle(examprepv1connect.NewMaterialsServiceHandler(materials,
		connect.WithInterceptors(
			Logger(logger.WithField("transport", "connect")),
			connectrpc.NewValidateInterceptor(),
		),
	))
	mux.Handle("/v1/", gwmux)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort),
		Handler: h2c.NewHandler(withCORS(cfg.Server.AllowedOrigins, mux), &http2.Server{}),
	}

	return &Server{
		config:      cfg,
		grpcServer:  grpcServer,
		health:      healthServer,
		httpServer:  httpServer,
		logger:      logger,
		stopGateway: stopGateway,
	}
}

// gatewayHeaderMatcher forwards the user header as gRPC metadata next to the defaults.
func gatewayHeaderMatcher(key string) (string, bool) {
	if strings.EqualFold(key, mapping.UserIDHeader) {
		return mapping.UserIDMetadataKey, true
	}
	return runtime.DefaultHeaderMatcher(key)
}

func withCORS(origins []string, h http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: connectcors.AllowedMethods(),
		AllowedHeaders: append(connectcors.AllowedHeaders(), mapping.UserIDHeader),
		ExposedHeaders: connectcors.ExposedHeaders(),
		MaxAge:         7200,
	}).Handler(h)
}

// Handler exposes the HTTP handler chain for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves gRPC and HTTP until ctx is done or either listener fails, then shuts down.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(s.StartGRPC)
	g.Go(s.StartHTTP)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// StartGRPC starts the gRPC server
func (s *Server) StartGRPC() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.GRPCPort)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.ServeGRPC(lis)
}

// ServeGRPC serves gRPC on an existing listener.
func (s *Server) ServeGRPC(lis net.Listener) error {
	s.logger.Infof("gRPC server starting on %s", lis.Addr())

	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("failed to serve gRPC: %w", err)
	}

	return nil
}

// StartHTTP starts the connect HTTP server
func (s *Server) StartHTTP() error {
	s.logger.Infof("HTTP server starting on %s", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	s.health.Shutdown()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Errorf("Failed to shutdown HTTP server: %v", err)
	}

	s.grpcServer.GracefulStop()
	s.stopGateway()

	s.logger.Info("Server shutdown complete")
	return nil
}
