package router

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/dtroode/homestock-server/internal/api/grpc/health"
	"github.com/dtroode/homestock-server/internal/api/grpc/middleware"
	"github.com/dtroode/homestock-server/internal/logger"
	"github.com/dtroode/homestock-server/internal/metrics"
)

// Router builds the gRPC server exposing the health protocol.
type Router struct {
	health  *health.Reporter
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// New creates new gRPC Router instance. m may be nil to disable metrics.
func New(reporter *health.Reporter, m *metrics.Metrics, logger *logger.Logger) *Router {
	return &Router{
		health:  reporter,
		metrics: m,
		logger:  logger,
	}
}

// Register creates the gRPC server with recovery, logging and metrics
// interceptors and registers the health and reflection services.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)

	unary := []grpc.UnaryServerInterceptor{
		recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(r.recoverPanic)),
		logging.HandleGRPC,
	}
	if r.metrics != nil {
		unary = append(unary, middleware.NewMetrics(r.metrics).HandleGRPC)
	}

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(unary...),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recovery.WithRecoveryHandlerContext(r.recoverPanic)),
		),
	)

	grpc_health_v1.RegisterHealthServer(s, r.health.Server())
	reflection.Register(s)

	return s
}

func (r *Router) recoverPanic(_ context.Context, p any) error {
	r.logger.Error("gRPC handler panicked", "panic", fmt.Sprint(p))
	return status.Error(codes.Internal, "internal error")
}
