// Package health reports service health over the standard gRPC health protocol.
package health

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/homestock-server/internal/logger"
)

// ServiceName is the service whose status follows the database.
const ServiceName = "homestock"

const pingTimeout = 2 * time.Second

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Reporter keeps the health server in sync with database reachability.
type Reporter struct {
	server   *health.Server
	db       Pinger
	interval time.Duration
	logger   *logger.Logger
}

func NewReporter(db Pinger, interval time.Duration, logger *logger.Logger) *Reporter {
	return &Reporter{
		server:   health.NewServer(),
		db:       db,
		interval: interval,
		logger:   logger,
	}
}

// Server returns the grpc_health_v1 implementation to register.
func (r *Reporter) Server() grpc_health_v1.HealthServer {
	return r.server
}

// Check pings the database once and updates both the overall and the
// named service status.
func (r *Reporter) Check(ctx context.Context) grpc_health_v1.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	st := grpc_health_v1.HealthCheckResponse_SERVING
	if err := r.db.Ping(ctx); err != nil {
		r.logger.Warn("Health reporter: database ping failed", "error", err.Error())
		st = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}

	r.server.SetServingStatus("", st)
	r.server.SetServingStatus(ServiceName, st)
	return st
}

// Run checks immediately and then every interval until ctx is done, after
// which all statuses are set to NOT_SERVING.
func (r *Reporter) Run(ctx context.Context) {
	r.Check(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.server.Shutdown()
			return
		case <-ticker.C:
			r.Check(ctx)
		}
	}
}
