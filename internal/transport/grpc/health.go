package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"gorm.io/gorm"
)

// ServiceName is the health service name reported next to the overall "" status.
const ServiceName = "storefront"

// HealthServer exposes grpc.health.v1 for orchestrator probes. The storefront
// status follows the database ping.
type HealthServer struct {
	Server *grpc.Server
	health *health.Server
	db     *gorm.DB
}

func NewHealthServer(db *gorm.DB) *HealthServer {
	srv := grpc.NewServer()

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthSrv.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(srv, healthSrv)

	// Reflection for local debugging
	reflection.Register(srv)

	return &HealthServer{Server: srv, health: healthSrv, db: db}
}

// Refresh pings the database and updates the storefront status.
func (h *HealthServer) Refresh(ctx context.Context) grpc_health_v1.HealthCheckResponse_ServingStatus {
	status := grpc_health_v1.HealthCheckResponse_SERVING

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.PingContext(ctx) != nil {
		status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}
	h.health.SetServingStatus(ServiceName, status)
	return status
}

// RefreshEvery calls Refresh on each tick until done is closed.
func (h *HealthServer) RefreshEvery(interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			h.Refresh(context.Background())
		case <-done:
			return
		}
	}
}

// Shutdown flips every status to NOT_SERVING and stops the server gracefully.
func (h *HealthServer) Shutdown() {
	h.health.Shutdown()
	h.Server.GracefulStop()
}
