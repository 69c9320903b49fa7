package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"trustrent-backend/internal/api/grpc/interceptor"
	"trustrent-backend/internal/logger"
)

// ServiceName is the health-check name of the TrustRent API.
const ServiceName = "trustrent.v1.TrustRent"

// Server is the gRPC listener that reports process health to orchestrators
// and grpcurl.
type Server struct {
	*grpc.Server
	health *health.Server
}

func NewServer(opts ...grpc.ServerOption) *Server {
	logging := interceptor.NewLoggingInterceptor(
		healthpb.Health_Check_FullMethodName,
		healthpb.Health_Watch_FullMethodName,
	)
	opts = append(opts, grpc.ChainUnaryInterceptor(logging.Unary()))

	s := &Server{
		Server: grpc.NewServer(opts...),
		health: health.NewServer(),
	}
	healthpb.RegisterHealthServer(s.Server, s.health)
	// Register reflection service for grpcurl
	reflection.Register(s.Server)

	s.SetServing(true)
	return s
}

// SetServing flips both the overall and the named service status.
func (s *Server) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(ServiceName, st)
	logger.Debug("gRPC health status changed", "status", st.String())
}

// Shutdown marks the server not serving and drains in-flight RPCs.
func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.GracefulStop()
}
