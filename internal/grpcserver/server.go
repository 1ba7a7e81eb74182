package grpcserver

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"pokedex/internal/pokemon"
)

// CatalogService is the health service name reported for the pokemon catalog.
const CatalogService = "pokedex.Catalog"

// NewHealth returns a health server whose status follows the catalog load
// state: SERVING once the dataset was read, NOT_SERVING for an empty fallback
// catalog.
func NewHealth(catalog *pokemon.Catalog) *health.Server {
	hs := health.NewServer()
	status := healthpb.HealthCheckResponse_SERVING
	if !catalog.Loaded() {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	hs.SetServingStatus("", status)
	hs.SetServingStatus(CatalogService, status)
	return hs
}

// NewServer builds the gRPC server exposing health and reflection.
func NewServer(catalog *pokemon.Catalog) (*grpc.Server, *health.Server) {
	srv := grpc.NewServer()
	hs := NewHealth(catalog)
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)
	return srv, hs
}
