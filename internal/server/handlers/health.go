package handlers

import (
	"context"

	"github.com/prospectdb/prospectdb/internal/server/dto"
)

// Health handles health check requests.
func (s *Services) Health(ctx context.Context, req *dto.HealthRequest) (*dto.HealthResponse, error) {
	return &dto.HealthResponse{
		Status:  "ok",
		Version: s.Version,
	}, nil
}
