// Package server implements the HTTP server and routing logic.
package server

import (
	"net/http"

	"github.com/prospectdb/prospectdb/internal/config"
	"github.com/prospectdb/prospectdb/internal/server/dto"
	"github.com/prospectdb/prospectdb/internal/server/handlers"
	"github.com/prospectdb/prospectdb/internal/server/ratelimit"
)

// NewRouter creates and configures the HTTP router.
//
// Tool calls are POSTs to /api/v1/tools/{name}; each known tool gets an
// explicit route and the pattern route rejects the rest with a structured
// UNKNOWN_TOOL error instead of a bare 404.
func NewRouter(svc *handlers.Services, cfg *config.Config, limiter *ratelimit.Limiter) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /api/v1/health", Wrap(svc.Health, cfg, nil))
	mux.Handle("GET /api/v1/tools", Wrap(svc.ListTools, cfg, limiter))

	mux.Handle("POST /api/v1/tools/append_profiles_to_csv", Wrap(svc.AppendProfiles, cfg, limiter))
	mux.Handle("POST /api/v1/tools/filter_profiles", Wrap(svc.FilterProfiles, cfg, limiter))
	mux.Handle("POST /api/v1/tools/get_csv_stats", Wrap(svc.GetStats, cfg, limiter))
	mux.Handle("POST /api/v1/tools/export_segment", Wrap(svc.ExportSegment, cfg, limiter))
	mux.Handle("POST /api/v1/tools/search_profiles", Wrap(svc.SearchProfiles, cfg, limiter))
	mux.Handle("POST /api/v1/tools/deduplicate_csv", Wrap(svc.Deduplicate, cfg, limiter))

	mux.HandleFunc("POST /api/v1/tools/{name}", func(w http.ResponseWriter, r *http.Request) {
		apiErr := dto.UnknownTool(r.PathValue("name"))
		writeErrorResponseWithCode(w, apiErr.StatusCode(), apiErr.Code(), apiErr.Error(), apiErr.Details())
	})

	return RequestLogger(mux)
}
