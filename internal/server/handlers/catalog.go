package handlers

import (
	"context"

	"github.com/invopop/jsonschema"

	"github.com/prospectdb/prospectdb/internal/server/dto"
)

// toolCatalog lists every tool with its description and request type, in
// catalog order.
var toolCatalog = []struct {
	name        string
	description string
	request     any
}{
	{
		name:        "append_profiles_to_csv",
		description: "Append new LinkedIn profiles to CSV with automatic deduplication",
		request:     &dto.AppendProfilesRequest{},
	},
	{
		name:        "filter_profiles",
		description: "Query and filter profiles by multiple criteria",
		request:     &dto.FilterProfilesRequest{},
	},
	{
		name:        "get_csv_stats",
		description: "Get summary statistics about the CSV",
		request:     &dto.GetStatsRequest{},
	},
	{
		name:        "export_segment",
		description: "Export a filtered subset to a new CSV file",
		request:     &dto.ExportSegmentRequest{},
	},
	{
		name:        "search_profiles",
		description: "Full-text search across text fields like Headline, Company, Match Reason",
		request:     &dto.SearchProfilesRequest{},
	},
	{
		name:        "deduplicate_csv",
		description: "Remove all duplicates from CSV (maintenance operation)",
		request:     &dto.DeduplicateRequest{},
	},
}

// ListTools returns the tool catalog with JSON Schemas reflected from the
// request types.
func (s *Services) ListTools(ctx context.Context, req *dto.ListToolsRequest) (*dto.ListToolsResponse, error) {
	// Inline properties, no $ref: consumers read each schema standalone.
	r := jsonschema.Reflector{Anonymous: true, DoNotReference: true}
	tools := make([]dto.ToolInfo, 0, len(toolCatalog))
	for _, t := range toolCatalog {
		tools = append(tools, dto.ToolInfo{
			Name:        t.name,
			Description: t.description,
			InputSchema: r.Reflect(t.request),
		})
	}
	return &dto.ListToolsResponse{Tools: tools}, nil
}
