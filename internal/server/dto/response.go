package dto

import (
	"github.com/Velocidex/ordereddict"
	"github.com/invopop/jsonschema"
)

// AppendProfilesResponse reports an append outcome.
type AppendProfilesResponse struct {
	Added             int `json:"added"`
	SkippedDuplicates int `json:"skipped_duplicates"`
	TotalProfiles     int `json:"total_profiles"`
}

// ProfileListResponse carries query results as ordered records.
type ProfileListResponse struct {
	Profiles []*ordereddict.Dict `json:"profiles"`
	Count    int                 `json:"count"`
}

// DateRange is the span of parseable Found Date values.
type DateRange struct {
	Earliest string `json:"earliest"`
	Latest   string `json:"latest"`
}

// StatsResponse is the dataset summary.
type StatsResponse struct {
	TotalProfiles        int            `json:"total_profiles"`
	AvgScore             float64        `json:"avg_score"`
	ScoreDistribution    map[string]int `json:"score_distribution"`
	LocationBreakdown    map[string]int `json:"location_breakdown"`
	CompanySizeBreakdown map[string]int `json:"company_size_breakdown"`
	FoundDateRange       DateRange      `json:"found_date_range"`
	CurrentRoleCount     int            `json:"current_role_count"`
}

// ExportSegmentResponse reports an export outcome.
type ExportSegmentResponse struct {
	ProfilesExported int      `json:"profiles_exported"`
	OutputPath       string   `json:"output_path"`
	ColumnsIncluded  []string `json:"columns_included"`
}

// DeduplicateResponse reports a maintenance deduplication outcome.
type DeduplicateResponse struct {
	OriginalCount     int `json:"original_count"`
	DuplicatesRemoved int `json:"duplicates_removed"`
	FinalCount        int `json:"final_count"`
}

// HealthResponse reports server liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ToolInfo describes one tool in the catalog.
type ToolInfo struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"input_schema"`
}

// ListToolsResponse is the tool catalog.
type ListToolsResponse struct {
	Tools []ToolInfo `json:"tools"`
}
