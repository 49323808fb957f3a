package dto

import (
	"github.com/araddon/dateparse"
)

// AppendProfilesRequest appends new profiles to a dataset with automatic
// deduplication.
type AppendProfilesRequest struct {
	CSVPath      string    `json:"csv_path" jsonschema:"description=Path to the CSV file"`
	Profiles     []Profile `json:"profiles" jsonschema:"description=List of profile records to append"`
	DedupeColumn string    `json:"dedupe_column,omitempty" jsonschema:"description=Column name to use for deduplication,default=LinkedIn URL"`
}

// Validate implements Validatable.
func (r *AppendProfilesRequest) Validate() error {
	if r.CSVPath == "" {
		return MissingField("csv_path")
	}
	if r.Profiles == nil {
		return MissingField("profiles")
	}
	return nil
}

// FilterProfilesRequest queries profiles by multiple criteria.
type FilterProfilesRequest struct {
	CSVPath         string   `json:"csv_path" jsonschema:"description=Path to the CSV file"`
	MinScore        *float64 `json:"min_score,omitempty" jsonschema:"description=Inclusive lower bound on v2 Score"`
	MaxScore        *float64 `json:"max_score,omitempty" jsonschema:"description=Inclusive upper bound on v2 Score"`
	Locations       []string `json:"locations,omitempty" jsonschema:"description=Keep rows whose Location contains any of these substrings"`
	Companies       []string `json:"companies,omitempty" jsonschema:"description=Keep rows whose Company contains any of these substrings"`
	CurrentRoleOnly bool     `json:"current_role_only,omitempty" jsonschema:"description=Keep only rows whose CURRENT Role Mention starts with YES"`
	FoundAfterDate  string   `json:"found_after_date,omitempty" jsonschema:"description=ISO date string (e.g. 2026-02-16); keep rows found strictly after it"`
	Limit           int      `json:"limit,omitempty" jsonschema:"description=Maximum number of rows to return"`
}

// Validate implements Validatable.
func (r *FilterProfilesRequest) Validate() error {
	if r.CSVPath == "" {
		return MissingField("csv_path")
	}
	if r.Limit < 0 {
		return InvalidFormat("limit", "must not be negative")
	}
	if r.FoundAfterDate != "" {
		if _, err := dateparse.ParseAny(r.FoundAfterDate); err != nil {
			return InvalidFormat("found_after_date", "not a recognizable date")
		}
	}
	return nil
}

// GetStatsRequest asks for the dataset summary.
type GetStatsRequest struct {
	CSVPath string `json:"csv_path" jsonschema:"description=Path to the CSV file"`
}

// Validate implements Validatable.
func (r *GetStatsRequest) Validate() error {
	if r.CSVPath == "" {
		return MissingField("csv_path")
	}
	return nil
}

// ExportSegmentRequest exports a filtered subset to a new CSV file.
type ExportSegmentRequest struct {
	SourceCSV string   `json:"source_csv" jsonschema:"description=Path to the source CSV file"`
	OutputCSV string   `json:"output_csv" jsonschema:"description=Destination path for the exported segment"`
	MinScore  *float64 `json:"min_score,omitempty" jsonschema:"description=Inclusive lower bound on v2 Score"`
	Locations []string `json:"locations,omitempty" jsonschema:"description=Keep rows whose Location contains any of these substrings"`
	Companies []string `json:"companies,omitempty" jsonschema:"description=Keep rows whose Company contains any of these substrings"`
	Columns   []string `json:"columns,omitempty" jsonschema:"description=Columns to include in the output; absent columns are dropped"`
}

// Validate implements Validatable.
func (r *ExportSegmentRequest) Validate() error {
	if r.SourceCSV == "" {
		return MissingField("source_csv")
	}
	if r.OutputCSV == "" {
		return MissingField("output_csv")
	}
	return nil
}

// SearchProfilesRequest searches for profiles containing a term.
type SearchProfilesRequest struct {
	CSVPath       string   `json:"csv_path" jsonschema:"description=Path to the CSV file"`
	SearchTerm    string   `json:"search_term" jsonschema:"description=Literal substring to search for"`
	Columns       []string `json:"columns,omitempty" jsonschema:"description=Columns to search; defaults to Headline/Company/Match Reason/CURRENT Role Mention"`
	CaseSensitive bool     `json:"case_sensitive,omitempty" jsonschema:"description=Match case-sensitively,default=false"`
	Limit         int      `json:"limit,omitempty" jsonschema:"description=Maximum number of rows to return"`
}

// Validate implements Validatable.
func (r *SearchProfilesRequest) Validate() error {
	if r.CSVPath == "" {
		return MissingField("csv_path")
	}
	if r.SearchTerm == "" {
		return MissingField("search_term")
	}
	if r.Limit < 0 {
		return InvalidFormat("limit", "must not be negative")
	}
	return nil
}

// DeduplicateRequest removes duplicate rows from a dataset in place.
type DeduplicateRequest struct {
	CSVPath      string `json:"csv_path" jsonschema:"description=Path to the CSV file"`
	DedupeColumn string `json:"dedupe_column,omitempty" jsonschema:"description=Column name to use for deduplication,default=LinkedIn URL"`
	Keep         string `json:"keep,omitempty" jsonschema:"description=Which duplicate occurrence survives,enum=first,enum=last,default=first"`
}

// Validate implements Validatable.
func (r *DeduplicateRequest) Validate() error {
	if r.CSVPath == "" {
		return MissingField("csv_path")
	}
	switch r.Keep {
	case "", "first", "last":
		return nil
	default:
		return InvalidFormat("keep", `must be "first" or "last"`)
	}
}

// HealthRequest is the empty health check request.
type HealthRequest struct{}

// Validate implements Validatable.
func (r *HealthRequest) Validate() error {
	return nil
}

// ListToolsRequest is the empty catalog request.
type ListToolsRequest struct{}

// Validate implements Validatable.
func (r *ListToolsRequest) Validate() error {
	return nil
}
