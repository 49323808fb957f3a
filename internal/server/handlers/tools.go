package handlers

import (
	"context"
	"log/slog"

	"github.com/Velocidex/ordereddict"

	"github.com/prospectdb/prospectdb/internal/csvdb"
	"github.com/prospectdb/prospectdb/internal/server/dto"
)

// AppendProfiles appends profiles to a dataset, skipping duplicates.
func (s *Services) AppendProfiles(ctx context.Context, req *dto.AppendProfilesRequest) (*dto.AppendProfilesResponse, error) {
	path, err := s.resolvePath(req.CSVPath)
	if err != nil {
		return nil, err
	}
	unlock := s.lockPath(path)
	defer unlock()

	profiles := make([]*ordereddict.Dict, 0, len(req.Profiles))
	for _, p := range req.Profiles {
		d := p.Dict
		if d == nil {
			d = ordereddict.NewDict()
		}
		profiles = append(profiles, d)
	}

	res, err := csvdb.Append(path, profiles, s.dedupeColumn(req.DedupeColumn))
	if err != nil {
		return nil, mapEngineError(req.CSVPath, err)
	}
	slog.InfoContext(ctx, "Appended profiles", "path", path, "added", res.Added, "skipped", res.SkippedDuplicates)
	return &dto.AppendProfilesResponse{
		Added:             res.Added,
		SkippedDuplicates: res.SkippedDuplicates,
		TotalProfiles:     res.TotalProfiles,
	}, nil
}

// FilterProfiles queries a dataset by score bounds, locations, companies,
// current-role flag and found date.
func (s *Services) FilterProfiles(ctx context.Context, req *dto.FilterProfilesRequest) (*dto.ProfileListResponse, error) {
	path, err := s.resolvePath(req.CSVPath)
	if err != nil {
		return nil, err
	}
	rows, err := csvdb.Filter(path, csvdb.FilterOptions{
		MinScore:        req.MinScore,
		MaxScore:        req.MaxScore,
		Locations:       req.Locations,
		Companies:       req.Companies,
		CurrentRoleOnly: req.CurrentRoleOnly,
		FoundAfterDate:  req.FoundAfterDate,
		Limit:           req.Limit,
	})
	if err != nil {
		return nil, mapEngineError(req.CSVPath, err)
	}
	return &dto.ProfileListResponse{Profiles: rows, Count: len(rows)}, nil
}

// GetStats computes the dataset summary.
func (s *Services) GetStats(ctx context.Context, req *dto.GetStatsRequest) (*dto.StatsResponse, error) {
	path, err := s.resolvePath(req.CSVPath)
	if err != nil {
		return nil, err
	}
	stats, err := csvdb.GetStats(path)
	if err != nil {
		return nil, mapEngineError(req.CSVPath, err)
	}
	return &dto.StatsResponse{
		TotalProfiles:        stats.TotalProfiles,
		AvgScore:             stats.AvgScore,
		ScoreDistribution:    stats.ScoreDistribution,
		LocationBreakdown:    stats.LocationBreakdown,
		CompanySizeBreakdown: stats.CompanySizeBreakdown,
		FoundDateRange: dto.DateRange{
			Earliest: stats.FoundDateRange.Earliest,
			Latest:   stats.FoundDateRange.Latest,
		},
		CurrentRoleCount: stats.CurrentRoleCount,
	}, nil
}

// ExportSegment writes a filtered subset of a dataset to a new file.
func (s *Services) ExportSegment(ctx context.Context, req *dto.ExportSegmentRequest) (*dto.ExportSegmentResponse, error) {
	source, err := s.resolvePath(req.SourceCSV)
	if err != nil {
		return nil, err
	}
	output, err := s.resolvePath(req.OutputCSV)
	if err != nil {
		return nil, err
	}
	unlock := s.lockPath(output)
	defer unlock()

	res, err := csvdb.Export(source, output, csvdb.ExportOptions{
		MinScore:  req.MinScore,
		Locations: req.Locations,
		Companies: req.Companies,
		Columns:   req.Columns,
	})
	if err != nil {
		return nil, mapEngineError(req.SourceCSV, err)
	}
	slog.InfoContext(ctx, "Exported segment", "source", source, "output", res.OutputPath, "rows", res.ProfilesExported)
	return &dto.ExportSegmentResponse{
		ProfilesExported: res.ProfilesExported,
		OutputPath:       res.OutputPath,
		ColumnsIncluded:  res.ColumnsIncluded,
	}, nil
}

// SearchProfiles finds rows containing a literal substring in text columns.
func (s *Services) SearchProfiles(ctx context.Context, req *dto.SearchProfilesRequest) (*dto.ProfileListResponse, error) {
	path, err := s.resolvePath(req.CSVPath)
	if err != nil {
		return nil, err
	}
	rows, err := csvdb.Search(path, req.SearchTerm, csvdb.SearchOptions{
		Columns:       req.Columns,
		CaseSensitive: req.CaseSensitive,
		Limit:         req.Limit,
	})
	if err != nil {
		return nil, mapEngineError(req.CSVPath, err)
	}
	return &dto.ProfileListResponse{Profiles: rows, Count: len(rows)}, nil
}

// Deduplicate removes duplicate rows from a dataset in place.
func (s *Services) Deduplicate(ctx context.Context, req *dto.DeduplicateRequest) (*dto.DeduplicateResponse, error) {
	path, err := s.resolvePath(req.CSVPath)
	if err != nil {
		return nil, err
	}
	unlock := s.lockPath(path)
	defer unlock()

	res, err := csvdb.Deduplicate(path, s.dedupeColumn(req.DedupeColumn), req.Keep)
	if err != nil {
		return nil, mapEngineError(req.CSVPath, err)
	}
	slog.InfoContext(ctx, "Deduplicated file", "path", path, "removed", res.DuplicatesRemoved)
	return &dto.DeduplicateResponse{
		OriginalCount:     res.OriginalCount,
		DuplicatesRemoved: res.DuplicatesRemoved,
		FinalCount:        res.FinalCount,
	}, nil
}
