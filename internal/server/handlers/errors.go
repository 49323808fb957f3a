package handlers

import (
	"errors"

	"github.com/prospectdb/prospectdb/internal/csvdb"
	"github.com/prospectdb/prospectdb/internal/server/dto"
)

// mapEngineError converts engine errors into API errors with proper status
// codes. Errors already carrying a status pass through unchanged.
func mapEngineError(path string, err error) error {
	if err == nil {
		return nil
	}
	var ews dto.ErrorWithStatus
	if errors.As(err, &ews) {
		return err
	}
	if errors.Is(err, csvdb.ErrNotFound) {
		return dto.FileNotFound(path)
	}
	var parseErr *csvdb.ParseError
	if errors.As(err, &parseErr) {
		return dto.ParseFailure(err)
	}
	return dto.InternalWithError("Operation failed", err)
}
