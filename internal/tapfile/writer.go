package tapfile

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"tripgen.codingchallenge.net/internal/logging"
	"tripgen.codingchallenge.net/internal/models"
)

// EncodeTrips writes a pretty-printed {"trips": [...]} document.
func EncodeTrips(w io.Writer, trips []models.Trip) error {
	if trips == nil {
		trips = []models.Trip{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(models.Trips{Trips: trips})
}

// WriteTrips replaces the file at path with the trip document. The document is
// written to a temporary file in the same directory and renamed into place, so
// a failed write never leaves a partial file behind.
func WriteTrips(path string, trips []models.Trip, logger *slog.Logger) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &OutputFileError{Path: path, Reason: "cannot create the output file", Err: err}
	}

	tmpPath := tmp.Name()
	renamed := false
	defer logging.HandleDeferredError(&err, func() error {
		if renamed {
			return nil
		}
		if removeErr := os.Remove(tmpPath); removeErr != nil && !errors.Is(removeErr, fs.ErrNotExist) {
			return removeErr
		}
		return nil
	}, logger, "remove_temp_trip_file")

	if err := tmp.Chmod(0o644); err != nil {
		logging.SafeCloseWithLogging(tmp, logger, "close_temp_trip_file")
		return &OutputFileError{Path: path, Reason: "cannot set output file permissions", Err: err}
	}

	if err := EncodeTrips(tmp, trips); err != nil {
		logging.SafeCloseWithLogging(tmp, logger, "close_temp_trip_file")
		return &OutputFileError{Path: path, Reason: "cannot encode trip data", Err: err}
	}

	if err := tmp.Close(); err != nil {
		return &OutputFileError{Path: path, Reason: "cannot flush the output file", Err: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return &OutputFileError{Path: path, Reason: "cannot replace the output file", Err: err}
	}
	renamed = true

	return nil
}
