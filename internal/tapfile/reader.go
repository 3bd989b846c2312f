// Package tapfile reads tap documents and writes trip documents.
package tapfile

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"tripgen.codingchallenge.net/internal/logging"
	"tripgen.codingchallenge.net/internal/models"
)

// DecodeTaps decodes a {"taps": [...]} document.
func DecodeTaps(r io.Reader) ([]models.Tap, error) {
	var doc models.Taps
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	if doc.Taps == nil {
		return []models.Tap{}, nil
	}
	if err := CheckTapTimes(doc.Taps); err != nil {
		return nil, err
	}
	return doc.Taps, nil
}

// CheckTapTimes fails on the first tap whose datetimeUTC was absent or null.
// Such a tap decodes to the zero time and would otherwise open a trip at year 1.
func CheckTapTimes(taps []models.Tap) error {
	for _, tap := range taps {
		if tap.DateTimeUTC.IsZero() {
			return fmt.Errorf("tap %d has no datetimeUTC", tap.ID)
		}
	}
	return nil
}

// ReadTaps reads the tap document at path.
func ReadTaps(path string, logger *slog.Logger) ([]models.Tap, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &InputFileError{Path: path, Reason: "cannot open the input file", Err: err}
	}
	defer logging.SafeCloseWithLogging(file, logger, "close_tap_file")

	taps, err := DecodeTaps(file)
	if err != nil {
		return nil, &InputFileError{Path: path, Reason: "cannot decode tap data", Err: err}
	}
	return taps, nil
}
