package tapfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileExtension is the only extension accepted for input and output documents.
const FileExtension = ".json"

// IsJSONFile reports whether path ends in .json, ignoring case.
func IsJSONFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), FileExtension)
}

// ValidatePaths checks that inputPath is an existing regular .json file and that
// outputPath is a .json path inside an existing directory.
func ValidatePaths(inputPath, outputPath string) error {
	if err := ValidateInputPath(inputPath); err != nil {
		return err
	}
	return ValidateOutputPath(outputPath)
}

func ValidateInputPath(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &InputFileError{Path: path, Reason: "cannot find the input file"}
	}
	if err != nil {
		return &InputFileError{Path: path, Reason: "cannot access the input file", Err: err}
	}
	if !info.Mode().IsRegular() || !IsJSONFile(path) {
		return &InputFileError{Path: path, Reason: "input file is not a JSON file"}
	}
	return nil
}

func ValidateOutputPath(path string) error {
	if !IsJSONFile(path) {
		return &OutputFileError{Path: path, Reason: "output file must have the .json extension"}
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return &OutputFileError{Path: path, Reason: "cannot find the output directory " + dir, Err: err}
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return &OutputFileError{Path: path, Reason: "output path is a directory"}
	}
	return nil
}

// Exists reports whether something is already at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
