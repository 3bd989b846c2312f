package tapfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsJSONFile(t *testing.T) {
	assert.True(t, IsJSONFile("taps.json"))
	assert.True(t, IsJSONFile("TAPS.JSON"))
	assert.True(t, IsJSONFile("dir.v2/taps.Json"))
	assert.False(t, IsJSONFile("taps"))
	assert.False(t, IsJSONFile("taps.json.bak"))
	assert.False(t, IsJSONFile("taps.csv"))
}

func TestValidatePaths(t *testing.T) {
	input := filepath.Join("testdata", "taps-completed.json")
	output := filepath.Join(t.TempDir(), "trips.json")

	tests := []struct {
		name       string
		input      string
		output     string
		wantInput  bool
		wantOutput bool
		errMsg     string
	}{
		{
			name:   "valid input and output paths",
			input:  input,
			output: output,
		},
		{
			name:      "missing input file",
			input:     filepath.Join("testdata", "taps-completed"),
			output:    output,
			wantInput: true,
			errMsg:    "cannot find the input file",
		},
		{
			name:      "input is a directory",
			input:     "testdata",
			output:    output,
			wantInput: true,
			errMsg:    "input file is not a JSON file",
		},
		{
			name:      "input directory with a json name",
			input:     filepath.Join("testdata", "not-a-file.json"),
			output:    output,
			wantInput: true,
			errMsg:    "input file is not a JSON file",
		},
		{
			name:       "output without json extension",
			input:      input,
			output:     filepath.Join(t.TempDir(), "trips"),
			wantOutput: true,
			errMsg:     "must have the .json extension",
		},
		{
			name:       "missing output directory",
			input:      input,
			output:     filepath.Join(t.TempDir(), "random", "trips.json"),
			wantOutput: true,
			errMsg:     "cannot find the output directory",
		},
		{
			name:       "output is a directory",
			input:      input,
			output:     filepath.Join("testdata", "not-a-file.json"),
			wantOutput: true,
			errMsg:     "output path is a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePaths(tt.input, tt.output)

			var inputErr *InputFileError
			var outputErr *OutputFileError
			switch {
			case tt.wantInput:
				require.True(t, errors.As(err, &inputErr), "expected InputFileError, got %v", err)
				assert.Contains(t, err.Error(), tt.errMsg)
			case tt.wantOutput:
				require.True(t, errors.As(err, &outputErr), "expected OutputFileError, got %v", err)
				assert.Contains(t, err.Error(), tt.errMsg)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trips.json")
	assert.False(t, Exists(path))

	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	assert.True(t, Exists(path))
}
