package tapfile

import "fmt"

// InputFileError reports a missing or unusable tap input file.
type InputFileError struct {
	Path   string
	Reason string
	Err    error
}

func (e *InputFileError) Error() string {
	msg := fmt.Sprintf("input file %s: %s", e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InputFileError) Unwrap() error {
	return e.Err
}

// OutputFileError reports an unusable trip output path or a failed write.
type OutputFileError struct {
	Path   string
	Reason string
	Err    error
}

func (e *OutputFileError) Error() string {
	msg := fmt.Sprintf("output file %s: %s", e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OutputFileError) Unwrap() error {
	return e.Err
}
