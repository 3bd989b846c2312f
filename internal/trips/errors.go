package trips

import "fmt"

// TripGenerationError aborts a conversion batch. It identifies the tap-on whose
// trip could not be built and wraps the underlying cause, if any.
type TripGenerationError struct {
	TapID  int
	Reason string
	Err    error
}

func (e *TripGenerationError) Error() string {
	msg := fmt.Sprintf("cannot generate trip for tap %d: %s", e.TapID, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TripGenerationError) Unwrap() error {
	return e.Err
}
