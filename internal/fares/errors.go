package fares

import "fmt"

// FareNotFoundError is returned when no fare table entry qualifies for a lookup.
// The table is static, so this signals a data or configuration defect and is never retryable.
type FareNotFoundError struct {
	FromStopID string
	ToStopID   string // empty for a maximum-fare lookup
}

func (e *FareNotFoundError) Error() string {
	if e.ToStopID == "" {
		return fmt.Sprintf("no fare found from stop %q", e.FromStopID)
	}
	return fmt.Sprintf("no fare found between stops %q and %q", e.FromStopID, e.ToStopID)
}
