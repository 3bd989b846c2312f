package utils

import (
	"errors"
	"regexp"
)

// Alphanumeric, underscore, hyphen and dot cover stop ids and request ids.
var validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidateID validates that an ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateIDs runs ValidateID on each named value and collects the failures by name.
func ValidateIDs(ids map[string]string) map[string][]string {
	fieldErrors := make(map[string][]string)
	for field, id := range ids {
		if err := ValidateID(id); err != nil {
			fieldErrors[field] = append(fieldErrors[field], err.Error())
		}
	}
	return fieldErrors
}
