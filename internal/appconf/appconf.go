// Package appconf names the environments the binaries run in.
package appconf

import (
	"fmt"
	"strings"
)

type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	Production  Environment = "production"
)

// ParseEnvironment accepts development|test|production in any case.
func ParseEnvironment(value string) (Environment, error) {
	switch env := Environment(strings.ToLower(strings.TrimSpace(value))); env {
	case Development, Test, Production:
		return env, nil
	case "":
		return Development, nil
	default:
		return Development, fmt.Errorf("unknown environment %q (development|test|production)", value)
	}
}
