/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package scoring

import (
	"fmt"
	"strings"
)

// Severity is a traffic-light health status. The zero value is Green.
type Severity int

// Severity values in ascending order of concern.
const (
	Green Severity = iota
	Yellow
	Red
)

// Severities lists every severity from least to most severe.
var Severities = []Severity{Green, Yellow, Red}

func (s Severity) String() string {
	switch s {
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// ParseSeverity parses a severity from its text form. The Indonesian
// labels used on paper posyandu cards (hijau, kuning, merah) are accepted.
func ParseSeverity(value string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "green", "hijau":
		return Green, nil
	case "yellow", "kuning":
		return Yellow, nil
	case "red", "merah":
		return Red, nil
	default:
		return Green, fmt.Errorf("%w: %q", ErrUnknownSeverity, value)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if s < Green || s > Red {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeverity, int(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}

// Combine returns the worse of two severities.
func Combine(current, observed Severity) Severity {
	if observed > current {
		return observed
	}

	return current
}

// MaxSeverity folds severities with Combine, starting from Green.
func MaxSeverity(severities ...Severity) Severity {
	result := Green
	for _, s := range severities {
		result = Combine(result, s)
	}

	return result
}
