/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxMeasurementValue is the largest value a measurement column can hold
// (NUMERIC(5,2)). Larger inputs are clamped to it.
const MaxMeasurementValue = 999.99

// ParseMeasurement converts free-text form input into a measurement. Empty
// input means the measurement was not taken and yields nil. A comma is
// accepted as the decimal separator.
func ParseMeasurement(raw string) (*float64, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil //nolint:nilnil // Empty input means the measurement was not taken.
	}

	value = strings.ReplaceAll(value, ",", ".")

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return nil, fmt.Errorf("%w: %q", errInvalidNumber, raw)
	}

	if parsed < 0 {
		return nil, fmt.Errorf("%w: %q", errNegativeMeasurement, raw)
	}

	if parsed > MaxMeasurementValue {
		parsed = MaxMeasurementValue
	}

	return &parsed, nil
}

// FormatMeasurement renders an optional measurement for display, "-" when
// it was not taken.
func FormatMeasurement(v *float64) string {
	if v == nil {
		return "-"
	}

	return strconv.FormatFloat(*v, 'f', -1, 64)
}
