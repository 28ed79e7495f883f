/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package scoring

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTable     = errors.New("invalid reference table")
	ErrUnknownSeverity  = errors.New("unknown severity")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrUnknownSex       = errors.New("unknown sex")
	ErrUnknownIndicator = errors.New("unknown growth indicator")
	ErrTableNotFound    = errors.New("reference table not found")
)

// InvalidTableError describes why a reference table was rejected.
type InvalidTableError struct {
	Table  string
	Row    int // -1 when the problem is not tied to a row
	Reason string
}

func (e *InvalidTableError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("invalid reference table %s: row %d: %s", e.Table, e.Row, e.Reason)
	}

	return fmt.Sprintf("invalid reference table %s: %s", e.Table, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidTable.
func (e *InvalidTableError) Unwrap() error {
	return ErrInvalidTable
}
