/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package export

import "errors"

var (
	// ErrArchiveNotConfigured is returned when no MinIO endpoint or bucket is set.
	ErrArchiveNotConfigured = errors.New("report archive is not configured")
	// ErrEmptyReport is returned when there is nothing to export.
	ErrEmptyReport = errors.New("no measurements to export")
)
