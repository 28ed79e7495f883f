/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import "errors"

var (
	// ErrDatabaseConnectionNotInitialized is returned when a query runs before Init.
	ErrDatabaseConnectionNotInitialized = errors.New("database connection not initialized")
	// ErrDatabaseURLEnvVarNotSet is returned when DATABASE_URL is empty.
	ErrDatabaseURLEnvVarNotSet = errors.New("DATABASE_URL environment variable not set")
	// ErrDatabaseNameNotSpecified is returned when DATABASE_URL has no database name.
	ErrDatabaseNameNotSpecified = errors.New("database name not specified in DATABASE_URL")

	ErrInvalidID           = errors.New("invalid id")
	ErrResidentNotFound    = errors.New("resident not found")
	ErrMeasurementNotFound = errors.New("measurement not found")
	ErrDuplicateNIK        = errors.New("a resident with this NIK already exists")

	errInvalidSessionConfig = errors.New("invalid PostgresSessionConfig")
)
