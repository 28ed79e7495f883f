/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errMissingDate     = errors.New("missing date")
	errInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	errDateInFuture    = errors.New("date cannot be in the future")
	errBeforeBirth     = errors.New("measurement date is before the date of birth")
	errNoMeasurements  = errors.New("enter at least one measurement")
	errNegativeAge     = errors.New("age_months cannot be negative")
	errEmptyRequest    = errors.New("request body is empty")
	errInvalidCategory = errors.New("unknown category")
)
