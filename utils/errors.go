/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package utils

import "errors"

var (
	errInvalidNumber       = errors.New("not a valid number")
	errNegativeMeasurement = errors.New("measurement cannot be negative")
	errInvalidNIK          = errors.New("NIK must be 16 digits")
	errEmptyName           = errors.New("name is required")
)
