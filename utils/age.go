/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package utils

import "time"

// AgeInYears returns the number of completed years between dob and at.
func AgeInYears(dob, at time.Time) int {
	years := at.Year() - dob.Year()
	if at.Month() < dob.Month() || (at.Month() == dob.Month() && at.Day() < dob.Day()) {
		years--
	}

	if years < 0 {
		return 0
	}

	return years
}

// AgeInMonths returns the number of completed months between dob and at,
// never negative. A month completes on the same day-of-month as the birth.
func AgeInMonths(dob, at time.Time) int {
	months := (at.Year()-dob.Year())*12 + int(at.Month()) - int(dob.Month())
	if at.Day() < dob.Day() {
		months--
	}

	if months < 0 {
		return 0
	}

	return months
}
