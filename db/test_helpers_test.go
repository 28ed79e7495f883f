// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"context"
	"testing"
	"time"

	"github.com/humaidq/posyandu/scoring"
)

func testContext() context.Context {
	return context.Background()
}

func floatPtr(value float64) *float64 {
	return &value
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func mustCreateResident(t *testing.T, nik string, name string, category scoring.Category) *Resident {
	t.Helper()

	resident, err := CreateResident(testContext(), CreateResidentInput{
		NIK:         nik,
		Name:        name,
		Sex:         scoring.Female,
		DateOfBirth: date(2023, time.January, 10),
		Category:    category,
	})
	if err != nil {
		t.Fatalf("failed to create resident: %v", err)
	}

	return resident
}

func mustCreateMeasurement(t *testing.T, residentID string, measuredOn time.Time, severity scoring.Severity) *Measurement {
	t.Helper()

	measurement, err := CreateMeasurement(testContext(), CreateMeasurementInput{
		ResidentID: residentID,
		MeasuredOn: measuredOn,
		Values:     scoring.Measurements{WeightKg: floatPtr(10)},
		Result:     scoring.Result{Severity: severity, Conditions: []string{}},
	})
	if err != nil {
		t.Fatalf("failed to create measurement: %v", err)
	}

	return measurement
}
