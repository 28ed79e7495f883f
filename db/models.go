/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/humaidq/posyandu/scoring"
)

// Resident is a person registered at the posyandu.
type Resident struct {
	ID           uuid.UUID        `db:"id"`
	NIK          string           `db:"nik"`
	Name         string           `db:"name"`
	Sex          scoring.Sex      `db:"sex"`
	DateOfBirth  time.Time        `db:"date_of_birth"`
	Category     scoring.Category `db:"category"`
	Address      *string          `db:"address"`
	GuardianName *string          `db:"guardian_name"`
	CreatedAt    time.Time        `db:"created_at"`
	UpdatedAt    time.Time        `db:"updated_at"`
}

// ResidentSummary is a resident row with its latest measurement status.
type ResidentSummary struct {
	Resident

	MeasurementCount int
	LastMeasuredOn   *time.Time
	LatestSeverity   *scoring.Severity
}

// CreateResidentInput holds the fields for registering a resident.
type CreateResidentInput struct {
	NIK          string
	Name         string
	Sex          scoring.Sex
	DateOfBirth  time.Time
	Category     scoring.Category
	Address      *string
	GuardianName *string
}

// Measurement is one stored visit together with the status computed for it.
type Measurement struct {
	ID         uuid.UUID        `db:"id"`
	ResidentID uuid.UUID        `db:"resident_id"`
	Category   scoring.Category `db:"category"`
	MeasuredOn time.Time        `db:"measured_on"`
	AgeMonths  int              `db:"age_months"`
	Values     scoring.Measurements
	Result     scoring.Result
	Notes      *string   `db:"notes"`
	CreatedAt  time.Time `db:"created_at"`
}

// CreateMeasurementInput holds a visit to store. The category is taken from
// the resident.
type CreateMeasurementInput struct {
	ResidentID string
	MeasuredOn time.Time
	AgeMonths  int
	Values     scoring.Measurements
	Result     scoring.Result
	Notes      *string
}

// MeasurementReportRow is a measurement joined with the resident fields a
// monthly report needs.
type MeasurementReportRow struct {
	Measurement

	NIK          string
	ResidentName string
	Sex          scoring.Sex
}

// CategorySummary counts the residents of one category and the severity of
// their latest measurement within a month.
type CategorySummary struct {
	Category  scoring.Category
	Residents int
	Measured  int
	Green     int
	Yellow    int
	Red       int
}

// Unmeasured returns the number of residents without a measurement in the month.
func (s CategorySummary) Unmeasured() int {
	return s.Residents - s.Measured
}
