/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/humaidq/posyandu/scoring"
)

const measurementColumns = `m.id, m.resident_id, m.category::text, m.measured_on, m.age_months,
	m.weight_kg, m.height_cm, m.muac_cm, m.head_circumference_cm, m.systolic, m.diastolic,
	m.blood_glucose, m.cholesterol, m.hemoglobin, m.gestational_age_weeks,
	m.severity::text, m.nutritional_status, m.conditions, m.recommendation, m.notes, m.created_at`

// CreateMeasurement stores a visit and its computed status under the
// resident's current category.
func CreateMeasurement(ctx context.Context, input CreateMeasurementInput) (*Measurement, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	residentID, err := parseID(input.ResidentID)
	if err != nil {
		return nil, err
	}

	severity, err := input.Result.Severity.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to encode severity: %w", err)
	}

	var nutritionalStatus *string
	if input.Result.NutritionalStatus != "" {
		nutritionalStatus = &input.Result.NutritionalStatus
	}

	conditions := input.Result.Conditions
	if conditions == nil {
		conditions = []string{}
	}

	v := input.Values
	query := `
		WITH m AS (
			INSERT INTO measurements (
				resident_id, category, measured_on, age_months,
				weight_kg, height_cm, muac_cm, head_circumference_cm, systolic, diastolic,
				blood_glucose, cholesterol, hemoglobin, gestational_age_weeks,
				severity, nutritional_status, conditions, recommendation, notes
			)
			SELECT r.id, r.category, $2::date, $3::integer,
				$4::numeric, $5::numeric, $6::numeric, $7::numeric, $8::numeric, $9::numeric,
				$10::numeric, $11::numeric, $12::numeric, $13::numeric,
				$14::severity, $15::text, $16::text[], $17::text, $18::text
			FROM residents r
			WHERE r.id = $1
			RETURNING *
		)
		SELECT ` + measurementColumns + ` FROM m
	`

	row := pool.QueryRow(ctx, query,
		residentID, input.MeasuredOn, input.AgeMonths,
		v.WeightKg, v.HeightCm, v.MUACCm, v.HeadCircumferenceCm, v.Systolic, v.Diastolic,
		v.BloodGlucose, v.Cholesterol, v.Hemoglobin, v.GestationalAgeWeeks,
		string(severity), nutritionalStatus, conditions, input.Result.Recommendation, input.Notes,
	)

	measurement, err := scanMeasurement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrResidentNotFound
		}

		return nil, fmt.Errorf("failed to create measurement: %w", err)
	}

	logger.Info("Recorded measurement",
		"measurement_id", measurement.ID,
		"resident_id", measurement.ResidentID,
		"severity", measurement.Result.Severity,
	)

	return measurement, nil
}

// GetMeasurement returns a single measurement by ID.
func GetMeasurement(ctx context.Context, id string) (*Measurement, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	measurementID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	row := pool.QueryRow(ctx, `SELECT `+measurementColumns+` FROM measurements m WHERE m.id = $1`, measurementID)

	measurement, err := scanMeasurement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMeasurementNotFound
		}

		return nil, fmt.Errorf("failed to get measurement: %w", err)
	}

	return measurement, nil
}

// ListResidentMeasurements returns a resident's history, oldest visit first.
func ListResidentMeasurements(ctx context.Context, residentID string) ([]Measurement, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	parsedID, err := parseID(residentID)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + measurementColumns + `
		FROM measurements m
		WHERE m.resident_id = $1
		ORDER BY m.measured_on ASC, m.created_at ASC`

	rows, err := pool.Query(ctx, query, parsedID)
	if err != nil {
		return nil, fmt.Errorf("failed to list measurements: %w", err)
	}
	defer rows.Close()

	measurements := []Measurement{}

	for rows.Next() {
		measurement, err := scanMeasurement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan measurement: %w", err)
		}

		measurements = append(measurements, *measurement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating measurements: %w", err)
	}

	return measurements, nil
}

// DeleteMeasurement removes a measurement.
func DeleteMeasurement(ctx context.Context, id string) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	measurementID, err := parseID(id)
	if err != nil {
		return err
	}

	tag, err := pool.Exec(ctx, `DELETE FROM measurements WHERE id = $1`, measurementID)
	if err != nil {
		return fmt.Errorf("failed to delete measurement: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrMeasurementNotFound
	}

	logger.Info("Deleted measurement", "measurement_id", measurementID)

	return nil
}

// scanMeasurement scans measurementColumns followed by any extra destinations.
func scanMeasurement(row pgx.Row, extra ...any) (*Measurement, error) {
	var (
		m                 Measurement
		category          string
		severity          string
		nutritionalStatus *string
	)

	v := &m.Values
	dest := append([]any{
		&m.ID, &m.ResidentID, &category, &m.MeasuredOn, &m.AgeMonths,
		&v.WeightKg, &v.HeightCm, &v.MUACCm, &v.HeadCircumferenceCm, &v.Systolic, &v.Diastolic,
		&v.BloodGlucose, &v.Cholesterol, &v.Hemoglobin, &v.GestationalAgeWeeks,
		&severity, &nutritionalStatus, &m.Result.Conditions, &m.Result.Recommendation, &m.Notes, &m.CreatedAt,
	}, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	parsed, err := scoring.ParseSeverity(severity)
	if err != nil {
		return nil, fmt.Errorf("failed to parse severity: %w", err)
	}

	m.Category = scoring.Category(category)
	m.Result.Severity = parsed

	if nutritionalStatus != nil {
		m.Result.NutritionalStatus = *nutritionalStatus
	}

	return &m, nil
}
