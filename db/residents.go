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

const residentColumns = `r.id, r.nik, r.name, r.sex::text, r.date_of_birth, r.category::text,
	r.address, r.guardian_name, r.created_at, r.updated_at`

// CreateResident registers a resident and returns it.
func CreateResident(ctx context.Context, input CreateResidentInput) (*Resident, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		WITH r AS (
			INSERT INTO residents (nik, name, sex, date_of_birth, category, address, guardian_name)
			VALUES ($1, $2, $3::resident_sex, $4, $5::resident_category, $6, $7)
			RETURNING *
		)
		SELECT ` + residentColumns + ` FROM r
	`

	row := pool.QueryRow(ctx, query,
		input.NIK, input.Name, string(input.Sex), input.DateOfBirth, string(input.Category),
		input.Address, input.GuardianName,
	)

	resident, err := scanResident(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateNIK
		}

		return nil, fmt.Errorf("failed to create resident: %w", err)
	}

	logger.Info("Registered resident", "resident_id", resident.ID, "category", resident.Category)

	return resident, nil
}

// GetResident returns a single resident by ID.
func GetResident(ctx context.Context, id string) (*Resident, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	residentID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	row := pool.QueryRow(ctx, `SELECT `+residentColumns+` FROM residents r WHERE r.id = $1`, residentID)

	resident, err := scanResident(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrResidentNotFound
		}

		return nil, fmt.Errorf("failed to get resident: %w", err)
	}

	return resident, nil
}

// ListResidents returns residents ordered by name, each with the status of
// its latest measurement. An empty category lists everyone.
func ListResidents(ctx context.Context, category scoring.Category) ([]ResidentSummary, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT ` + residentColumns + `,
			(SELECT COUNT(*) FROM measurements m WHERE m.resident_id = r.id),
			latest.measured_on,
			latest.severity::text
		FROM residents r
		LEFT JOIN LATERAL (
			SELECT m.measured_on, m.severity
			FROM measurements m
			WHERE m.resident_id = r.id
			ORDER BY m.measured_on DESC, m.created_at DESC
			LIMIT 1
		) latest ON TRUE
		WHERE $1 = '' OR r.category::text = $1
		ORDER BY r.name ASC, r.nik ASC
	`

	rows, err := pool.Query(ctx, query, string(category))
	if err != nil {
		return nil, fmt.Errorf("failed to list residents: %w", err)
	}
	defer rows.Close()

	residents := []ResidentSummary{}

	for rows.Next() {
		var (
			summary  ResidentSummary
			severity *string
		)

		resident, err := scanResident(rows, &summary.MeasurementCount, &summary.LastMeasuredOn, &severity)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resident: %w", err)
		}

		summary.Resident = *resident

		if severity != nil {
			parsed, err := scoring.ParseSeverity(*severity)
			if err != nil {
				return nil, fmt.Errorf("failed to parse severity: %w", err)
			}

			summary.LatestSeverity = &parsed
		}

		residents = append(residents, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating residents: %w", err)
	}

	return residents, nil
}

// DeleteResident removes a resident and all of its measurements.
func DeleteResident(ctx context.Context, id string) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	residentID, err := parseID(id)
	if err != nil {
		return err
	}

	tag, err := pool.Exec(ctx, `DELETE FROM residents WHERE id = $1`, residentID)
	if err != nil {
		return fmt.Errorf("failed to delete resident: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrResidentNotFound
	}

	logger.Info("Deleted resident", "resident_id", residentID)

	return nil
}

// scanResident scans residentColumns followed by any extra destinations.
func scanResident(row pgx.Row, extra ...any) (*Resident, error) {
	var (
		resident Resident
		sex      string
		category string
	)

	dest := append([]any{
		&resident.ID, &resident.NIK, &resident.Name, &sex, &resident.DateOfBirth, &category,
		&resident.Address, &resident.GuardianName, &resident.CreatedAt, &resident.UpdatedAt,
	}, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	resident.Sex = scoring.Sex(sex)
	resident.Category = scoring.Category(category)

	return &resident, nil
}
