/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/humaidq/posyandu/scoring"
)

// MonthBounds returns the first day of month's calendar month and the first
// day of the following month, both in UTC.
func MonthBounds(month time.Time) (time.Time, time.Time) {
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)

	return start, start.AddDate(0, 1, 0)
}

// ListMeasurementsForPeriod returns every measurement of a category taken in
// the given month, ordered by resident name then visit date.
func ListMeasurementsForPeriod(ctx context.Context, category scoring.Category, month time.Time) ([]MeasurementReportRow, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	start, end := MonthBounds(month)

	query := `SELECT ` + measurementColumns + `, r.nik, r.name, r.sex::text
		FROM measurements m
		JOIN residents r ON r.id = m.resident_id
		WHERE m.category::text = $1 AND m.measured_on >= $2 AND m.measured_on < $3
		ORDER BY r.name ASC, m.measured_on ASC, m.created_at ASC`

	rows, err := pool.Query(ctx, query, string(category), start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list period measurements: %w", err)
	}
	defer rows.Close()

	report := []MeasurementReportRow{}

	for rows.Next() {
		var (
			row MeasurementReportRow
			sex string
		)

		measurement, err := scanMeasurement(rows, &row.NIK, &row.ResidentName, &sex)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}

		row.Measurement = *measurement
		row.Sex = scoring.Sex(sex)
		report = append(report, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report rows: %w", err)
	}

	return report, nil
}

// SummarizePeriod counts, per category, the residents and the severity of
// each resident's latest measurement in the given month. Every built-in
// category is present in the result, in scoring.Categories order.
func SummarizePeriod(ctx context.Context, month time.Time) ([]CategorySummary, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	start, end := MonthBounds(month)

	query := `
		WITH latest AS (
			SELECT DISTINCT ON (m.resident_id) m.resident_id, m.severity
			FROM measurements m
			WHERE m.measured_on >= $1 AND m.measured_on < $2
			ORDER BY m.resident_id, m.measured_on DESC, m.created_at DESC
		)
		SELECT r.category::text,
			COUNT(*),
			COUNT(l.resident_id),
			COUNT(*) FILTER (WHERE l.severity = 'green'),
			COUNT(*) FILTER (WHERE l.severity = 'yellow'),
			COUNT(*) FILTER (WHERE l.severity = 'red')
		FROM residents r
		LEFT JOIN latest l ON l.resident_id = r.id
		GROUP BY r.category
	`

	rows, err := pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize period: %w", err)
	}
	defer rows.Close()

	counts := make(map[scoring.Category]CategorySummary, len(scoring.Categories))

	for rows.Next() {
		var (
			summary  CategorySummary
			category string
		)

		if err := rows.Scan(&category, &summary.Residents, &summary.Measured,
			&summary.Green, &summary.Yellow, &summary.Red); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}

		summary.Category = scoring.Category(category)
		counts[summary.Category] = summary
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating summary: %w", err)
	}

	summaries := make([]CategorySummary, 0, len(scoring.Categories))
	for _, category := range scoring.Categories {
		summary := counts[category]
		summary.Category = category
		summaries = append(summaries, summary)
	}

	return summaries, nil
}
