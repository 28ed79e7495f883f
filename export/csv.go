/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/humaidq/posyandu/db"
	"github.com/humaidq/posyandu/scoring"
)

// ConditionSeparator joins the conditions of one measurement in a cell.
const ConditionSeparator = "; "

const monthLayout = "2006-01"

type valueColumn struct {
	header string
	value  func(scoring.Measurements) *float64
}

var (
	weightColumn    = valueColumn{"weight_kg", func(m scoring.Measurements) *float64 { return m.WeightKg }}
	heightColumn    = valueColumn{"height_cm", func(m scoring.Measurements) *float64 { return m.HeightCm }}
	muacColumn      = valueColumn{"muac_cm", func(m scoring.Measurements) *float64 { return m.MUACCm }}
	headColumn      = valueColumn{"head_circumference_cm", func(m scoring.Measurements) *float64 { return m.HeadCircumferenceCm }}
	systolicColumn  = valueColumn{"systolic", func(m scoring.Measurements) *float64 { return m.Systolic }}
	diastolicColumn = valueColumn{"diastolic", func(m scoring.Measurements) *float64 { return m.Diastolic }}
	glucoseColumn   = valueColumn{"blood_glucose", func(m scoring.Measurements) *float64 { return m.BloodGlucose }}
	cholColumn      = valueColumn{"cholesterol", func(m scoring.Measurements) *float64 { return m.Cholesterol }}
	hbColumn        = valueColumn{"hemoglobin", func(m scoring.Measurements) *float64 { return m.Hemoglobin }}
	gestationColumn = valueColumn{"gestational_age_weeks", func(m scoring.Measurements) *float64 { return m.GestationalAgeWeeks }}
)

// valueColumns returns the measurement columns recorded for a category.
func valueColumns(category scoring.Category) []valueColumn {
	switch category {
	case scoring.Infant:
		return []valueColumn{weightColumn, heightColumn, muacColumn, headColumn}
	case scoring.Elderly:
		return []valueColumn{weightColumn, heightColumn, systolicColumn, diastolicColumn, glucoseColumn, cholColumn}
	case scoring.Pregnant:
		return []valueColumn{weightColumn, heightColumn, muacColumn, systolicColumn, diastolicColumn, hbColumn, gestationColumn}
	default:
		return []valueColumn{
			weightColumn, heightColumn, muacColumn, headColumn, systolicColumn, diastolicColumn,
			glucoseColumn, cholColumn, hbColumn, gestationColumn,
		}
	}
}

// Header returns the CSV header for a category's report.
func Header(category scoring.Category) []string {
	header := []string{"name", "nik", "sex", "measured_on", "age_months"}
	for _, col := range valueColumns(category) {
		header = append(header, col.header)
	}

	header = append(header, "status", "conditions", "recommendation")
	if category == scoring.Infant {
		header = append(header, "nutritional_status")
	}

	return append(header, "notes")
}

// WriteCSV writes a monthly report for one category. The NIK is prefixed
// with an apostrophe so spreadsheets keep it as text.
func WriteCSV(w io.Writer, category scoring.Category, rows []db.MeasurementReportRow) error {
	writer := csv.NewWriter(w)
	columns := valueColumns(category)

	if err := writer.Write(Header(category)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.ResidentName,
			"'" + row.NIK,
			string(row.Sex),
			row.MeasuredOn.Format(time.DateOnly),
			strconv.Itoa(row.AgeMonths),
		}

		for _, col := range columns {
			record = append(record, formatValue(col.value(row.Values)))
		}

		record = append(record,
			row.Result.Severity.String(),
			strings.Join(row.Result.Conditions, ConditionSeparator),
			row.Result.Recommendation,
		)

		if category == scoring.Infant {
			record = append(record, row.Result.NutritionalStatus)
		}

		notes := ""
		if row.Notes != nil {
			notes = *row.Notes
		}

		if err := writer.Write(append(record, notes)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	return nil
}

// FileName returns the download name of a monthly report.
func FileName(category scoring.Category, month time.Time) string {
	return fmt.Sprintf("laporan_%s_%s.csv", category, month.Format(monthLayout))
}

// ObjectKey returns the archive key of a monthly report.
func ObjectKey(category scoring.Category, month time.Time) string {
	return fmt.Sprintf("reports/%s/%s", month.Format(monthLayout), FileName(category, month))
}

// ParseMonth parses a YYYY-MM month. An empty value means the current month.
func ParseMonth(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}

	month, err := time.Parse(monthLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", value, err)
	}

	return month, nil
}

func formatValue(v *float64) string {
	if v == nil {
		return ""
	}

	return strconv.FormatFloat(*v, 'f', -1, 64)
}
