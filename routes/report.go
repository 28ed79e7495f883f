/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/posyandu/db"
	"github.com/humaidq/posyandu/export"
	"github.com/humaidq/posyandu/scoring"
)

type reportQuery struct {
	category scoring.Category
	month    time.Time
}

func parseReportQuery(c flamego.Context) (reportQuery, error) {
	category := scoring.Infant

	if raw := c.Query("category"); raw != "" {
		parsed, err := scoring.ParseCategory(raw)
		if err != nil {
			return reportQuery{}, err
		}

		category = parsed
	}

	month, err := export.ParseMonth(c.Query("month"), time.Now())
	if err != nil {
		return reportQuery{}, err
	}

	return reportQuery{category: category, month: month}, nil
}

// Report shows a category's measurements for one month.
func Report(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	data["IsReport"] = true
	data["Categories"] = scoring.Categories

	query, err := parseReportQuery(c)
	if err != nil {
		SetErrorFlash(s, err.Error())
		c.Redirect("/report", http.StatusSeeOther)
		return
	}

	rows, err := db.ListMeasurementsForPeriod(c.Request().Context(), query.category, query.month)
	if err != nil {
		logger.Error("Failed to load report", "category", query.category, "error", err)
		data["Error"] = "Failed to load report"
	}

	counts := map[scoring.Severity]int{}
	for _, row := range rows {
		counts[row.Result.Severity]++
	}

	data["Rows"] = rows
	data["Counts"] = counts
	data["Fields"] = measurementFields(query.category)
	data["Category"] = query.category
	data["Month"] = query.month.Format("2006-01")
	data["MonthLabel"] = query.month.Format("January 2006")

	t.HTML(http.StatusOK, "report")
}

// ExportReport downloads a category's monthly report as CSV.
func ExportReport(c flamego.Context, s session.Session) {
	query, err := parseReportQuery(c)
	if err != nil {
		SetErrorFlash(s, err.Error())
		c.Redirect("/report", http.StatusSeeOther)
		return
	}

	rows, err := db.ListMeasurementsForPeriod(c.Request().Context(), query.category, query.month)
	if err != nil {
		logger.Error("Failed to load report for export", "category", query.category, "error", err)
		SetErrorFlash(s, "Failed to export report")
		c.Redirect("/report", http.StatusSeeOther)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, query.category, rows); err != nil {
		logger.Error("Failed to write report csv", "error", err)
		SetErrorFlash(s, "Failed to export report")
		c.Redirect("/report", http.StatusSeeOther)
		return
	}

	header := c.ResponseWriter().Header()
	header.Set("Content-Type", "text/csv; charset=utf-8")
	header.Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"`, export.FileName(query.category, query.month)))

	c.ResponseWriter().WriteHeader(http.StatusOK)

	if _, err := c.ResponseWriter().Write(buf.Bytes()); err != nil {
		logger.Warn("Failed to write report response", "error", err)
	}
}
