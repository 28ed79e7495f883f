/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/template"

	"github.com/humaidq/posyandu/db"
	"github.com/humaidq/posyandu/export"
)

// Dashboard shows this month's status counts per category.
func Dashboard(c flamego.Context, t template.Template, data template.Data) {
	data["IsDashboard"] = true

	month, err := export.ParseMonth(c.Query("month"), time.Now())
	if err != nil {
		data["Error"] = err.Error()
		month, _ = export.ParseMonth("", time.Now())
	}

	summaries, err := db.SummarizePeriod(c.Request().Context(), month)
	if err != nil {
		logger.Error("Failed to summarize period", "month", month.Format("2006-01"), "error", err)
		data["Error"] = "Failed to load this month's summary"
	} else {
		data["Summaries"] = summaries
	}

	data["Month"] = month.Format("2006-01")
	data["MonthLabel"] = month.Format("January 2006")

	t.HTML(http.StatusOK, "home")
}
