/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/posyandu/db"
	"github.com/humaidq/posyandu/scoring"
	"github.com/humaidq/posyandu/utils"
)

// NewMeasurementForm renders the visit form for the resident's category.
func NewMeasurementForm(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	data["IsResidents"] = true
	id := c.Param("id")

	resident, err := db.GetResident(c.Request().Context(), id)
	if err != nil {
		SetErrorFlash(s, "Resident not found")
		c.Redirect("/residents", http.StatusSeeOther)
		return
	}

	data["Resident"] = resident
	data["Fields"] = measurementFields(resident.Category)
	data["Today"] = time.Now().Format(dateLayout)
	data["Breadcrumbs"] = []BreadcrumbItem{
		residentsBreadcrumb(false),
		residentBreadcrumb(id, resident.Name, false),
		{Name: "New visit", IsCurrent: true},
	}

	t.HTML(http.StatusOK, "measurement_new")
}

// CreateMeasurement scores a visit and stores it with its status.
func CreateMeasurement(c flamego.Context, s session.Session, engine *scoring.Engine) {
	ctx := c.Request().Context()
	id := c.Param("id")
	formURL := "/residents/" + id + "/measurements/new"

	resident, err := db.GetResident(ctx, id)
	if err != nil {
		SetErrorFlash(s, "Resident not found")
		c.Redirect("/residents", http.StatusSeeOther)
		return
	}

	input, err := parseMeasurementForm(c, resident)
	if err != nil {
		SetErrorFlash(s, err.Error())
		c.Redirect(formURL, http.StatusSeeOther)
		return
	}

	input.Result, err = engine.Analyze(resident.Category, input.Values, scoring.Context{
		AgeMonths: input.AgeMonths,
		Sex:       resident.Sex,
	})
	if err != nil {
		logger.Error("Failed to analyze measurement", "resident_id", id, "category", resident.Category, "error", err)
		SetErrorFlash(s, "Failed to analyze measurement")
		c.Redirect(formURL, http.StatusSeeOther)
		return
	}

	measurement, err := db.CreateMeasurement(ctx, input)
	if err != nil {
		logger.Error("Failed to store measurement", "resident_id", id, "error", err)
		SetErrorFlash(s, "Failed to save measurement")
		c.Redirect(formURL, http.StatusSeeOther)
		return
	}

	switch measurement.Result.Severity {
	case scoring.Red:
		SetWarningFlash(s, "Status RED: "+measurement.Result.Recommendation)
	case scoring.Yellow:
		SetWarningFlash(s, "Status YELLOW: "+measurement.Result.Recommendation)
	default:
		SetSuccessFlash(s, "Measurement saved, status GREEN")
	}

	c.Redirect("/residents/"+id, http.StatusSeeOther)
}

func parseMeasurementForm(c flamego.Context, resident *db.Resident) (db.CreateMeasurementInput, error) {
	if err := c.Request().ParseForm(); err != nil {
		return db.CreateMeasurementInput{}, fmt.Errorf("failed to parse form: %w", err)
	}

	form := c.Request().Form

	measuredOn, err := parseDate(form.Get("measured_on"), time.Now())
	if err != nil {
		return db.CreateMeasurementInput{}, fmt.Errorf("visit date: %w", err)
	}

	if measuredOn.Before(resident.DateOfBirth) {
		return db.CreateMeasurementInput{}, errBeforeBirth
	}

	values, err := parseMeasurementsForm(form, resident.Category)
	if err != nil {
		return db.CreateMeasurementInput{}, err
	}

	return db.CreateMeasurementInput{
		ResidentID: resident.ID.String(),
		MeasuredOn: measuredOn,
		AgeMonths:  utils.AgeInMonths(resident.DateOfBirth, measuredOn),
		Values:     values,
		Notes:      optionalString(form.Get("notes")),
	}, nil
}

// DeleteMeasurement removes one visit from a resident's history.
func DeleteMeasurement(c flamego.Context, s session.Session) {
	residentURL := "/residents/" + c.Param("id")
	measurementID := c.Param("measurement_id")

	if err := db.DeleteMeasurement(c.Request().Context(), measurementID); err != nil {
		if errors.Is(err, db.ErrMeasurementNotFound) || errors.Is(err, db.ErrInvalidID) {
			SetErrorFlash(s, "Measurement not found")
		} else {
			logger.Error("Failed to delete measurement", "measurement_id", measurementID, "error", err)
			SetErrorFlash(s, "Failed to delete measurement")
		}

		c.Redirect(residentURL, http.StatusSeeOther)
		return
	}

	SetSuccessFlash(s, "Measurement deleted")
	c.Redirect(residentURL, http.StatusSeeOther)
}
