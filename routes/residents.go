/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/base64"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"net/http"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/skip2/go-qrcode"

	"github.com/humaidq/posyandu/db"
	"github.com/humaidq/posyandu/scoring"
	"github.com/humaidq/posyandu/utils"
)

// ListResidents lists residents, optionally filtered by ?category=.
func ListResidents(c flamego.Context, t template.Template, data template.Data) {
	data["IsResidents"] = true
	data["Breadcrumbs"] = []BreadcrumbItem{residentsBreadcrumb(true)}
	data["Categories"] = scoring.Categories

	var category scoring.Category

	if raw := c.Query("category"); raw != "" {
		parsed, err := scoring.ParseCategory(raw)
		if err != nil {
			data["Error"] = "Unknown category " + raw
		} else {
			category = parsed
			data["Category"] = category
		}
	}

	residents, err := db.ListResidents(c.Request().Context(), category)
	if err != nil {
		logger.Error("Failed to list residents", "category", category, "error", err)
		data["Error"] = "Failed to load residents"
	} else {
		data["Residents"] = residents
	}

	t.HTML(http.StatusOK, "residents_list")
}

// NewResidentForm renders the registration form.
func NewResidentForm(t template.Template, data template.Data) {
	data["IsResidents"] = true
	data["Breadcrumbs"] = []BreadcrumbItem{
		residentsBreadcrumb(false),
		{Name: "Register", IsCurrent: true},
	}
	data["Categories"] = scoring.Categories
	data["Today"] = time.Now().Format(dateLayout)

	t.HTML(http.StatusOK, "resident_new")
}

// CreateResident registers a resident from the form.
func CreateResident(c flamego.Context, s session.Session) {
	input, err := parseResidentForm(c)
	if err != nil {
		SetErrorFlash(s, err.Error())
		c.Redirect("/residents/new", http.StatusSeeOther)
		return
	}

	resident, err := db.CreateResident(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateNIK) {
			SetErrorFlash(s, "A resident with this NIK is already registered")
		} else {
			logger.Error("Failed to create resident", "error", err)
			SetErrorFlash(s, "Failed to register resident")
		}

		c.Redirect("/residents/new", http.StatusSeeOther)
		return
	}

	SetSuccessFlash(s, resident.Name+" registered")
	c.Redirect("/residents/"+resident.ID.String(), http.StatusSeeOther)
}

func parseResidentForm(c flamego.Context) (db.CreateResidentInput, error) {
	if err := c.Request().ParseForm(); err != nil {
		return db.CreateResidentInput{}, fmt.Errorf("failed to parse form: %w", err)
	}

	form := c.Request().Form

	name, err := utils.NormalizeName(form.Get("name"))
	if err != nil {
		return db.CreateResidentInput{}, err
	}

	nik, err := utils.NormalizeNIK(form.Get("nik"))
	if err != nil {
		return db.CreateResidentInput{}, err
	}

	sex, err := scoring.ParseSex(form.Get("sex"))
	if err != nil {
		return db.CreateResidentInput{}, err
	}

	category, err := scoring.ParseCategory(form.Get("category"))
	if err != nil {
		return db.CreateResidentInput{}, err
	}

	dob, err := parseDate(form.Get("date_of_birth"), time.Now())
	if err != nil {
		return db.CreateResidentInput{}, fmt.Errorf("date of birth: %w", err)
	}

	return db.CreateResidentInput{
		NIK:          nik,
		Name:         name,
		Sex:          sex,
		DateOfBirth:  dob,
		Category:     category,
		Address:      optionalString(form.Get("address")),
		GuardianName: optionalString(form.Get("guardian_name")),
	}, nil
}

// ViewResident shows a resident card with its measurement history.
func ViewResident(c flamego.Context, s session.Session, engine *scoring.Engine, t template.Template, data template.Data) {
	data["IsResidents"] = true
	ctx := c.Request().Context()
	id := c.Param("id")

	resident, err := db.GetResident(ctx, id)
	if err != nil {
		if !errors.Is(err, db.ErrResidentNotFound) && !errors.Is(err, db.ErrInvalidID) {
			logger.Error("Failed to load resident", "resident_id", id, "error", err)
		}

		SetErrorFlash(s, "Resident not found")
		c.Redirect("/residents", http.StatusSeeOther)
		return
	}

	measurements, err := db.ListResidentMeasurements(ctx, id)
	if err != nil {
		logger.Error("Failed to load measurements", "resident_id", id, "error", err)
		data["Error"] = "Failed to load measurement history"
	}

	now := time.Now()
	data["Resident"] = resident
	data["Measurements"] = measurements
	data["Fields"] = measurementFields(resident.Category)
	data["AgeYears"] = utils.AgeInYears(resident.DateOfBirth, now)
	data["AgeMonths"] = utils.AgeInMonths(resident.DateOfBirth, now)
	data["Breadcrumbs"] = []BreadcrumbItem{
		residentsBreadcrumb(false),
		residentBreadcrumb(id, resident.Name, true),
	}

	if qr, err := generateQRCodeBase64(residentCardValue(resident)); err != nil {
		logger.Warn("Failed to generate resident QR code", "resident_id", id, "error", err)
	} else {
		data["QRCode"] = qr
	}

	if resident.Category == scoring.Infant && len(measurements) > 0 {
		chart, err := renderGrowthChart(engine.Tables(), resident, measurements)
		if err != nil {
			logger.Warn("Failed to render growth chart", "resident_id", id, "error", err)
		} else if chart != "" {
			data["GrowthChart"] = htmltemplate.HTML(chart) //nolint:gosec // rendered by go-echarts
		}
	}

	t.HTML(http.StatusOK, "resident_view")
}

// DeleteResident removes a resident and its history.
func DeleteResident(c flamego.Context, s session.Session) {
	id := c.Param("id")

	if err := db.DeleteResident(c.Request().Context(), id); err != nil {
		if errors.Is(err, db.ErrResidentNotFound) || errors.Is(err, db.ErrInvalidID) {
			SetErrorFlash(s, "Resident not found")
		} else {
			logger.Error("Failed to delete resident", "resident_id", id, "error", err)
			SetErrorFlash(s, "Failed to delete resident")
		}

		c.Redirect("/residents", http.StatusSeeOther)
		return
	}

	SetSuccessFlash(s, "Resident deleted")
	c.Redirect("/residents", http.StatusSeeOther)
}

// residentCardValue is the text encoded in a resident's QR card. Volunteers
// scan it to find the record at the next posyandu day.
func residentCardValue(resident *db.Resident) string {
	return "posyandu:resident:" + resident.ID.String()
}

func generateQRCodeBase64(value string) (string, error) {
	png, err := qrcode.Encode(value, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to generate qr code: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
