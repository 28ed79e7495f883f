/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"fmt"
	htmltemplate "html/template"
	"net/url"
	"strings"
	"time"

	"github.com/humaidq/posyandu/scoring"
	"github.com/humaidq/posyandu/utils"
)

const dateLayout = time.DateOnly

// BreadcrumbItem is one entry of the page breadcrumb.
type BreadcrumbItem struct {
	Name      string
	URL       string
	IsCurrent bool
}

func residentsBreadcrumb(isCurrent bool) BreadcrumbItem {
	return BreadcrumbItem{Name: "Residents", URL: "/residents", IsCurrent: isCurrent}
}

func residentBreadcrumb(id, name string, isCurrent bool) BreadcrumbItem {
	return BreadcrumbItem{Name: name, URL: "/residents/" + id, IsCurrent: isCurrent}
}

// MeasurementField describes one measurement input of the visit form.
type MeasurementField struct {
	Name  string
	Label string
	Unit  string
	Step  string
	ref   func(*scoring.Measurements) **float64
}

var (
	weightField = MeasurementField{"weight_kg", "Weight", "kg", "0.01",
		func(m *scoring.Measurements) **float64 { return &m.WeightKg }}
	heightField = MeasurementField{"height_cm", "Height / length", "cm", "0.1",
		func(m *scoring.Measurements) **float64 { return &m.HeightCm }}
	muacField = MeasurementField{"muac_cm", "Mid-upper arm circumference", "cm", "0.1",
		func(m *scoring.Measurements) **float64 { return &m.MUACCm }}
	headField = MeasurementField{"head_circumference_cm", "Head circumference", "cm", "0.1",
		func(m *scoring.Measurements) **float64 { return &m.HeadCircumferenceCm }}
	systolicField = MeasurementField{"systolic", "Systolic pressure", "mmHg", "1",
		func(m *scoring.Measurements) **float64 { return &m.Systolic }}
	diastolicField = MeasurementField{"diastolic", "Diastolic pressure", "mmHg", "1",
		func(m *scoring.Measurements) **float64 { return &m.Diastolic }}
	glucoseField = MeasurementField{"blood_glucose", "Blood glucose", "mg/dL", "1",
		func(m *scoring.Measurements) **float64 { return &m.BloodGlucose }}
	cholesterolField = MeasurementField{"cholesterol", "Total cholesterol", "mg/dL", "1",
		func(m *scoring.Measurements) **float64 { return &m.Cholesterol }}
	hemoglobinField = MeasurementField{"hemoglobin", "Hemoglobin", "g/dL", "0.1",
		func(m *scoring.Measurements) **float64 { return &m.Hemoglobin }}
	gestationField = MeasurementField{"gestational_age_weeks", "Gestational age", "weeks", "1",
		func(m *scoring.Measurements) **float64 { return &m.GestationalAgeWeeks }}
)

// measurementFields returns the inputs of the visit form of a category.
func measurementFields(category scoring.Category) []MeasurementField {
	switch category {
	case scoring.Infant:
		return []MeasurementField{weightField, heightField, muacField, headField}
	case scoring.Elderly:
		return []MeasurementField{weightField, heightField, systolicField, diastolicField, glucoseField, cholesterolField}
	case scoring.Pregnant:
		return []MeasurementField{
			weightField, heightField, muacField, systolicField, diastolicField, hemoglobinField, gestationField,
		}
	default:
		return nil
	}
}

// parseMeasurementsForm reads the category's measurement inputs. At least
// one value must be present.
func parseMeasurementsForm(form url.Values, category scoring.Category) (scoring.Measurements, error) {
	var m scoring.Measurements

	taken := 0

	for _, field := range measurementFields(category) {
		value, err := utils.ParseMeasurement(form.Get(field.Name))
		if err != nil {
			return scoring.Measurements{}, fmt.Errorf("%s: %w", field.Label, err)
		}

		if value != nil {
			taken++
		}

		*field.ref(&m) = value
	}

	if taken == 0 {
		return scoring.Measurements{}, errNoMeasurements
	}

	return m, nil
}

// parseDate parses a YYYY-MM-DD form value that must not lie after today.
func parseDate(value string, today time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errMissingDate
	}

	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errInvalidDate
	}

	if parsed.After(today) {
		return time.Time{}, errDateInFuture
	}

	return parsed, nil
}

func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	return &value
}

// severityClass maps a severity to its badge CSS class.
func severityClass(s scoring.Severity) string {
	return "badge-" + s.String()
}

// TemplateFuncs returns the helpers available to every template.
func TemplateFuncs() []htmltemplate.FuncMap {
	return []htmltemplate.FuncMap{{
		"formatMeasurement": utils.FormatMeasurement,
		"formatDate": func(t time.Time) string {
			return t.Format("2 Jan 2006")
		},
		"severityClass": severityClass,
		"severityPtrClass": func(s *scoring.Severity) string {
			if s == nil {
				return "badge-none"
			}

			return severityClass(*s)
		},
		"fieldValue": func(m scoring.Measurements, field MeasurementField) string {
			return utils.FormatMeasurement(*field.ref(&m))
		},
		"joinConditions": func(conditions []string) string {
			return strings.Join(conditions, ", ")
		},
	}}
}
