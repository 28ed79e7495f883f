// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	htmltemplate "html/template"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/humaidq/posyandu/db"
	"github.com/humaidq/posyandu/scoring"
	"github.com/humaidq/posyandu/templates"
)

// parseTemplates names templates by file name without extension, the way
// the flamego templater does.
func parseTemplates(t *testing.T) *htmltemplate.Template {
	t.Helper()

	set := htmltemplate.New("")
	for _, funcs := range TemplateFuncs() {
		set = set.Funcs(funcs)
	}

	files, err := fs.Glob(templates.Templates, "*.html")
	if err != nil {
		t.Fatalf("failed to list templates: %v", err)
	}

	for _, file := range files {
		content, err := fs.ReadFile(templates.Templates, file)
		if err != nil {
			t.Fatalf("failed to read %s: %v", file, err)
		}

		if _, err := set.New(strings.TrimSuffix(file, ".html")).Parse(string(content)); err != nil {
			t.Fatalf("failed to parse %s: %v", file, err)
		}
	}

	return set
}

func render(t *testing.T, set *htmltemplate.Template, name string, data map[string]any) string {
	t.Helper()

	var out strings.Builder
	if err := set.ExecuteTemplate(&out, name, data); err != nil {
		t.Fatalf("failed to render %s: %v", name, err)
	}

	return out.String()
}

func sampleResident() *db.Resident {
	guardian := "Siti"

	return &db.Resident{
		ID:           uuid.MustParse("0b7b0f6e-8f8e-4d3c-9a51-3d7f3c1f0e11"),
		NIK:          "3201012345678901",
		Name:         "Budi Santoso",
		Sex:          scoring.Male,
		DateOfBirth:  time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC),
		Category:     scoring.Infant,
		GuardianName: &guardian,
	}
}

func sampleMeasurement(resident *db.Resident) db.Measurement {
	weight := 7.2

	return db.Measurement{
		ID:         uuid.MustParse("5d1c2b8e-71a4-4a44-9e57-2f3c5a9b7c21"),
		ResidentID: resident.ID,
		Category:   resident.Category,
		MeasuredOn: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		AgeMonths:  13,
		Values:     scoring.Measurements{WeightKg: &weight},
		Result: scoring.Result{
			Severity:          scoring.Red,
			Conditions:        []string{"Gizi buruk", "Stunting"},
			Recommendation:    "Rujuk ke puskesmas",
			NutritionalStatus: "Gizi buruk",
		},
	}
}

func TestTemplatesRender(t *testing.T) {
	t.Parallel()

	set := parseTemplates(t)
	resident := sampleResident()
	measurement := sampleMeasurement(resident)
	red := scoring.Red
	lastVisit := measurement.MeasuredOn

	t.Run("home", func(t *testing.T) {
		t.Parallel()

		out := render(t, set, "home", map[string]any{
			"SiteName":   "Posyandu Mawar",
			"Month":      "2024-03",
			"MonthLabel": "March 2024",
			"Summaries": []db.CategorySummary{
				{Category: scoring.Infant, Residents: 5, Measured: 3, Green: 1, Yellow: 1, Red: 1},
			},
		})

		if !strings.Contains(out, "Posyandu Mawar") || !strings.Contains(out, "2 still due") {
			t.Fatalf("unexpected dashboard output: %s", out)
		}
	})

	t.Run("residents list without filter", func(t *testing.T) {
		t.Parallel()

		out := render(t, set, "residents_list", map[string]any{
			"Categories": scoring.Categories,
			"Residents": []db.ResidentSummary{
				{Resident: *resident, MeasurementCount: 1, LastMeasuredOn: &lastVisit, LatestSeverity: &red},
				{Resident: *resident},
			},
		})

		if !strings.Contains(out, "badge-red") || !strings.Contains(out, "badge-none") {
			t.Fatalf("expected both status badges, got: %s", out)
		}
	})

	t.Run("resident view", func(t *testing.T) {
		t.Parallel()

		out := render(t, set, "resident_view", map[string]any{
			"Resident":     resident,
			"Measurements": []db.Measurement{measurement},
			"Fields":       measurementFields(resident.Category),
			"AgeYears":     1,
			"AgeMonths":    14,
			"csrf_token":   "token",
			"Flash":        FlashMessage{Type: FlashWarning, Message: "Needs follow-up"},
		})

		for _, want := range []string{"Budi Santoso", "7.2", "Gizi buruk, Stunting", "flash-warning", `value="token"`} {
			if !strings.Contains(out, want) {
				t.Fatalf("expected %q in output: %s", want, out)
			}
		}
	})

	t.Run("report", func(t *testing.T) {
		t.Parallel()

		out := render(t, set, "report", map[string]any{
			"Categories": scoring.Categories,
			"Category":   scoring.Infant,
			"Month":      "2024-03",
			"MonthLabel": "March 2024",
			"Fields":     measurementFields(scoring.Infant),
			"Counts":     map[scoring.Severity]int{scoring.Green: 0, scoring.Yellow: 0, scoring.Red: 1},
			"Rows": []db.MeasurementReportRow{
				{Measurement: measurement, NIK: resident.NIK, ResidentName: resident.Name, Sex: resident.Sex},
			},
		})

		if !strings.Contains(out, "/report/export?category=infant") {
			t.Fatalf("expected export link in output: %s", out)
		}
	})

	t.Run("forms", func(t *testing.T) {
		t.Parallel()

		render(t, set, "resident_new", map[string]any{
			"Categories": scoring.Categories,
			"Today":      "2024-03-05",
			"csrf_token": "token",
		})

		out := render(t, set, "measurement_new", map[string]any{
			"Resident":   resident,
			"Fields":     measurementFields(scoring.Infant),
			"Today":      "2024-03-05",
			"csrf_token": "token",
		})

		if !strings.Contains(out, `name="`+muacField.Name+`"`) {
			t.Fatalf("expected MUAC input in output: %s", out)
		}
	})
}
