// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/humaidq/posyandu/db"
	"github.com/humaidq/posyandu/scoring"
)

func TestGrowthSeries(t *testing.T) {
	t.Parallel()

	points := growthSeries([]db.Measurement{
		{AgeMonths: 3, Values: scoring.Measurements{WeightKg: floatPtr(6.1)}},
		{AgeMonths: 3, Values: scoring.Measurements{WeightKg: floatPtr(6.4)}},
		{AgeMonths: 5, Values: scoring.Measurements{HeightCm: floatPtr(64)}},
		{AgeMonths: 72, Values: scoring.Measurements{WeightKg: floatPtr(19)}},
	})

	if len(points) != growthChartMonths+1 {
		t.Fatalf("expected %d points, got %d", growthChartMonths+1, len(points))
	}

	if points[3].Value != 6.4 {
		t.Fatalf("expected the latest weight of month 3, got %v", points[3].Value)
	}

	if points[5].Value != missingPoint || points[0].Value != missingPoint {
		t.Fatalf("expected gaps where no weight was taken")
	}
}

func TestRenderGrowthChart(t *testing.T) {
	t.Parallel()

	resident := &db.Resident{
		ID:          uuid.New(),
		Name:        "Ani",
		Sex:         scoring.Female,
		DateOfBirth: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	html, err := renderGrowthChart(scoring.DefaultTables(), resident, []db.Measurement{
		{AgeMonths: 12, Values: scoring.Measurements{WeightKg: floatPtr(8.9)}},
	})
	if err != nil {
		t.Fatalf("renderGrowthChart failed: %v", err)
	}

	for _, want := range []string{"Weight for age", "-2 SD", "Ani"} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected chart to contain %q", want)
		}
	}

	empty, err := renderGrowthChart(scoring.DefaultTables(), resident, []db.Measurement{
		{AgeMonths: 12, Values: scoring.Measurements{HeightCm: floatPtr(74)}},
	})
	if err != nil || empty != "" {
		t.Fatalf("expected no chart without weights, got %q, %v", empty, err)
	}
}

func TestRound2(t *testing.T) {
	t.Parallel()

	if got := round2(8.5549); got != 8.55 {
		t.Fatalf("expected 8.55, got %v", got)
	}

	if got := round2(13.3); got != 13.3 {
		t.Fatalf("expected 13.3, got %v", got)
	}
}
