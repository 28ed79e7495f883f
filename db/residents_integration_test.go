// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/humaidq/posyandu/scoring"
)

func TestResidentLifecycle(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	address := "RT 02 / RW 05"
	created, err := CreateResident(ctx, CreateResidentInput{
		NIK:         "3201012345678901",
		Name:        "Budi Santoso",
		Sex:         scoring.Male,
		DateOfBirth: date(2022, time.June, 1),
		Category:    scoring.Infant,
		Address:     &address,
	})
	if err != nil {
		t.Fatalf("CreateResident failed: %v", err)
	}

	if created.ID == uuid.Nil {
		t.Fatalf("expected generated ID")
	}

	resident, err := GetResident(ctx, created.ID.String())
	if err != nil {
		t.Fatalf("GetResident failed: %v", err)
	}

	if resident.Name != "Budi Santoso" || resident.Sex != scoring.Male || resident.Category != scoring.Infant {
		t.Fatalf("unexpected resident %+v", resident)
	}

	if resident.Address == nil || *resident.Address != address || resident.GuardianName != nil {
		t.Fatalf("unexpected optional fields %+v", resident)
	}

	if !resident.DateOfBirth.Equal(date(2022, time.June, 1)) {
		t.Fatalf("unexpected date of birth %v", resident.DateOfBirth)
	}

	if err := DeleteResident(ctx, created.ID.String()); err != nil {
		t.Fatalf("DeleteResident failed: %v", err)
	}

	if _, err := GetResident(ctx, created.ID.String()); !errors.Is(err, ErrResidentNotFound) {
		t.Fatalf("expected ErrResidentNotFound, got %v", err)
	}

	if err := DeleteResident(ctx, created.ID.String()); !errors.Is(err, ErrResidentNotFound) {
		t.Fatalf("expected ErrResidentNotFound on second delete, got %v", err)
	}
}

func TestCreateResidentDuplicateNIK(t *testing.T) {
	resetDatabase(t)

	mustCreateResident(t, "3201012345678901", "Siti", scoring.Pregnant)

	_, err := CreateResident(testContext(), CreateResidentInput{
		NIK:         "3201012345678901",
		Name:        "Other",
		Sex:         scoring.Female,
		DateOfBirth: date(1990, time.March, 3),
		Category:    scoring.Pregnant,
	})
	if !errors.Is(err, ErrDuplicateNIK) {
		t.Fatalf("expected ErrDuplicateNIK, got %v", err)
	}
}

func TestGetResidentInvalidID(t *testing.T) {
	resetDatabase(t)

	if _, err := GetResident(testContext(), "not-a-uuid"); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestListResidentsFilterAndLatestSeverity(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	infant := mustCreateResident(t, "3201000000000001", "Ani", scoring.Infant)
	mustCreateResident(t, "3201000000000002", "Wati", scoring.Elderly)
	mustCreateResident(t, "3201000000000003", "Bayu", scoring.Infant)

	mustCreateMeasurement(t, infant.ID.String(), date(2024, time.January, 5), scoring.Red)
	mustCreateMeasurement(t, infant.ID.String(), date(2024, time.February, 5), scoring.Yellow)

	all, err := ListResidents(ctx, "")
	if err != nil {
		t.Fatalf("ListResidents failed: %v", err)
	}

	if len(all) != 3 {
		t.Fatalf("expected 3 residents, got %d", len(all))
	}

	infants, err := ListResidents(ctx, scoring.Infant)
	if err != nil {
		t.Fatalf("ListResidents failed: %v", err)
	}

	if len(infants) != 2 || infants[0].Name != "Ani" || infants[1].Name != "Bayu" {
		t.Fatalf("expected infants ordered by name, got %+v", infants)
	}

	ani := infants[0]
	if ani.MeasurementCount != 2 {
		t.Fatalf("expected 2 measurements, got %d", ani.MeasurementCount)
	}

	if ani.LatestSeverity == nil || *ani.LatestSeverity != scoring.Yellow {
		t.Fatalf("expected latest severity yellow, got %v", ani.LatestSeverity)
	}

	if ani.LastMeasuredOn == nil || !ani.LastMeasuredOn.Equal(date(2024, time.February, 5)) {
		t.Fatalf("unexpected last measured date %v", ani.LastMeasuredOn)
	}

	if infants[1].LatestSeverity != nil || infants[1].MeasurementCount != 0 {
		t.Fatalf("expected unmeasured resident, got %+v", infants[1])
	}
}
