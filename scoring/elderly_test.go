// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package scoring

import "testing"

func TestAnalyzeElderly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		m              Measurements
		severity       Severity
		conditions     []string
		recommendation string
	}{
		{
			name:           "obesity and hypertension",
			m:              Measurements{WeightKg: ptr(80), HeightCm: ptr(160), Systolic: ptr(150), Diastolic: ptr(95)},
			severity:       Red,
			conditions:     []string{ConditionObesity, ConditionHypertension},
			recommendation: "low-calorie diet & light exercise. routine blood-pressure control, take medication regularly",
		},
		{
			name:           "nothing measured",
			severity:       Green,
			recommendation: "healthy",
		},
		{
			name:           "underweight",
			m:              Measurements{WeightKg: ptr(40), HeightCm: ptr(160)},
			severity:       Yellow,
			conditions:     []string{ConditionUnderweight},
			recommendation: "improve nutritional intake",
		},
		{
			// Overweight carries no advice of its own and a condition was
			// found, so the recommendation stays empty.
			name:       "overweight",
			m:          Measurements{WeightKg: ptr(66), HeightCm: ptr(160)},
			severity:   Yellow,
			conditions: []string{ConditionOverweight},
		},
		{
			name:           "bmi 27 is overweight not obese",
			m:              Measurements{WeightKg: ptr(27), HeightCm: ptr(100)},
			severity:       Yellow,
			conditions:     []string{ConditionOverweight},
			recommendation: "",
		},
		{
			name:           "normal bmi",
			m:              Measurements{WeightKg: ptr(60), HeightCm: ptr(165)},
			severity:       Green,
			recommendation: "healthy",
		},
		{
			name:           "hypertension on systolic boundary",
			m:              Measurements{Systolic: ptr(140), Diastolic: ptr(80)},
			severity:       Red,
			conditions:     []string{ConditionHypertension},
			recommendation: "routine blood-pressure control, take medication regularly",
		},
		{
			name:       "hypotension",
			m:          Measurements{Systolic: ptr(85), Diastolic: ptr(70)},
			severity:   Yellow,
			conditions: []string{ConditionHypotension},
		},
		{
			name:           "blood pressure needs both readings",
			m:              Measurements{Systolic: ptr(190)},
			severity:       Green,
			recommendation: "healthy",
		},
		{
			name:           "diabetes",
			m:              Measurements{BloodGlucose: ptr(250)},
			severity:       Red,
			conditions:     []string{ConditionDiabetes},
			recommendation: "refer to physician",
		},
		{
			name:       "pre-diabetes",
			m:          Measurements{BloodGlucose: ptr(140)},
			severity:   Yellow,
			conditions: []string{ConditionPreDiabetes},
		},
		{
			name:           "hypoglycemia",
			m:              Measurements{BloodGlucose: ptr(60)},
			severity:       Red,
			conditions:     []string{ConditionHypoglycemia},
			recommendation: "treat low blood sugar immediately",
		},
		{
			name:           "normal glucose",
			m:              Measurements{BloodGlucose: ptr(100)},
			severity:       Green,
			recommendation: "healthy",
		},
		{
			name:       "high cholesterol",
			m:          Measurements{Cholesterol: ptr(240)},
			severity:   Red,
			conditions: []string{ConditionHighCholesterol},
		},
		{
			name:       "borderline cholesterol",
			m:          Measurements{Cholesterol: ptr(220)},
			severity:   Yellow,
			conditions: []string{ConditionBorderlineCholesterol},
		},
		{
			name: "everything at once",
			m: Measurements{
				WeightKg: ptr(40), HeightCm: ptr(160),
				Systolic: ptr(85), Diastolic: ptr(55),
				BloodGlucose: ptr(210), Cholesterol: ptr(205),
			},
			severity:       Red,
			conditions:     []string{ConditionUnderweight, ConditionHypotension, ConditionDiabetes, ConditionBorderlineCholesterol},
			recommendation: "improve nutritional intake. refer to physician",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assertResult(t, AnalyzeElderly(tt.m), tt.severity, tt.conditions, tt.recommendation)
		})
	}
}

func TestElderlyHasNoNutritionalStatus(t *testing.T) {
	t.Parallel()

	if got := AnalyzeElderly(Measurements{WeightKg: ptr(80), HeightCm: ptr(160)}); got.NutritionalStatus != "" {
		t.Fatalf("expected no nutritional status, got %q", got.NutritionalStatus)
	}
}

func TestBMI(t *testing.T) {
	t.Parallel()

	assertFloatClose(t, BMI(80, 160), 31.25)
	assertFloatClose(t, BMI(80, 0), 0)
	assertFloatClose(t, BMI(80, -10), 0)
}
