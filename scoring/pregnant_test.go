// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package scoring

import "testing"

func TestAnalyzePregnantWoman(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		m              Measurements
		severity       Severity
		conditions     []string
		recommendation string
	}{
		{
			name:           "mild anemia",
			m:              Measurements{MUACCm: ptr(25), Systolic: ptr(110), Diastolic: ptr(70), Hemoglobin: ptr(10.5)},
			severity:       Yellow,
			conditions:     []string{ConditionAnemia},
			recommendation: "consume iron supplement tablets",
		},
		{
			name:           "chronic energy deficiency",
			m:              Measurements{MUACCm: ptr(22)},
			severity:       Red,
			conditions:     []string{ConditionEnergyDeficiency},
			recommendation: "needs supplementary feeding for pregnant women immediately",
		},
		{
			name:           "muac on cut-off is fine",
			m:              Measurements{MUACCm: ptr(23.5)},
			severity:       Green,
			recommendation: "healthy pregnancy",
		},
		{
			name:           "pre-eclampsia risk",
			m:              Measurements{Systolic: ptr(145), Diastolic: ptr(95)},
			severity:       Red,
			conditions:     []string{ConditionHypertension},
			recommendation: "beware of pre-eclampsia, refer immediately",
		},
		{
			name:       "hypotension",
			m:          Measurements{Systolic: ptr(100), Diastolic: ptr(55)},
			severity:   Yellow,
			conditions: []string{ConditionHypotension},
		},
		{
			name:           "severe anemia",
			m:              Measurements{Hemoglobin: ptr(7.5)},
			severity:       Red,
			conditions:     []string{ConditionSevereAnemia},
			recommendation: "refer to hospital for transfusion/treatment",
		},
		{
			name:           "unscored readings only",
			m:              Measurements{GestationalAgeWeeks: ptr(20), WeightKg: ptr(30), HeightCm: ptr(140)},
			severity:       Green,
			recommendation: "healthy pregnancy",
		},
		{
			name:           "red from several rules",
			m:              Measurements{MUACCm: ptr(21), Systolic: ptr(150), Diastolic: ptr(85), Hemoglobin: ptr(9)},
			severity:       Red,
			conditions:     []string{ConditionEnergyDeficiency, ConditionHypertension, ConditionAnemia},
			recommendation: "needs supplementary feeding for pregnant women immediately. beware of pre-eclampsia, refer immediately. consume iron supplement tablets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assertResult(t, AnalyzePregnantWoman(tt.m), tt.severity, tt.conditions, tt.recommendation)
		})
	}
}
