/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package scoring

// Pregnancy conditions.
const (
	ConditionEnergyDeficiency = "chronic energy deficiency risk"
	ConditionSevereAnemia     = "severe anemia"
	ConditionAnemia           = "anemia"
)

const (
	recSupplementaryFeeding = "needs supplementary feeding for pregnant women immediately"
	recPreEclampsia         = "beware of pre-eclampsia, refer immediately"
	recTransfusion          = "refer to hospital for transfusion/treatment"
	recIronTablets          = "consume iron supplement tablets"
	recPregnancyHealthy     = "healthy pregnancy"
)

const (
	// Maternal MUAC below this marks chronic energy deficiency (KEK).
	muacEnergyDeficiencyCm = 23.5

	hemoglobinSevere = 8
	hemoglobinLow    = 11
)

// PregnantAnalyzer scores pregnant women. Gestational age, weight and
// height are recorded but not scored yet.
type PregnantAnalyzer struct{}

// Category implements Analyzer.
func (PregnantAnalyzer) Category() Category {
	return Pregnant
}

// Analyze implements Analyzer. The context is not consulted.
func (PregnantAnalyzer) Analyze(m Measurements, _ Context) Result {
	var r report

	if muac, ok := reading(m.MUACCm); ok && muac < muacEnergyDeficiencyCm {
		r.flag(Red, ConditionEnergyDeficiency, recSupplementaryFeeding)
	}

	checkBloodPressure(&r, m, recPreEclampsia)

	if hb, ok := reading(m.Hemoglobin); ok {
		switch {
		case hb < hemoglobinSevere:
			r.flag(Red, ConditionSevereAnemia, recTransfusion)
		case hb < hemoglobinLow:
			r.flag(Yellow, ConditionAnemia, recIronTablets)
		}
	}

	if !r.triggered() {
		r.advise(recPregnancyHealthy)
	}

	return r.result()
}
