/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package scoring

// Infant conditions.
const (
	ConditionSeverelyUnderweight = "severely underweight"
	ConditionUnderweight         = "underweight"
	ConditionOverweightRisk      = "at risk of overweight"
	ConditionSeverelyStunted     = "severely stunted"
	ConditionStunted             = "stunted"
	ConditionSeverelyWasted      = "severely wasted"
	ConditionWasted              = "wasted"
	ConditionObesity             = "obesity"
	ConditionOvernutrition       = "overnutrition"
	ConditionMUACRed             = "severe acute malnutrition (red band)"
	ConditionMUACYellow          = "moderate malnutrition (yellow band)"
)

// Nutritional status labels derived from weight-for-height.
const (
	NutritionSevereMalnutrition = "severe malnutrition"
	NutritionUndernutrition     = "undernutrition"
	NutritionGood               = "good nutrition"
	NutritionOvernutrition      = "overnutrition"
	NutritionObesity            = "obesity"
)

// NutritionalStatuses lists every nutritional status label.
var NutritionalStatuses = []string{
	NutritionSevereMalnutrition,
	NutritionUndernutrition,
	NutritionGood,
	NutritionOvernutrition,
	NutritionObesity,
}

const (
	recSevereMalnutrition = "urgent referral for severe malnutrition treatment"
	recUndernutrition     = "provide nutrient-dense supplementary food"
	recObesityChild       = "refer to nutrition specialist"
	recOvernutrition      = "evaluate sugar intake and physical activity"

	recInfantRed    = "seek professional health evaluation immediately"
	recInfantYellow = "monitor growth monthly at the health post"
	recInfantGreen  = "growth is healthy, maintain current care"

	recHealthyLifestyle = "maintain a healthy lifestyle"
)

const (
	// Age-based indicators only apply up to five years.
	maxGrowthAgeMonths = 60

	// MUAC screening window, inclusive.
	minMUACAgeMonths = 6
	maxMUACAgeMonths = 59

	muacRedCm    = 11.5
	muacYellowCm = 12.5
)

// InfantAnalyzer scores children under five against growth references.
type InfantAnalyzer struct {
	Tables *TableSet
}

// Category implements Analyzer.
func (a *InfantAnalyzer) Category() Category {
	return Infant
}

// Analyze implements Analyzer. A missing or unrecognised sex selects the
// male tables.
func (a *InfantAnalyzer) Analyze(m Measurements, ctx Context) Result {
	tables := a.Tables
	if tables == nil {
		tables = DefaultTables()
	}

	// An empty or unrecognised sex reads the male tables. Free-text values
	// such as "laki-laki" or "perempuan" must go through ParseSex first.
	sex := ctx.Sex
	if sex != Female {
		sex = Male
	}

	age := float64(ctx.AgeMonths)
	weight, hasWeight := reading(m.WeightKg)
	height, hasHeight := reading(m.HeightCm)

	var r report

	if hasWeight && ctx.AgeMonths <= maxGrowthAgeMonths {
		wfa := tables.mustTable(WeightForAge, sex)
		switch {
		case weight < wfa.Threshold(age, SevereLow):
			r.flag(Red, ConditionSeverelyUnderweight)
		case weight < wfa.Threshold(age, Low):
			r.flag(Yellow, ConditionUnderweight)
		case weight > wfa.Threshold(age, High):
			r.flag(Yellow, ConditionOverweightRisk)
		}
	}

	if hasHeight && ctx.AgeMonths <= maxGrowthAgeMonths {
		hfa := tables.mustTable(HeightForAge, sex)
		switch {
		case height < hfa.Threshold(age, SevereLow):
			r.flag(Red, ConditionSeverelyStunted)
		case height < hfa.Threshold(age, Low):
			r.flag(Yellow, ConditionStunted)
		}
	}

	nutrition := NutritionGood

	if hasWeight && hasHeight {
		wfh := tables.mustTable(WeightForHeight, sex)
		switch {
		case weight < wfh.Threshold(height, SevereLow):
			r.flag(Red, ConditionSeverelyWasted, recSevereMalnutrition)
			nutrition = NutritionSevereMalnutrition
		case weight < wfh.Threshold(height, Low):
			r.flag(Yellow, ConditionWasted, recUndernutrition)
			nutrition = NutritionUndernutrition
		case weight > wfh.Threshold(height, SevereHigh):
			r.flag(Red, ConditionObesity, recObesityChild)
			nutrition = NutritionObesity
		case weight > wfh.Threshold(height, High):
			r.flag(Yellow, ConditionOvernutrition, recOvernutrition)
			nutrition = NutritionOvernutrition
		}
	}

	if muac, ok := reading(m.MUACCm); ok && ctx.AgeMonths >= minMUACAgeMonths && ctx.AgeMonths <= maxMUACAgeMonths {
		switch {
		case muac < muacRedCm:
			r.flag(Red, ConditionMUACRed)
		case muac < muacYellowCm:
			r.flag(Yellow, ConditionMUACYellow)
		}
	}

	// Exactly one summary line, so an infant recommendation is never empty.
	switch r.severity {
	case Red:
		r.advise(recInfantRed)
	case Yellow:
		r.advise(recInfantYellow)
	default:
		r.advise(recInfantGreen)
	}

	result := r.resultOr(recHealthyLifestyle)
	result.NutritionalStatus = nutrition

	return result
}
