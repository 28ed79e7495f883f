/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package scoring

// Elderly conditions. ConditionUnderweight and ConditionObesity are shared
// with the infant analyzer.
const (
	ConditionOverweight            = "overweight"
	ConditionHypertension          = "hypertension"
	ConditionHypotension           = "hypotension"
	ConditionDiabetes              = "diabetes"
	ConditionPreDiabetes           = "pre-diabetes"
	ConditionHypoglycemia          = "hypoglycemia"
	ConditionHighCholesterol       = "high cholesterol"
	ConditionBorderlineCholesterol = "borderline-high cholesterol"
)

const (
	recImproveNutrition  = "improve nutritional intake"
	recLowCalorieDiet    = "low-calorie diet & light exercise"
	recControlBP         = "routine blood-pressure control, take medication regularly"
	recReferPhysician    = "refer to physician"
	recTreatHypoglycemia = "treat low blood sugar immediately"
	recElderlyHealthy    = "healthy"
)

// Kemenkes adult BMI cut-offs.
const (
	bmiUnderweight = 18.5
	bmiOverweight  = 25
	bmiObese       = 27
)

// Blood pressure cut-offs in mmHg, shared with the pregnancy analyzer.
const (
	systolicHigh  = 140
	diastolicHigh = 90
	systolicLow   = 90
	diastolicLow  = 60
)

// Random blood glucose (mg/dL) and total cholesterol (mg/dL) cut-offs.
const (
	glucoseDiabetes    = 200
	glucosePreDiabetes = 140
	glucoseLow         = 70

	cholesterolHigh       = 240
	cholesterolBorderline = 200
)

// ElderlyAnalyzer scores residents aged 60 and over with fixed clinical
// cut-offs.
type ElderlyAnalyzer struct{}

// Category implements Analyzer.
func (ElderlyAnalyzer) Category() Category {
	return Elderly
}

// Analyze implements Analyzer. The context is not consulted.
func (ElderlyAnalyzer) Analyze(m Measurements, _ Context) Result {
	var r report

	weight, hasWeight := reading(m.WeightKg)
	height, hasHeight := reading(m.HeightCm)

	if hasWeight && hasHeight {
		bmi := BMI(weight, height)
		switch {
		case bmi < bmiUnderweight:
			r.flag(Yellow, ConditionUnderweight, recImproveNutrition)
		case bmi > bmiObese:
			r.flag(Red, ConditionObesity, recLowCalorieDiet)
		case bmi > bmiOverweight:
			r.flag(Yellow, ConditionOverweight)
		}
	}

	checkBloodPressure(&r, m, recControlBP)

	if glucose, ok := reading(m.BloodGlucose); ok {
		switch {
		case glucose >= glucoseDiabetes:
			r.flag(Red, ConditionDiabetes, recReferPhysician)
		case glucose >= glucosePreDiabetes:
			r.flag(Yellow, ConditionPreDiabetes)
		case glucose < glucoseLow:
			r.flag(Red, ConditionHypoglycemia, recTreatHypoglycemia)
		}
	}

	if cholesterol, ok := reading(m.Cholesterol); ok {
		switch {
		case cholesterol >= cholesterolHigh:
			r.flag(Red, ConditionHighCholesterol)
		case cholesterol >= cholesterolBorderline:
			r.flag(Yellow, ConditionBorderlineCholesterol)
		}
	}

	if !r.triggered() {
		r.advise(recElderlyHealthy)
	}

	return r.result()
}

// checkBloodPressure scores a systolic/diastolic pair. Both readings are
// required; hypertension carries the category-specific recommendation.
func checkBloodPressure(r *report, m Measurements, hypertensionAdvice string) {
	systolic, okSys := reading(m.Systolic)
	diastolic, okDia := reading(m.Diastolic)

	if !okSys || !okDia {
		return
	}

	switch {
	case systolic >= systolicHigh || diastolic >= diastolicHigh:
		r.flag(Red, ConditionHypertension, hypertensionAdvice)
	case systolic < systolicLow || diastolic < diastolicLow:
		r.flag(Yellow, ConditionHypotension)
	}
}

// BMI returns weight / height² with height in centimetres, or 0 when the
// height is not positive.
func BMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}

	meters := heightCm / 100

	return weightKg / (meters * meters)
}
