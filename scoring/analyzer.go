/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package scoring

import (
	"fmt"
	"sort"
	"strings"
)

// Category is a population group served by the posyandu.
type Category string

// Categories.
const (
	Infant   Category = "infant"
	Elderly  Category = "elderly"
	Pregnant Category = "pregnant"
)

// Categories lists the built-in categories.
var Categories = []Category{Infant, Elderly, Pregnant}

// ParseCategory accepts the English names and the Indonesian ones used by
// existing posyandu records (balita, lansia, ibu_hamil).
func ParseCategory(value string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "infant", "balita", "toddler":
		return Infant, nil
	case "elderly", "lansia":
		return Elderly, nil
	case "pregnant", "ibu_hamil", "ibu-hamil":
		return Pregnant, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, value)
	}
}

// Label returns a human readable category name.
func (c Category) Label() string {
	switch c {
	case Infant:
		return "Infant/toddler (0-5 years)"
	case Elderly:
		return "Elderly (60+ years)"
	case Pregnant:
		return "Pregnant woman"
	default:
		return string(c)
	}
}

// Measurements holds one visit's readings. Nil fields were not measured.
type Measurements struct {
	WeightKg            *float64 `json:"weight_kg,omitempty"`
	HeightCm            *float64 `json:"height_cm,omitempty"`
	MUACCm              *float64 `json:"muac_cm,omitempty"`
	HeadCircumferenceCm *float64 `json:"head_circumference_cm,omitempty"`
	Systolic            *float64 `json:"systolic,omitempty"`
	Diastolic           *float64 `json:"diastolic,omitempty"`
	BloodGlucose        *float64 `json:"blood_glucose,omitempty"`
	Cholesterol         *float64 `json:"cholesterol,omitempty"`
	Hemoglobin          *float64 `json:"hemoglobin,omitempty"`
	GestationalAgeWeeks *float64 `json:"gestational_age_weeks,omitempty"`
}

// reading returns a measurement value and whether it should be scored.
// Zero and negative readings are treated as not taken.
func reading(v *float64) (float64, bool) {
	if v == nil || *v <= 0 {
		return 0, false
	}

	return *v, true
}

// Context carries the demographic facts an analyzer may need.
type Context struct {
	AgeMonths int `json:"age_months"`
	Sex       Sex `json:"sex"`
}

// Analyzer scores the measurements of one category.
type Analyzer interface {
	Category() Category
	Analyze(m Measurements, ctx Context) Result
}

// Engine dispatches analyses to the analyzer registered for a category.
// Register analyzers before sharing the engine between goroutines.
type Engine struct {
	tables    *TableSet
	analyzers map[Category]Analyzer
}

// NewEngine returns an engine with the built-in analyzers using tables. A
// nil table set selects the defaults.
func NewEngine(tables *TableSet) *Engine {
	if tables == nil {
		tables = DefaultTables()
	}

	e := &Engine{
		tables:    tables,
		analyzers: make(map[Category]Analyzer),
	}
	e.Register(&InfantAnalyzer{Tables: tables})
	e.Register(ElderlyAnalyzer{})
	e.Register(PregnantAnalyzer{})

	return e
}

// Register adds or replaces the analyzer for its category.
func (e *Engine) Register(a Analyzer) {
	e.analyzers[a.Category()] = a
}

// Tables returns the reference tables the engine was built with.
func (e *Engine) Tables() *TableSet {
	return e.tables
}

// Categories returns the registered categories in name order.
func (e *Engine) Categories() []Category {
	out := make([]Category, 0, len(e.analyzers))
	for c := range e.analyzers {
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Analyze scores m with the analyzer registered for category.
func (e *Engine) Analyze(category Category, m Measurements, ctx Context) (Result, error) {
	a, ok := e.analyzers[category]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	return a.Analyze(m, ctx), nil
}

var defaultInfant = &InfantAnalyzer{Tables: defaultTables}

// AnalyzeInfant scores an infant or toddler against the built-in tables.
func AnalyzeInfant(m Measurements, ageMonths int, sex Sex) Result {
	return defaultInfant.Analyze(m, Context{AgeMonths: ageMonths, Sex: sex})
}

// AnalyzeElderly scores an elderly resident.
func AnalyzeElderly(m Measurements) Result {
	return ElderlyAnalyzer{}.Analyze(m, Context{})
}

// AnalyzePregnantWoman scores a pregnant woman.
func AnalyzePregnantWoman(m Measurements) Result {
	return PregnantAnalyzer{}.Analyze(m, Context{})
}
