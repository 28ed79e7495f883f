/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/posyandu/scoring"
	"github.com/humaidq/posyandu/utils"
)

// measurementFlag binds a CLI flag to a measurement field.
type measurementFlag struct {
	name  string
	usage string
	field func(*scoring.Measurements) **float64
}

var measurementFlags = []measurementFlag{
	{"weight", "body weight in kg", func(m *scoring.Measurements) **float64 { return &m.WeightKg }},
	{"height", "body length or height in cm", func(m *scoring.Measurements) **float64 { return &m.HeightCm }},
	{"muac", "mid-upper arm circumference in cm", func(m *scoring.Measurements) **float64 { return &m.MUACCm }},
	{"head-circumference", "head circumference in cm", func(m *scoring.Measurements) **float64 { return &m.HeadCircumferenceCm }},
	{"systolic", "systolic blood pressure in mmHg", func(m *scoring.Measurements) **float64 { return &m.Systolic }},
	{"diastolic", "diastolic blood pressure in mmHg", func(m *scoring.Measurements) **float64 { return &m.Diastolic }},
	{"blood-glucose", "random blood glucose in mg/dL", func(m *scoring.Measurements) **float64 { return &m.BloodGlucose }},
	{"cholesterol", "total cholesterol in mg/dL", func(m *scoring.Measurements) **float64 { return &m.Cholesterol }},
	{"hemoglobin", "hemoglobin in g/dL", func(m *scoring.Measurements) **float64 { return &m.Hemoglobin }},
	{"gestational-age", "gestational age in weeks", func(m *scoring.Measurements) **float64 { return &m.GestationalAgeWeeks }},
}

// CmdAnalyze scores one set of measurements without touching the database.
var CmdAnalyze = newAnalyzeCommand()

func newAnalyzeCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.IntFlag{
			Name:  "age-months",
			Usage: "age in completed months (infants)",
		},
		&cli.StringFlag{
			Name:  "sex",
			Value: string(scoring.Male),
			Usage: "male or female (infants)",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "print the result as JSON",
		},
		referenceTablesFlag(),
	}

	for _, mf := range measurementFlags {
		flags = append(flags, &cli.FloatFlag{Name: mf.name, Usage: mf.usage})
	}

	return &cli.Command{
		Name:      "analyze",
		Usage:     "Score measurements for a category",
		ArgsUsage: "<infant|elderly|pregnant>",
		Flags:     flags,
		Action:    analyze,
	}
}

func analyze(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return errCategoryRequired
	}

	category, err := scoring.ParseCategory(cmd.Args().First())
	if err != nil {
		return err
	}

	sex, err := scoring.ParseSex(cmd.String("sex"))
	if err != nil {
		return err
	}

	m, err := measurementsFromFlags(cmd)
	if err != nil {
		return err
	}

	engine, err := loadEngine(cmd.String("reference-tables"))
	if err != nil {
		return err
	}

	ageMonths := int(cmd.Int("age-months"))
	if ageMonths < 0 {
		ageMonths = 0
	}

	result, err := engine.Analyze(category, m, scoring.Context{AgeMonths: ageMonths, Sex: sex})
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return writeAnalysisJSON(cmd.Root().Writer, category, result)
	}

	return writeAnalysisTable(cmd.Root().Writer, category, m, result)
}

func measurementsFromFlags(cmd *cli.Command) (scoring.Measurements, error) {
	var m scoring.Measurements

	taken := 0

	for _, mf := range measurementFlags {
		if !cmd.IsSet(mf.name) {
			continue
		}

		value, err := utils.ParseMeasurement(fmt.Sprint(cmd.Float(mf.name)))
		if err != nil {
			return m, fmt.Errorf("invalid --%s: %w", mf.name, err)
		}

		*mf.field(&m) = value
		taken++
	}

	if taken == 0 {
		return m, errNoMeasurementFlags
	}

	return m, nil
}

func writeAnalysisJSON(w io.Writer, category scoring.Category, result scoring.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	payload := struct {
		Category scoring.Category `json:"category"`
		scoring.Result
	}{category, result}

	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	return nil
}

func writeAnalysisTable(w io.Writer, category scoring.Category, m scoring.Measurements, result scoring.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Category\t%s\n", category.Label())

	for _, mf := range measurementFlags {
		if value := *mf.field(&m); value != nil {
			fmt.Fprintf(tw, "%s\t%s\n", mf.name, utils.FormatMeasurement(value))
		}
	}

	fmt.Fprintf(tw, "Status\t%s\n", strings.ToUpper(result.Severity.String()))

	if result.NutritionalStatus != "" {
		fmt.Fprintf(tw, "Nutritional status\t%s\n", result.NutritionalStatus)
	}

	conditions := "-"
	if len(result.Conditions) > 0 {
		conditions = strings.Join(result.Conditions, "; ")
	}

	fmt.Fprintf(tw, "Conditions\t%s\n", conditions)

	if result.Recommendation != "" {
		fmt.Fprintf(tw, "Recommendation\t%s\n", result.Recommendation)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}
