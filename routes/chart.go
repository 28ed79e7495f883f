/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/humaidq/posyandu/db"
	"github.com/humaidq/posyandu/scoring"
)

// growthChartMonths is the last month shown on the weight-for-age chart.
const growthChartMonths = 60

// missingPoint leaves a gap in an echarts series.
const missingPoint = "-"

var growthBands = []struct {
	name   string
	column scoring.Column
	color  string
}{
	{"-3 SD", scoring.SevereLow, "rgba(220, 38, 38, 0.7)"},
	{"-2 SD", scoring.Low, "rgba(234, 179, 8, 0.8)"},
	{"+2 SD", scoring.High, "rgba(234, 179, 8, 0.8)"},
	{"+3 SD", scoring.SevereHigh, "rgba(220, 38, 38, 0.7)"},
}

// growthSeries returns the child's weight per month of age. When several
// visits fall in the same month the latest one wins.
func growthSeries(measurements []db.Measurement) []opts.LineData {
	points := make([]opts.LineData, growthChartMonths+1)
	for i := range points {
		points[i] = opts.LineData{Value: missingPoint}
	}

	for _, m := range measurements {
		if m.Values.WeightKg == nil || m.AgeMonths < 0 || m.AgeMonths > growthChartMonths {
			continue
		}

		points[m.AgeMonths] = opts.LineData{Value: *m.Values.WeightKg}
	}

	return points
}

// renderGrowthChart draws the weight-for-age reference bands of the
// resident's sex with the child's weights on top. It returns "" when no
// visit has a weight within the chart range.
func renderGrowthChart(tables *scoring.TableSet, resident *db.Resident, measurements []db.Measurement) (string, error) {
	child := growthSeries(measurements)

	plotted := false

	for _, p := range child {
		if p.Value != missingPoint {
			plotted = true
			break
		}
	}

	if !plotted {
		return "", nil
	}

	sex := resident.Sex
	if sex != scoring.Female {
		sex = scoring.Male
	}

	table, err := tables.Table(scoring.WeightForAge, sex)
	if err != nil {
		return "", fmt.Errorf("failed to load growth reference: %w", err)
	}

	xAxis := make([]string, 0, growthChartMonths+1)
	for month := 0; month <= growthChartMonths; month++ {
		xAxis = append(xAxis, strconv.Itoa(month))
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   "100%",
			Height:  "360px",
			ChartID: "growth_" + strings.ReplaceAll(resident.ID.String(), "-", ""),
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Weight for age",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "bottom",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "months",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "kg",
			Scale: opts.Bool(true),
		}),
	)

	line.SetXAxis(xAxis)

	for _, band := range growthBands {
		values := make([]opts.LineData, 0, growthChartMonths+1)
		for month := 0; month <= growthChartMonths; month++ {
			values = append(values, opts.LineData{Value: round2(table.Threshold(float64(month), band.column))})
		}

		line.AddSeries(band.name, values, charts.WithLineChartOpts(opts.LineChart{
			Smooth:     opts.Bool(true),
			ShowSymbol: opts.Bool(false),
		}), charts.WithLineStyleOpts(opts.LineStyle{
			Color: band.color,
			Type:  "dashed",
			Width: 1.5,
		}))
	}

	line.AddSeries(resident.Name, child, charts.WithLineChartOpts(opts.LineChart{
		ShowSymbol:   opts.Bool(true),
		ConnectNulls: opts.Bool(true),
	}), charts.WithLineStyleOpts(opts.LineStyle{
		Color: "rgba(37, 99, 235, 1)",
		Width: 2.5,
	}))

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
