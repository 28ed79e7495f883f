/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package scoring

import (
	"fmt"
	"strings"
)

// Sex selects the sex-specific growth reference.
type Sex string

// Sex values.
const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ParseSex accepts English and Indonesian spellings (laki-laki, perempuan, L, P).
func ParseSex(value string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "male", "m", "laki-laki", "laki", "l":
		return Male, nil
	case "female", "f", "perempuan", "p":
		return Female, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSex, value)
	}
}

// Indicator is a child growth indicator backed by a reference table.
type Indicator string

// Growth indicators. Weight-for-age and height-for-age tables are indexed by
// age in months, weight-for-height by height in centimetres.
const (
	WeightForAge    Indicator = "weight-for-age"
	HeightForAge    Indicator = "height-for-age"
	WeightForHeight Indicator = "weight-for-height"
)

// Indicators lists every supported growth indicator.
var Indicators = []Indicator{WeightForAge, HeightForAge, WeightForHeight}

// ParseIndicator parses an indicator name.
func ParseIndicator(value string) (Indicator, error) {
	switch Indicator(strings.ToLower(strings.TrimSpace(value))) {
	case WeightForAge:
		return WeightForAge, nil
	case HeightForAge:
		return HeightForAge, nil
	case WeightForHeight:
		return WeightForHeight, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownIndicator, value)
	}
}

// Column selects one of the four standard-deviation thresholds of a row.
type Column int

// Threshold columns.
const (
	SevereLow  Column = iota // -3 SD
	Low                      // -2 SD
	High                     // +2 SD
	SevereHigh               // +3 SD
)

func (c Column) String() string {
	switch c {
	case SevereLow:
		return "sd3n"
	case Low:
		return "sd2n"
	case High:
		return "sd2p"
	case SevereHigh:
		return "sd3p"
	default:
		return fmt.Sprintf("column(%d)", int(c))
	}
}

// ReferenceRow holds the thresholds at one age (months) or height (cm).
type ReferenceRow struct {
	X          float64 `yaml:"x"`
	SevereLow  float64 `yaml:"sd3n"`
	Low        float64 `yaml:"sd2n"`
	High       float64 `yaml:"sd2p"`
	SevereHigh float64 `yaml:"sd3p"`
}

// Value returns the threshold stored in the given column.
func (r ReferenceRow) Value(col Column) float64 {
	switch col {
	case SevereLow:
		return r.SevereLow
	case Low:
		return r.Low
	case High:
		return r.High
	default:
		return r.SevereHigh
	}
}

// ReferenceTable is an immutable breakpoint table for one indicator and sex.
type ReferenceTable struct {
	name string
	rows []ReferenceRow
}

// NewReferenceTable validates rows and returns a table that owns a copy of
// them. It returns an *InvalidTableError when the table has fewer than two
// rows, X is not strictly increasing, a threshold is negative, or a row's
// thresholds are out of order.
func NewReferenceTable(name string, rows []ReferenceRow) (*ReferenceTable, error) {
	if len(rows) < 2 {
		return nil, &InvalidTableError{Table: name, Row: -1, Reason: fmt.Sprintf("need at least 2 rows, got %d", len(rows))}
	}

	for i, row := range rows {
		if i > 0 && row.X <= rows[i-1].X {
			return nil, &InvalidTableError{Table: name, Row: i, Reason: fmt.Sprintf("x %.2f is not greater than previous x %.2f", row.X, rows[i-1].X)}
		}

		if row.SevereLow < 0 || row.Low < 0 || row.High < 0 || row.SevereHigh < 0 {
			return nil, &InvalidTableError{Table: name, Row: i, Reason: "negative threshold"}
		}

		if row.SevereLow > row.Low || row.Low > row.High || row.High > row.SevereHigh {
			return nil, &InvalidTableError{Table: name, Row: i, Reason: "thresholds must satisfy sd3n <= sd2n <= sd2p <= sd3p"}
		}
	}

	owned := make([]ReferenceRow, len(rows))
	copy(owned, rows)

	return &ReferenceTable{name: name, rows: owned}, nil
}

// Name returns the table's descriptive name.
func (t *ReferenceTable) Name() string {
	return t.name
}

// Rows returns a copy of the table rows.
func (t *ReferenceTable) Rows() []ReferenceRow {
	rows := make([]ReferenceRow, len(t.rows))
	copy(rows, t.rows)

	return rows
}

// Threshold returns the column value at x, linearly interpolated between the
// two rows bracketing x. Inputs outside the table take the value of the
// nearest boundary row; there is no extrapolation.
func (t *ReferenceTable) Threshold(x float64, col Column) float64 {
	first, last := t.rows[0], t.rows[len(t.rows)-1]
	if x <= first.X {
		return first.Value(col)
	}

	if x >= last.X {
		return last.Value(col)
	}

	for i := 0; i < len(t.rows)-1; i++ {
		lo, hi := t.rows[i], t.rows[i+1]
		if x >= lo.X && x <= hi.X {
			return interpolate(x, lo.X, lo.Value(col), hi.X, hi.Value(col))
		}
	}

	// Unreachable for a validated table.
	return last.Value(col)
}

func interpolate(x, x1, y1, x2, y2 float64) float64 {
	return y1 + (x-x1)*(y2-y1)/(x2-x1)
}

type tableKey struct {
	indicator Indicator
	sex       Sex
}

// TableSet is the collection of growth reference tables consulted by the
// infant analyzer. It is read-only once built.
type TableSet struct {
	tables map[tableKey]*ReferenceTable
}

// Table returns the table for an indicator and sex.
func (s *TableSet) Table(indicator Indicator, sex Sex) (*ReferenceTable, error) {
	table, ok := s.tables[tableKey{indicator, sex}]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrTableNotFound, indicator, sex)
	}

	return table, nil
}

func (s *TableSet) mustTable(indicator Indicator, sex Sex) *ReferenceTable {
	table, err := s.Table(indicator, sex)
	if err != nil {
		panic(err)
	}

	return table
}

// with returns a copy of the set with one table replaced.
func (s *TableSet) with(indicator Indicator, sex Sex, table *ReferenceTable) *TableSet {
	tables := make(map[tableKey]*ReferenceTable, len(s.tables)+1)
	for k, v := range s.tables {
		tables[k] = v
	}

	tables[tableKey{indicator, sex}] = table

	return &TableSet{tables: tables}
}

func tableName(indicator Indicator, sex Sex) string {
	return string(indicator) + "/" + string(sex)
}
