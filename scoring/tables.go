/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package scoring

// Built-in growth references: a reduced set of WHO child growth standard
// breakpoints as used by Indonesian posyandu cards. Replace them with a
// complete table through LoadTableSet.

// Weight-for-age (kg) by age in months, 0-60.
var weightForAgeBoys = []ReferenceRow{
	{X: 0, SevereLow: 2.1, Low: 2.5, High: 4.4, SevereHigh: 5.0},
	{X: 6, SevereLow: 5.7, Low: 6.4, High: 9.8, SevereHigh: 10.9},
	{X: 12, SevereLow: 7.4, Low: 8.6, High: 11.8, SevereHigh: 12.9},
	{X: 24, SevereLow: 9.7, Low: 10.6, High: 14.8, SevereHigh: 16.2},
	{X: 36, SevereLow: 11.3, Low: 12.7, High: 17.4, SevereHigh: 19.3},
	{X: 48, SevereLow: 12.7, Low: 14.3, High: 20.1, SevereHigh: 22.6},
	{X: 60, SevereLow: 14.1, Low: 16.1, High: 22.7, SevereHigh: 25.8},
}

var weightForAgeGirls = []ReferenceRow{
	{X: 0, SevereLow: 2.0, Low: 2.4, High: 4.2, SevereHigh: 4.8},
	{X: 6, SevereLow: 5.1, Low: 5.7, High: 9.3, SevereHigh: 10.4},
	{X: 12, SevereLow: 6.8, Low: 7.9, High: 11.5, SevereHigh: 12.9},
	{X: 24, SevereLow: 9.0, Low: 10.2, High: 13.9, SevereHigh: 15.5},
	{X: 36, SevereLow: 10.8, Low: 12.2, High: 16.9, SevereHigh: 19.0},
	{X: 48, SevereLow: 12.3, Low: 13.9, High: 19.9, SevereHigh: 22.5},
	{X: 60, SevereLow: 13.7, Low: 15.8, High: 22.9, SevereHigh: 26.2},
}

// Height-for-age (cm) by age in months, 0-60.
var heightForAgeBoys = []ReferenceRow{
	{X: 0, SevereLow: 44.2, Low: 46.1, High: 53.7, SevereHigh: 55.6},
	{X: 6, SevereLow: 61.2, Low: 63.3, High: 71.9, SevereHigh: 74.0},
	{X: 12, SevereLow: 68.6, Low: 71.0, High: 80.5, SevereHigh: 82.9},
	{X: 24, SevereLow: 78.0, Low: 81.0, High: 93.2, SevereHigh: 96.3},
	{X: 36, SevereLow: 85.0, Low: 88.7, High: 103.5, SevereHigh: 107.2},
	{X: 60, SevereLow: 96.1, Low: 99.9, High: 119.2, SevereHigh: 124.0},
}

var heightForAgeGirls = []ReferenceRow{
	{X: 0, SevereLow: 43.6, Low: 45.4, High: 52.9, SevereHigh: 54.7},
	{X: 6, SevereLow: 58.9, Low: 61.2, High: 70.3, SevereHigh: 72.5},
	{X: 12, SevereLow: 66.3, Low: 68.9, High: 79.2, SevereHigh: 81.7},
	{X: 24, SevereLow: 76.0, Low: 79.3, High: 92.5, SevereHigh: 95.8},
	{X: 36, SevereLow: 83.6, Low: 87.4, High: 102.6, SevereHigh: 106.4},
	{X: 60, SevereLow: 95.2, Low: 98.6, High: 118.7, SevereHigh: 123.7},
}

// Weight-for-height (kg) by length/height in cm, 45-120.
var weightForHeightBoys = []ReferenceRow{
	{X: 45, SevereLow: 1.9, Low: 2.0, High: 3.0, SevereHigh: 3.3},
	{X: 55, SevereLow: 3.4, Low: 3.8, High: 5.5, SevereHigh: 6.1},
	{X: 65, SevereLow: 5.5, Low: 6.1, High: 8.6, SevereHigh: 9.3},
	{X: 75, SevereLow: 7.4, Low: 8.1, High: 11.1, SevereHigh: 11.9},
	{X: 85, SevereLow: 9.1, Low: 10.0, High: 13.6, SevereHigh: 14.6},
	{X: 95, SevereLow: 10.9, Low: 12.1, High: 16.8, SevereHigh: 18.1},
	{X: 105, SevereLow: 12.9, Low: 14.4, High: 20.5, SevereHigh: 22.3},
	{X: 115, SevereLow: 15.3, Low: 17.2, High: 24.9, SevereHigh: 27.3},
	{X: 120, SevereLow: 16.6, Low: 18.7, High: 27.4, SevereHigh: 30.2},
}

var weightForHeightGirls = []ReferenceRow{
	{X: 45, SevereLow: 1.9, Low: 2.0, High: 3.0, SevereHigh: 3.3},
	{X: 55, SevereLow: 3.2, Low: 3.6, High: 5.4, SevereHigh: 6.0},
	{X: 65, SevereLow: 5.2, Low: 5.8, High: 8.3, SevereHigh: 9.0},
	{X: 75, SevereLow: 7.0, Low: 7.8, High: 10.8, SevereHigh: 11.6},
	{X: 85, SevereLow: 8.8, Low: 9.8, High: 13.5, SevereHigh: 14.6},
	{X: 95, SevereLow: 10.6, Low: 11.9, High: 16.8, SevereHigh: 18.4},
	{X: 105, SevereLow: 12.7, Low: 14.3, High: 20.8, SevereHigh: 23.0},
	{X: 115, SevereLow: 15.1, Low: 17.2, High: 25.6, SevereHigh: 28.4},
	{X: 120, SevereLow: 16.4, Low: 18.8, High: 28.2, SevereHigh: 31.5},
}

var defaultTables = mustBuildDefaultTables()

// DefaultTables returns the built-in reference tables.
func DefaultTables() *TableSet {
	return defaultTables
}

func mustBuildDefaultTables() *TableSet {
	sources := map[tableKey][]ReferenceRow{
		{WeightForAge, Male}:      weightForAgeBoys,
		{WeightForAge, Female}:    weightForAgeGirls,
		{HeightForAge, Male}:      heightForAgeBoys,
		{HeightForAge, Female}:    heightForAgeGirls,
		{WeightForHeight, Male}:   weightForHeightBoys,
		{WeightForHeight, Female}: weightForHeightGirls,
	}

	set := &TableSet{tables: make(map[tableKey]*ReferenceTable, len(sources))}

	for key, rows := range sources {
		table, err := NewReferenceTable(tableName(key.indicator, key.sex), rows)
		if err != nil {
			panic(err)
		}

		set.tables[key] = table
	}

	return set
}
