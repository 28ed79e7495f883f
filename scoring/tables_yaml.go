/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package scoring

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type tableFile struct {
	Tables []tableFileEntry `yaml:"tables"`
}

type tableFileEntry struct {
	Indicator string         `yaml:"indicator"`
	Sex       string         `yaml:"sex"`
	Rows      []ReferenceRow `yaml:"rows"`
}

// LoadTableSet reads reference tables from YAML. Tables present in the
// document replace the built-in table for the same indicator and sex; the
// rest keep their defaults. Any invalid table fails the whole load.
func LoadTableSet(r io.Reader) (*TableSet, error) {
	var file tableFile

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode reference tables: %w", err)
	}

	set := DefaultTables()
	seen := make(map[tableKey]bool, len(file.Tables))

	for i, entry := range file.Tables {
		indicator, err := ParseIndicator(entry.Indicator)
		if err != nil {
			return nil, fmt.Errorf("table %d: %w", i, err)
		}

		sex, err := ParseSex(entry.Sex)
		if err != nil {
			return nil, fmt.Errorf("table %d: %w", i, err)
		}

		key := tableKey{indicator, sex}
		if seen[key] {
			return nil, &InvalidTableError{Table: tableName(indicator, sex), Row: -1, Reason: "defined more than once"}
		}

		seen[key] = true

		table, err := NewReferenceTable(tableName(indicator, sex), entry.Rows)
		if err != nil {
			return nil, err
		}

		set = set.with(indicator, sex, table)
	}

	return set, nil
}

// LoadTableSetFile is LoadTableSet over a file path.
func LoadTableSetFile(path string) (*TableSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference tables: %w", err)
	}
	defer f.Close()

	return LoadTableSet(f)
}
