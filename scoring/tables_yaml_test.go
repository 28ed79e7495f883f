// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package scoring

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const girlsWeightForAgeYAML = `
tables:
  - indicator: weight-for-age
    sex: female
    rows:
      - {x: 0, sd3n: 2.0, sd2n: 2.4, sd2p: 4.2, sd3p: 4.8}
      - {x: 1, sd3n: 2.7, sd2n: 3.2, sd2p: 5.5, sd3p: 6.2}
      - {x: 60, sd3n: 13.7, sd2n: 15.8, sd2p: 22.9, sd3p: 26.2}
`

func TestLoadTableSetOverridesNamedTables(t *testing.T) {
	t.Parallel()

	set, err := LoadTableSet(strings.NewReader(girlsWeightForAgeYAML))
	if err != nil {
		t.Fatalf("LoadTableSet failed: %v", err)
	}

	girls, err := set.Table(WeightForAge, Female)
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}

	if len(girls.Rows()) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(girls.Rows()))
	}

	assertFloatClose(t, girls.Threshold(1, Low), 3.2)

	boys, err := set.Table(WeightForAge, Male)
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}

	if boys != DefaultTables().mustTable(WeightForAge, Male) {
		t.Fatalf("expected untouched tables to stay the defaults")
	}

	if len(DefaultTables().mustTable(WeightForAge, Female).Rows()) != 7 {
		t.Fatalf("loading must not modify the default table set")
	}
}

func TestLoadTableSetEmptyDocument(t *testing.T) {
	t.Parallel()

	set, err := LoadTableSet(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadTableSet failed: %v", err)
	}

	for _, indicator := range Indicators {
		if _, err := set.Table(indicator, Male); err != nil {
			t.Fatalf("expected default %s table: %v", indicator, err)
		}
	}
}

func TestLoadTableSetRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name: "single row",
			doc: `
tables:
  - indicator: height-for-age
    sex: male
    rows:
      - {x: 0, sd3n: 44.2, sd2n: 46.1, sd2p: 53.7, sd3p: 55.6}
`,
			wantErr: ErrInvalidTable,
		},
		{
			name: "non increasing x",
			doc: `
tables:
  - indicator: weight-for-height
    sex: female
    rows:
      - {x: 50, sd3n: 1, sd2n: 2, sd2p: 3, sd3p: 4}
      - {x: 50, sd3n: 1, sd2n: 2, sd2p: 3, sd3p: 4}
`,
			wantErr: ErrInvalidTable,
		},
		{
			name: "duplicate table",
			doc: `
tables:
  - indicator: weight-for-age
    sex: male
    rows: [{x: 0, sd3n: 1, sd2n: 2, sd2p: 3, sd3p: 4}, {x: 1, sd3n: 1, sd2n: 2, sd2p: 3, sd3p: 4}]
  - indicator: weight-for-age
    sex: L
    rows: [{x: 0, sd3n: 1, sd2n: 2, sd2p: 3, sd3p: 4}, {x: 1, sd3n: 1, sd2n: 2, sd2p: 3, sd3p: 4}]
`,
			wantErr: ErrInvalidTable,
		},
		{
			name: "unknown indicator",
			doc: `
tables:
  - indicator: bmi-for-age
    sex: male
    rows: []
`,
			wantErr: ErrUnknownIndicator,
		},
		{
			name: "unknown sex",
			doc: `
tables:
  - indicator: weight-for-age
    sex: other
    rows: []
`,
			wantErr: ErrUnknownSex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := LoadTableSet(strings.NewReader(tt.doc)); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		doc := "tables:\n  - indicator: weight-for-age\n    sex: male\n    median: 1\n"
		if _, err := LoadTableSet(strings.NewReader(doc)); err == nil {
			t.Fatalf("expected unknown field to be rejected")
		}
	})
}

func TestLoadTableSetFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tables.yaml")
	if err := os.WriteFile(path, []byte(girlsWeightForAgeYAML), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := LoadTableSetFile(path); err != nil {
		t.Fatalf("LoadTableSetFile failed: %v", err)
	}

	if _, err := LoadTableSetFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected missing file error")
	}
}
