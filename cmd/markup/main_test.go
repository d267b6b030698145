package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ougirez/tendermarkup/internal/config"
)

const scenarioYAML = `
baseCosts:
  works: 100000
  materials: 50000
lineItems:
  - name: Кладка
    baseCost: 1000
  - name: Кирпич
    itemType: material
    baseCost: 1000
`

func writeScenario(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(scenarioYAML), 0644); err != nil {
		t.Fatalf("failed to write scenario: %v", err)
	}
	return path
}

func TestRunCalc(t *testing.T) {
	path := writeScenario(t)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := run(context.Background(), &config.Config{}, "calc", []string{"-input", path, "-format", "json"}, &buf); err != nil {
			t.Fatalf("run() error = %v", err)
		}
		output := buf.String()
		if !strings.Contains(output, `"totalCostWithProfit": 278765`) {
			t.Errorf("missing total in output:\n%s", output)
		}
		if !strings.Contains(output, `"name": "Кирпич"`) {
			t.Errorf("missing line item in output:\n%s", output)
		}
	})

	t.Run("pretty", func(t *testing.T) {
		var buf bytes.Buffer
		if err := run(context.Background(), &config.Config{}, "calc", []string{"-input", path}, &buf); err != nil {
			t.Fatalf("run() error = %v", err)
		}
		output := buf.String()
		if !strings.Contains(output, "278,765.00") || !strings.Contains(output, "Кладка") {
			t.Errorf("unexpected output:\n%s", output)
		}
	})
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		args []string
	}{
		{"unknown command", "publish", nil},
		{"calc without input", "calc", nil},
		{"invalid format", "calc", []string{"-input", "x.yaml", "-format", "csv"}},
		{"invalid tender id", "summary", []string{"-tender", "42"}},
		{"invalid template id", "apply-template", []string{"-tender", "6f1c3a34-3c0e-4c1e-9d7a-5b1f2b0f8e11", "-template", "x"}},
		{"database not configured", "backfill", []string{"-tender", "6f1c3a34-3c0e-4c1e-9d7a-5b1f2b0f8e11"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := run(context.Background(), &config.Config{}, tt.cmd, tt.args, &buf); err == nil {
				t.Fatalf("expected error for %s %v", tt.cmd, tt.args)
			}
		})
	}
}
