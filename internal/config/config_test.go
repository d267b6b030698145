package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ougirez/tendermarkup/internal/domain"
	"github.com/spf13/viper"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	defer viper.Reset()

	path := writeFile(t, "config.yaml", `
database:
  url: postgres://markup@localhost:5432/markup
logging:
  level: debug
  format: console
backfill:
  concurrency: 4
  retry_interval: 200ms
`)
	t.Setenv("DATABASE_URL", "postgres://override@db:5432/markup")

	conf, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if conf.DatabaseURL != "postgres://override@db:5432/markup" {
		t.Errorf("expected env override, got %q", conf.DatabaseURL)
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("unexpected logging config %+v", conf.Logging)
	}
	if conf.Backfill.Concurrency != 4 || conf.Backfill.RetryInterval != 200*time.Millisecond {
		t.Errorf("unexpected backfill config %+v", conf.Backfill)
	}
	if conf.Backfill.MaxRetries != 5 {
		t.Errorf("expected default max retries 5, got %d", conf.Backfill.MaxRetries)
	}
}

func TestLoadMissingFile(t *testing.T) {
	defer viper.Reset()

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadScenario(t *testing.T) {
	path := writeFile(t, "scenario.yaml", `
baseCosts:
  works: 100000
  materials: 50000
parameters:
  works16Markup: 160
  profitOwnForces: 15
lineItems:
  - name: Кладка
    baseCost: 1000
  - name: Раствор
    itemType: material
    isAuxiliary: true
    baseCost: 250
`)

	scenario, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario() error = %v", err)
	}

	if scenario.BaseCosts != (domain.BaseCosts{Works: 100000, Materials: 50000}) {
		t.Errorf("unexpected base costs %+v", scenario.BaseCosts)
	}
	if p := scenario.Parameters.ProfitOwnForces; p == nil || *p != 15 {
		t.Errorf("expected profitOwnForces 15, got %v", p)
	}
	if scenario.Parameters.ContingencyCosts != nil {
		t.Errorf("absent parameter must stay nil, got %v", *scenario.Parameters.ContingencyCosts)
	}
	if len(scenario.LineItems) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(scenario.LineItems))
	}
	if scenario.LineItems[0].ItemType != domain.ItemTypeWork {
		t.Errorf("expected default item type work, got %q", scenario.LineItems[0].ItemType)
	}
	if !scenario.LineItems[1].IsAuxiliary || scenario.LineItems[1].ItemType != domain.ItemTypeMaterial {
		t.Errorf("unexpected second line item %+v", scenario.LineItems[1])
	}
}

func TestLoadScenarioUnknownItemType(t *testing.T) {
	path := writeFile(t, "scenario.yaml", `
lineItems:
  - name: Бетон
    itemType: concrete
    baseCost: 10
`)

	if _, err := LoadScenario(path); err == nil {
		t.Fatal("expected error for unknown item type")
	}
}
