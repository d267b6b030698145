// Package config loads service settings and calculation scenarios with viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ougirez/tendermarkup/internal/domain"
	"github.com/ougirez/tendermarkup/internal/pkg/constants"
	"github.com/ougirez/tendermarkup/internal/pkg/logger"
	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL string
	Logging     logger.Config
	Backfill    BackfillConfig
}

type BackfillConfig struct {
	Concurrency   int
	MaxRetries    uint64
	RetryInterval time.Duration
}

// Load читает config.yaml в глобальный viper. Переменные окружения перекрывают файл
// (database.url -> DATABASE_URL). Отсутствие файла по умолчанию не ошибка.
func Load(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(constants.ViperLogLevelKey, "info")
	viper.SetDefault(constants.ViperLogFormatKey, "json")
	viper.SetDefault(constants.ViperBackfillConcurrencyKey, constants.DefaultBackfillConcurrency)
	viper.SetDefault(constants.ViperBackfillMaxRetriesKey, constants.DefaultBackfillMaxRetries)
	viper.SetDefault(constants.ViperBackfillRetryKey, constants.DefaultBackfillRetryInterval)

	if err := viper.ReadInConfig(); err != nil {
		if !(path == constants.DefaultConfigFile && errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("viper.ReadInConfig: %w", err)
		}
	}

	return &Config{
		DatabaseURL: viper.GetString(constants.ViperDatabaseURLKey),
		Logging: logger.Config{
			Level:      viper.GetString(constants.ViperLogLevelKey),
			Format:     viper.GetString(constants.ViperLogFormatKey),
			OutputFile: viper.GetString(constants.ViperLogOutputFileKey),
		},
		Backfill: BackfillConfig{
			Concurrency:   viper.GetInt(constants.ViperBackfillConcurrencyKey),
			MaxRetries:    viper.GetUint64(constants.ViperBackfillMaxRetriesKey),
			RetryInterval: viper.GetDuration(constants.ViperBackfillRetryKey),
		},
	}, nil
}

// ScenarioLineItem is a single BOQ line priced by `markup calc`.
type ScenarioLineItem struct {
	Name        string          `mapstructure:"name"`
	ItemType    domain.ItemType `mapstructure:"itemType"`
	IsAuxiliary bool            `mapstructure:"isAuxiliary"`
	BaseCost    float64         `mapstructure:"baseCost"`
}

func (i ScenarioLineItem) Role() domain.LineItemRole {
	return domain.LineItemRole{ItemType: i.ItemType, IsAuxiliary: i.IsAuxiliary}
}

// Scenario: входные данные офлайн-расчёта без базы.
type Scenario struct {
	BaseCosts  domain.BaseCosts        `mapstructure:"baseCosts"`
	Parameters domain.MarkupParameters `mapstructure:"parameters"`
	LineItems  []ScenarioLineItem      `mapstructure:"lineItems"`
}

// LoadScenario reads a calculation scenario file. It uses its own viper instance so
// scenario keys never mix with service settings.
func LoadScenario(path string) (*Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading scenario file, %w", err)
	}

	var scenario Scenario
	if err := v.Unmarshal(&scenario); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	for i, item := range scenario.LineItems {
		if item.ItemType == "" {
			scenario.LineItems[i].ItemType = domain.ItemTypeWork
		} else if !item.ItemType.Valid() {
			return nil, fmt.Errorf("line item %q: unknown item type %q", item.Name, item.ItemType)
		}
	}

	return &scenario, nil
}
