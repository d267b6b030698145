package constants

import "time"

// ключи конфигурации viper
const (
	ViperDatabaseURLKey         = "database.url"
	ViperLogLevelKey            = "logging.level"
	ViperLogFormatKey           = "logging.format"
	ViperLogOutputFileKey       = "logging.output_file"
	ViperBackfillConcurrencyKey = "backfill.concurrency"
	ViperBackfillMaxRetriesKey  = "backfill.max_retries"
	ViperBackfillRetryKey       = "backfill.retry_interval"
)

const (
	DefaultConfigFile = "config.yaml"

	DefaultBackfillConcurrency   = 8
	DefaultBackfillMaxRetries    = 5
	DefaultBackfillRetryInterval = 50 * time.Millisecond
)

const (
	OutputFormatPretty = "pretty"
	OutputFormatJSON   = "json"
)

// MoneyPrecision is the number of decimal places kept for cached money totals.
const MoneyPrecision = 2
