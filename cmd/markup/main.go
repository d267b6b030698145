package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"github.com/ougirez/tendermarkup/internal/config"
	"github.com/ougirez/tendermarkup/internal/domain/dto"
	"github.com/ougirez/tendermarkup/internal/pkg/calc"
	"github.com/ougirez/tendermarkup/internal/pkg/constants"
	"github.com/ougirez/tendermarkup/internal/pkg/logger"
	"github.com/ougirez/tendermarkup/internal/pkg/output"
	"github.com/ougirez/tendermarkup/internal/pkg/store"
	"github.com/ougirez/tendermarkup/internal/pkg/store/xpgx"
	"github.com/ougirez/tendermarkup/internal/service/markup"
	"go.uber.org/zap"
)

const usage = `usage: markup [-config path] [-log-level level] <command> [flags]

commands:
  calc            price a scenario file without a database
  summary         recompute and cache a tender's commercial total
  positions       print per-position material/work totals
  backfill        recompute and store every BOQ line's coefficient
  apply-template  copy a template into a new active configuration
`

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	conf, err := config.Load(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}
	if *logLevel != "" {
		conf.Logging.Level = *logLevel
	}
	if err = logger.Init(conf.Logging); err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd, args := flag.Arg(0), flag.Args()[1:]
	ctx = logger.WithFields(ctx, zap.String("command", cmd))

	if err = run(ctx, conf, cmd, args, os.Stdout); err != nil {
		logger.Error(ctx, "command failed", zap.String("op", "main"), zap.Int("code", constants.CodeOf(err)), zap.Error(err))
		stop()
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, conf *config.Config, cmd string, args []string, w io.Writer) error {
	switch cmd {
	case "calc":
		return runCalc(args, w)
	case "summary", "positions", "backfill", "apply-template":
		return runWithStore(ctx, conf, cmd, args, w)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runCalc(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	input := fs.String("input", "", "path to scenario file (yaml, json, toml)")
	format := fs.String("format", constants.OutputFormatPretty, "output format: pretty, json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return errors.New("calc: -input is required")
	}
	if err := validateFormat(*format); err != nil {
		return err
	}

	scenario, err := config.LoadScenario(*input)
	if err != nil {
		return fmt.Errorf("config.LoadScenario: %w", err)
	}

	breakdown := calc.ComputeTenderFinancials(scenario.BaseCosts, scenario.Parameters)

	rows := make([]output.LineItemRow, 0, len(scenario.LineItems))
	buckets := make([]dto.Buckets, 0, len(scenario.LineItems))
	for _, item := range scenario.LineItems {
		cost := calc.ComputeLineItemCommercialCost(item.BaseCost, item.Role(), scenario.Parameters)
		rows = append(rows, output.LineItemRow{Name: item.Name, Role: item.Role(), LineItemCost: cost})
		buckets = append(buckets, cost.Buckets)
	}
	totals := calc.SumBuckets(buckets...)

	if *format == constants.OutputFormatJSON {
		return output.JSON(w, calcResult{Breakdown: breakdown, LineItems: rows, LineItemTotals: totals})
	}

	if err = output.PrettyBreakdown(w, breakdown); err != nil {
		return err
	}
	if len(rows) > 0 {
		return output.PrettyLineItems(w, rows, totals)
	}
	return nil
}

type calcResult struct {
	Breakdown      calc.FinancialBreakdown `json:"breakdown"`
	LineItems      []output.LineItemRow    `json:"lineItems,omitempty"`
	LineItemTotals dto.Buckets             `json:"lineItemTotals"`
}

func runWithStore(ctx context.Context, conf *config.Config, cmd string, args []string, w io.Writer) error {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	tender := fs.String("tender", "", "tender id")
	template := fs.String("template", "", "template id (apply-template only, default template when empty)")
	format := fs.String("format", constants.OutputFormatPretty, "output format: pretty, json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateFormat(*format); err != nil {
		return err
	}

	tenderID, err := uuid.Parse(*tender)
	if err != nil {
		return fmt.Errorf("%s: invalid -tender: %w", cmd, err)
	}
	templateID := uuid.Nil
	if *template != "" {
		if templateID, err = uuid.Parse(*template); err != nil {
			return fmt.Errorf("%s: invalid -template: %w", cmd, err)
		}
	}

	if conf.DatabaseURL == "" {
		return fmt.Errorf("%s: %s is not configured", cmd, constants.ViperDatabaseURLKey)
	}
	pool, err := xpgx.Connect(ctx, conf.DatabaseURL)
	if err != nil {
		return fmt.Errorf("xpgx.Connect: %w", err)
	}
	defer pool.Close()

	svc := markup.NewMarkupService(store.NewStore(pool), markup.Options{
		Concurrency:   conf.Backfill.Concurrency,
		MaxRetries:    conf.Backfill.MaxRetries,
		RetryInterval: conf.Backfill.RetryInterval,
	})
	ctx = logger.WithFields(ctx, zap.String("tender_id", tenderID.String()))

	var result interface{}
	switch cmd {
	case "summary":
		summary, err := svc.TenderFinancials(ctx, tenderID)
		if err != nil {
			return err
		}
		if *format == constants.OutputFormatPretty {
			return output.PrettySummary(w, summary)
		}
		result = summary
	case "positions":
		positions, err := svc.PositionTotals(ctx, tenderID)
		if err != nil {
			return err
		}
		if *format == constants.OutputFormatPretty {
			return output.PrettyPositions(w, positions)
		}
		result = positions
	case "backfill":
		report, err := svc.BackfillCoefficients(ctx, tenderID)
		if err != nil {
			return err
		}
		if *format == constants.OutputFormatPretty {
			return output.PrettyBackfill(w, report)
		}
		result = report
	case "apply-template":
		cfg, err := svc.ApplyTemplate(ctx, templateID, tenderID)
		if err != nil {
			return err
		}
		if *format == constants.OutputFormatPretty {
			_, err = fmt.Fprintf(w, "Activated configuration %q version %d (%s)\n", cfg.Name, cfg.Version, cfg.ID)
			return err
		}
		result = cfg
	}

	return output.JSON(w, result)
}

func validateFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatJSON:
		return nil
	}
	return fmt.Errorf("invalid output format: %s", format)
}
