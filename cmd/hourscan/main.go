// Package main provides the CLI entry point for hourscan.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/hourscan-go/pkg/hourscan"
	"github.com/ukaji3/hourscan-go/pkg/hourscan/config"
	"github.com/ukaji3/hourscan-go/pkg/hourscan/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	rootPath    string
	configPath  string
	outputPath  string
	format      string
	pretty      bool
	withReport  bool
	verbose     bool
	concurrency int
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "hourscan [identifier]",
		Short: "Find a student's extracurricular hours across a folder of workbooks",
		Long: `hourscan walks a folder tree of .xlsx/.xls workbooks, finds every row whose
code column matches the identifier, and groups the recorded hours by
category and by the year/month inferred from folder and file names.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&rootPath, "root", "r", "", "Folder to search (default: config root or $"+config.EnvRoot+")")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json, table, summary (default: table)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&withReport, "report", false, "Emit the full report (files, failures) with JSON output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().IntVar(&concurrency, "concurrency", 0, "Workbooks scanned at once (default: 1)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Root == "" {
		return fmt.Errorf("no folder selected: pass --root or set %s", config.EnvRoot)
	}

	opts := cfg.Options()
	opts.Logger = logger

	report, err := hourscan.SearchWithReport(cfg.Root, args[0], opts)
	if err != nil {
		return err
	}

	data, err := render(report, strings.ToLower(cfg.Format))
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(data))
	return nil
}

// loadConfig layers defaults, the config file, the environment and flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Root = rootPath
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = concurrency
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	cfg = cfg.MergeWithDefaults(config.Default())
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(level string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

func render(report *hourscan.Report, format string) ([]byte, error) {
	switch format {
	case "json":
		if withReport {
			return output.ToJSON(report, pretty)
		}
		return output.ToJSON(report.Results, pretty)
	case "summary":
		if len(report.Results) == 0 {
			return []byte(noRecords(report)), nil
		}
		return []byte(output.RenderSummary(output.Summarize(report.Results))), nil
	default:
		if len(report.Results) == 0 {
			return []byte(noRecords(report)), nil
		}
		return []byte(output.RenderTable(report.Results)), nil
	}
}

func noRecords(report *hourscan.Report) string {
	return fmt.Sprintf("No records found for %q in %d workbooks.", report.Identifier, len(report.Files))
}
