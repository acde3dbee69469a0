package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"titanicprep/pkg/chart"
	"titanicprep/pkg/config"
	"titanicprep/pkg/data"
	"titanicprep/pkg/dataprep"
	"titanicprep/pkg/logger"
	"titanicprep/pkg/pipeline"
)

//
// ---------------------- CLI FLAGS DOCUMENTATION ----------------------
//
// --config  : Optional YAML config file. TITANIC_* environment variables override it.
// --input   : Path to the raw passenger CSV (overrides input.path)
// --mode    : Output mode: "cli" (preview in console) or "csv" (save prepared file)
// --output  : Path to save prepared CSV (if mode=csv). Default = ./prepared_<input>
// --preview : Number of rows to preview in console
// --charts  : Directory for per-column bar charts (skipped when empty)
//
// Example:
//   go run ./cmd/examples/Titanic_Prep --input train.csv --mode csv --charts charts
//
// ---------------------------------------------------------------------
//

// previewData prints the first n rows, decoding categorical codes so the
// preview reads like the source data.
func previewData(df dataframe.DataFrame, labels *dataprep.LabelMap, n int) {
	if n > df.Nrow() {
		n = df.Nrow()
	}
	names := df.Names()

	for _, h := range names {
		fmt.Printf("%-18s", h)
	}
	fmt.Println()

	records := df.Records()[1:]
	for i := 0; i < n; i++ {
		for j, val := range records[i] {
			if c, err := strconv.Atoi(val); err == nil {
				if label, ok := labels.Decode(names[j], c); ok {
					val = fmt.Sprintf("%s(%s)", val, label)
				}
			}
			fmt.Printf("%-18s", val)
		}
		fmt.Println()
	}
}

func writeCharts(dir string, df dataframe.DataFrame, p *pipeline.Pipeline, log *slog.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, column := range p.Codes().Columns() {
		name := strings.Trim(strings.ToLower(column), "?")

		counts, err := chart.CategoryCounts(df, column, p.Labels())
		if err != nil {
			return err
		}
		path := filepath.Join(dir, name+"_counts.png")
		if err := chart.Save(counts, path); err != nil {
			return err
		}
		log.Info("chart saved", slog.String("path", path))

		rates, err := chart.SurvivalRates(df, column, p.Labels())
		if err != nil {
			// test splits ship without the Survived label
			log.Warn("survival chart skipped", slog.String("column", column), slog.String("reason", err.Error()))
			continue
		}
		path = filepath.Join(dir, name+"_survival.png")
		if err := chart.Save(rates, path); err != nil {
			return err
		}
		log.Info("chart saved", slog.String("path", path))
	}
	return nil
}

func main() {
	// ---- CLI Flags ----
	configPath := flag.String("config", "", "Path to YAML config file")
	inputPath := flag.String("input", "", "Path to raw passenger CSV")
	mode := flag.String("mode", "", "Output mode: cli or csv")
	outputPath := flag.String("output", "", "Path to save prepared CSV (if mode=csv)")
	previewRows := flag.Int("preview", -1, "Number of rows to preview in console")
	chartsDir := flag.String("charts", "", "Directory for bar charts")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *inputPath != "" {
		cfg.Input.Path = *inputPath
	}
	if *mode != "" {
		cfg.Output.Mode = *mode
	}
	if *outputPath != "" {
		cfg.Output.Path = *outputPath
	}
	if *previewRows >= 0 {
		cfg.Output.Preview = *previewRows
	}
	if *chartsDir != "" {
		cfg.Output.ChartsDir = *chartsDir
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging, os.Stderr)
	if err := run(cfg, log); err != nil {
		log.Error("preparation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	// ---- Load raw CSV ----
	raw, err := data.LoadCSV(cfg.Input.Path)
	if err != nil {
		return fmt.Errorf("load %s: %w", cfg.Input.Path, err)
	}
	log.Info("loaded raw data", slog.String("path", cfg.Input.Path),
		slog.Int("rows", raw.Nrow()), slog.Int("columns", raw.Ncol()))

	// ---- Prepare ----
	codes := dataprep.DefaultCategoricalMap()
	titles, err := cfg.TitleMap(codes)
	if err != nil {
		return err
	}
	p, err := pipeline.NewPipeline(raw,
		pipeline.WithCategoricalMap(codes),
		pipeline.WithTitleMap(titles),
		pipeline.WithChildMaxAge(cfg.Features.ChildMaxAge),
		pipeline.WithLogger(log),
	)
	if err != nil {
		return err
	}
	modeling, err := p.Run()
	if err != nil {
		return err
	}

	// ---- Charts ----
	if cfg.Output.ChartsDir != "" {
		if err := writeCharts(cfg.Output.ChartsDir, modeling, p, log); err != nil {
			return fmt.Errorf("charts: %w", err)
		}
	}

	// ---- Output ----
	if cfg.Output.Mode == "csv" {
		path := cfg.Output.Path
		if path == "" {
			path = filepath.Join(".", "prepared_"+filepath.Base(cfg.Input.Path))
		}
		if err := data.SaveCSV(path, modeling); err != nil {
			return err
		}
		log.Info("prepared data saved", slog.String("path", path), slog.Int("rows", modeling.Nrow()))
		return nil
	}

	fmt.Println("\nPreview of prepared data:")
	previewData(modeling, p.Labels(), cfg.Output.Preview)
	return nil
}
