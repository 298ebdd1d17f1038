package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rollcv/rollcv/internal/accuracy"
	"github.com/rollcv/rollcv/internal/crossval"
	"github.com/rollcv/rollcv/internal/forecaster"
	"github.com/rollcv/rollcv/internal/logging"
	"github.com/rollcv/rollcv/internal/timeseries"
	"github.com/rollcv/rollcv/internal/xreg"
)

func main() {
	// Command line flags
	input := flag.String("input", "", "Input CSV file with a header row")
	column := flag.String("column", "", "Name of the series column (default: first column)")
	xregCols := flag.String("xreg", "", "Comma-separated regressor column names (optional)")
	method := flag.String("method", "naive", "Forecasting method")
	horizon := flag.Int("horizon", 1, "Forecast horizon")
	step := flag.Int("step", 1, "Spacing between forecast origins")
	minObs := flag.Int("min-obs", 12, "Minimum training observations before the first origin")
	window := flag.String("window", "fixed", "Training window kind (fixed, expanding)")
	frequency := flag.Int("frequency", 1, "Observations per seasonal cycle")
	metrics := flag.String("metrics", "", "Comma-separated metric names (default: all)")
	preprocess := flag.Bool("preprocess", false, "Estimate a Box-Cox transform per training window")
	ppMethod := flag.String("pp-method", "guerrero", "Box-Cox estimation method (guerrero, loglik)")
	lambda := flag.Float64("lambda", math.NaN(), "Fixed Box-Cox parameter (optional)")
	workers := flag.Int("workers", 0, "Concurrent origin workers (0 = GOMAXPROCS)")
	output := flag.String("output", "", "Output CSV file for the forecast matrix (optional)")
	listMethods := flag.Bool("list-methods", false, "List registered methods and exit")

	flag.Parse()

	if *listMethods {
		for _, name := range forecaster.List() {
			fmt.Println(name)
		}
		return
	}

	if *input == "" {
		log.Fatal("Error: -input parameter is required")
	}

	model, err := forecaster.Get(*method)
	if err != nil {
		log.Fatalf("Error: %v (available: %s)\n", err, strings.Join(forecaster.List(), ", "))
	}

	var metricNames []string
	if *metrics != "" {
		metricNames = splitAndTrim(*metrics, ",")
	}
	summary, err := accuracy.Selected(metricNames)
	if err != nil {
		log.Fatalf("Error: %v (available: %s)\n", err, strings.Join(accuracy.AllMetrics, ", "))
	}

	values, regs, err := readSeriesCSV(*input, *column, splitAndTrim(*xregCols, ","))
	if err != nil {
		log.Fatalf("Error reading data: %v\n", err)
	}

	fmt.Printf("Read %d observations from %s\n", len(values), *input)

	ctrl := crossval.Control{
		StepSize:    *step,
		MaxHorizon:  *horizon,
		MinObs:      *minObs,
		FixedWindow: *window == "fixed",
		Summary:     summary,
		PreProcess:  *preprocess,
		PPMethod:    *ppMethod,
		Workers:     *workers,
		Logger:      logging.NewDevelopment(),
	}
	if *window != "fixed" && *window != "expanding" {
		log.Fatalf("Error: invalid window %q. Valid options: fixed, expanding\n", *window)
	}
	if !math.IsNaN(*lambda) {
		ctrl.Lambda = lambda
	}

	series := timeseries.New(values, *frequency)
	result, err := crossval.Evaluate(context.Background(), series, regs, forecaster.Model(model), ctrl)
	if err != nil {
		log.Fatalf("Error: %v\n", err)
	}

	printAccuracy(result.Results)

	if *output != "" {
		if err := writeForecastCSV(*output, result); err != nil {
			log.Fatalf("Error writing forecasts: %v\n", err)
		}
		fmt.Printf("Forecast matrix written to: %s\n", *output)
	}
}

// readSeriesCSV reads the target series and optional regressor columns from a
// headered CSV file. Empty cells and "NA" become missing values.
func readSeriesCSV(path, column string, xregCols []string) ([]float64, *xreg.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("file has no data rows")
	}

	header := records[0]
	colIdx := 0
	if column != "" {
		colIdx = indexOf(header, column)
		if colIdx < 0 {
			return nil, nil, fmt.Errorf("column %q not found in header %v", column, header)
		}
	}

	xregIdx := make([]int, len(xregCols))
	for i, name := range xregCols {
		idx := indexOf(header, name)
		if idx < 0 {
			return nil, nil, fmt.Errorf("regressor column %q not found in header %v", name, header)
		}
		xregIdx[i] = idx
	}

	values := make([]float64, 0, len(records)-1)
	rows := make([][]float64, 0, len(records)-1)
	for i, record := range records[1:] {
		v, err := parseCell(record[colIdx])
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		values = append(values, v)

		if len(xregIdx) > 0 {
			row := make([]float64, len(xregIdx))
			for j, idx := range xregIdx {
				row[j], err = parseCell(record[idx])
				if err != nil {
					return nil, nil, fmt.Errorf("row %d, column %q: %w", i+1, xregCols[j], err)
				}
			}
			rows = append(rows, row)
		}
	}

	var regs *xreg.Table
	if len(xregCols) > 0 {
		regs, err = xreg.New(xregCols, rows)
		if err != nil {
			return nil, nil, err
		}
	}
	return values, regs, nil
}

func parseCell(cell string) (float64, error) {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" || strings.EqualFold(trimmed, "na") || strings.EqualFold(trimmed, "nan") {
		return timeseries.Missing, nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", cell)
	}
	return v, nil
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

// printAccuracy renders the per-horizon accuracy table to stdout.
func printAccuracy(rows []crossval.AccuracyRow) {
	if len(rows) == 0 {
		return
	}

	names := make([]string, 0, len(rows[0].Metrics))
	for _, name := range accuracy.AllMetrics {
		if _, ok := rows[0].Metrics[name]; ok {
			names = append(names, name)
		}
	}
	// Custom summaries may use names outside the built-in set
	for name := range rows[0].Metrics {
		if indexOf(names, name) < 0 {
			names = append(names, name)
		}
	}

	fmt.Printf("%-8s", "horizon")
	for _, name := range names {
		fmt.Printf("  %12s", name)
	}
	fmt.Println()

	for _, row := range rows {
		fmt.Printf("%-8s", row.Horizon)
		for _, name := range names {
			v := row.Metrics[name]
			if math.IsNaN(v) {
				fmt.Printf("  %12s", "NA")
			} else {
				fmt.Printf("  %12.4f", v)
			}
		}
		fmt.Println()
	}
}

// writeForecastCSV exports the forecast and actual matrices, one row per
// origin.
func writeForecastCSV(path string, result *crossval.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	maxHorizon := result.Forecasts.NumCols()
	header := []string{"origin"}
	for h := 1; h <= maxHorizon; h++ {
		header = append(header, fmt.Sprintf("forecast_h%d", h))
	}
	for h := 1; h <= maxHorizon; h++ {
		header = append(header, fmt.Sprintf("actual_h%d", h))
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, origin := range result.Origins {
		row := []string{strconv.Itoa(origin)}
		for _, v := range result.Forecasts[i] {
			row = append(row, formatCell(v))
		}
		for _, v := range result.Actuals[i] {
			row = append(row, formatCell(v))
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return nil
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return "NA"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// splitAndTrim splits a string and trims whitespace from each part
func splitAndTrim(s, sep string) []string {
	parts := make([]string, 0)
	for _, part := range strings.Split(s, sep) {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
