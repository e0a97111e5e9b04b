package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/gem-translator/internal/config"
	"github.com/jonathan/gem-translator/internal/export"
	"github.com/jonathan/gem-translator/internal/observability"
	"github.com/jonathan/gem-translator/internal/pipeline"
	"github.com/jonathan/gem-translator/internal/schemas"
	"github.com/jonathan/gem-translator/internal/types"
)

var translateCmd = &cobra.Command{
	Use:   "translate [taxonomy strings...]",
	Short: "Translate GEM taxonomy strings to EMS types and vulnerability classes",
	Long: "Translate one or more GEM v2.0 taxonomy strings, given as arguments or " +
		"via --in (one string per line), into EMS structural types and vulnerability " +
		"class distributions.",
	RunE: runTranslate,
}

var (
	translateInputFile  string
	translateOutputFile string
	translateConfigFile string
	translateFormat     string
	translateTopK       int
	translateTrace      bool
	translateWorkers    int
	translateVerbose    bool
)

func init() {
	translateCmd.Flags().StringVarP(&translateInputFile, "in", "i", "", "Path to input file with one taxonomy string per line")
	translateCmd.Flags().StringVarP(&translateOutputFile, "out", "o", "", "Path to output file (default: stdout)")
	translateCmd.Flags().StringVarP(&translateConfigFile, "config", "c", "", "Path to JSON config overlay")
	translateCmd.Flags().StringVar(&translateFormat, "format", "json", "Output format: json, csv or table")
	translateCmd.Flags().IntVar(&translateTopK, "top-k", pipeline.DefaultTopK, "Number of EMS candidates to report per input")
	translateCmd.Flags().BoolVar(&translateTrace, "trace", false, "Include the full rule trace in each candidate")
	translateCmd.Flags().IntVar(&translateWorkers, "workers", 0, "Concurrent workers for batch input (0 = number of CPUs)")
	translateCmd.Flags().BoolVarP(&translateVerbose, "verbose", "v", false, "Print per-input summaries to stderr")

	rootCmd.AddCommand(translateCmd)
}

func runTranslate(_ *cobra.Command, args []string) error {
	inputs, err := collectInputs(args)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no input: pass taxonomy strings as arguments or use --in")
	}

	if translateConfigFile != "" {
		if err := schemas.ValidateConfigFile(translateConfigFile); err != nil {
			return fmt.Errorf("config schema validation failed: %w", err)
		}
	}
	cfg, err := config.Load(translateConfigFile)
	if err != nil {
		return err
	}
	translator, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	opts := pipeline.Options{IncludeRuleTrace: translateTrace, TopK: translateTopK}

	results, err := translator.TranslateMany(context.Background(), inputs, opts, translateWorkers)
	if err != nil {
		return fmt.Errorf("batch translation failed: %w", err)
	}

	if translateVerbose {
		fmt.Fprintf(os.Stderr, "Run %s: translated %d input(s)\n", runID, len(results))
		printer := observability.NewPrinter(os.Stderr)
		for _, r := range results {
			printer.PrintResult(r)
			printer.PrintWarnings(r.Warnings)
		}
	}

	out := io.Writer(os.Stdout)
	if translateOutputFile != "" {
		f, err := os.Create(translateOutputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return writeResults(out, results)
}

func collectInputs(args []string) ([]string, error) {
	inputs := make([]string, 0, len(args))
	for _, a := range args {
		if s := strings.TrimSpace(a); s != "" {
			inputs = append(inputs, s)
		}
	}
	if translateInputFile == "" {
		return inputs, nil
	}

	f, err := os.Open(translateInputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return inputs, nil
}

func writeResults(out io.Writer, results []*types.Result) error {
	switch translateFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if len(results) == 1 {
			return enc.Encode(results[0])
		}
		return enc.Encode(results)
	case "csv":
		return export.WriteCSV(out, results)
	case "table":
		printer := observability.NewPrinter(out)
		for _, r := range results {
			printer.PrintResult(r)
			printer.PrintCandidates(r)
			printer.PrintModifiers(r)
			printer.PrintDistribution(r)
		}
		return nil
	}
	return fmt.Errorf("unknown format %q (want json, csv or table)", translateFormat)
}
