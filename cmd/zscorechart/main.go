// Package main provides the CLI entry point for zscorechart.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Renegatto/line-chart-test-task/internal/log"
	"github.com/Renegatto/line-chart-test-task/pkg/zscore"
	"github.com/Renegatto/line-chart-test-task/pkg/zscore/export"
	"github.com/Renegatto/line-chart-test-task/pkg/zscore/models"
	"github.com/Renegatto/line-chart-test-task/pkg/zscore/output"
)

var (
	configFile string
	outputPath string
	pretty     bool
	xlsxPath   string
	fieldsDir  string
	allFields  bool
	fromCharts bool
	sampleOut  string
	sampleName string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "zscorechart [input.xlsx]",
		Short: "Highlight one-sigma deviations of spreadsheet series",
		Long: `zscorechart reads a numeric column from an Excel sheet, computes its
one-sigma bounds and outputs a gradient descriptor and per-point marker
colors for line-chart rendering.`,
		Args:          cobra.ExactArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.Flags().StringVar(&configFile, "config", "", "Config file (yaml, toml or json)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write a workbook with highlighted line charts")
	rootCmd.Flags().StringVar(&fieldsDir, "fields-dir", "", "Directory for per-field report files")
	rootCmd.Flags().BoolVar(&allFields, "all", false, "Highlight every numeric field")
	rootCmd.Flags().BoolVar(&fromCharts, "from-charts", false, "Highlight every line-chart series found in the workbook")
	addOptionFlags(rootCmd.Flags())

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "Write the demo dataset to an Excel file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := export.WriteSample(sampleOut, sampleName); err != nil {
				return fmt.Errorf("failed to write sample: %w", err)
			}
			log.Info().Str("path", sampleOut).Msg("sample written")
			return nil
		},
	}
	sampleCmd.Flags().StringVarP(&sampleOut, "output", "o", "sample.xlsx", "Output file path")
	sampleCmd.Flags().StringVar(&sampleName, "sheet", "Sheet1", "Sheet name")
	rootCmd.AddCommand(sampleCmd)

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	opts, v, err := loadOptions(cmd.Flags(), configFile)
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(level)

	if err := opts.Validate(); err != nil {
		return err
	}
	if xlsxPath != "" {
		if err := opts.ValidateSpreadsheet(); err != nil {
			return err
		}
	}

	multi := allFields || fromCharts || fieldsDir != ""
	if !multi && opts.Field == "" {
		return errors.New("--field is required unless --all, --from-charts or --fields-dir is set")
	}

	log.Debug().Str("path", inputPath).Str("sheet", opts.Sheet).Str("deviation", string(opts.Deviation)).Msg("reading workbook")

	var reports []models.Report
	switch {
	case fromCharts:
		reports, err = zscore.HighlightCharts(inputPath, opts)
	case multi && opts.Field == "":
		reports, err = zscore.HighlightFileAll(inputPath, opts)
	default:
		var report *models.Report
		report, err = zscore.HighlightFile(inputPath, opts)
		if report != nil {
			reports = []models.Report{*report}
		}
	}
	if err != nil {
		return fmt.Errorf("highlighting failed: %w", err)
	}

	for _, r := range reports {
		log.Info().
			Str("sheet", r.SheetName).
			Str("field", r.Field).
			Int("points", r.Count).
			Float64("lower", r.Bounds.Lower).
			Float64("upper", r.Bounds.Upper).
			Int("deviant", r.DeviantCount()).
			Msg("series highlighted")
	}

	// Serialize: a single report stays an object, several become a list
	var data []byte
	if len(reports) == 1 && !multi {
		data, err = encodeReport(&reports[0], opts.Format)
	} else {
		data, err = encodeReports(reports, opts.Format)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		log.Info().Str("path", outputPath).Msg("report written")
	} else if fieldsDir == "" {
		fmt.Println(string(data))
	}

	if fieldsDir != "" {
		if err := writeFieldFiles(reports, fieldsDir, opts.Format); err != nil {
			return fmt.Errorf("failed to write field files: %w", err)
		}
	}

	if xlsxPath != "" {
		if err := export.WriteReports(xlsxPath, reports); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		log.Info().Str("path", xlsxPath).Int("charts", len(reports)).Msg("workbook written")
	}

	return nil
}

func encodeReport(r *models.Report, format zscore.Format) ([]byte, error) {
	if format == zscore.FormatYAML {
		return output.ToYAML(r)
	}
	return output.ToJSON(r, pretty)
}

func encodeReports(rs []models.Report, format zscore.Format) ([]byte, error) {
	if format == zscore.FormatYAML {
		return output.ReportsToYAML(rs)
	}
	return output.ReportsToJSON(rs, pretty)
}

func writeFieldFiles(reports []models.Report, dir string, format zscore.Format) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	ext := ".json"
	if format == zscore.FormatYAML {
		ext = ".yaml"
	}

	for i := range reports {
		data, err := encodeReport(&reports[i], format)
		if err != nil {
			return err
		}

		name := export.SheetNameFor(reports[i].Field, i)
		if reports[i].SheetName != "" {
			name = export.SheetNameFor(reports[i].SheetName+"_"+reports[i].Field, i)
		}
		filename := filepath.Join(dir, name+ext)
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return err
		}
		log.Debug().Str("path", filename).Msg("field report written")
	}

	return nil
}
