package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/scoop-report/pkg/adapters"
	"github.com/de-tools/scoop-report/pkg/render"
	"github.com/de-tools/scoop-report/pkg/services/config"
	"github.com/de-tools/scoop-report/pkg/services/report"
	"github.com/de-tools/scoop-report/pkg/store/photos"
	"github.com/de-tools/scoop-report/pkg/store/workbook"
)

var (
	cfgPath string
	format  string
	outPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "scoop-report",
		Short: "Generate the weekly sales report once and write it out",
		RunE:  runOnce,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "config.yaml",
		"Path to the YAML configuration file")
	rootCmd.Flags().StringVarP(&format, "format", "f", "json",
		"Output format: json, html or pdf")
	rootCmd.Flags().StringVarP(&outPath, "output", "o", "",
		"Output file (defaults to stdout)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runOnce(cmd *cobra.Command, _ []string) error {
	// .env is optional for one-shot runs.
	_ = godotenv.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	clock, err := cfg.Clock()
	if err != nil {
		return err
	}

	generator := report.NewGenerator(report.Options{
		Workbook:       workbook.Settings{Path: cfg.WorkbookPath},
		Photos:         photos.NewDirSource(photos.Settings{Dir: cfg.PhotoDir}),
		PhotoURLPrefix: cfg.PhotoURLPrefix,
		Now:            clock,
	})

	snapshot, err := generator.Generate(ctx)
	if err != nil {
		return err
	}
	apiReport := adapters.MapReportDomainToApi(snapshot)

	var out []byte
	switch format {
	case "json":
		out, err = json.MarshalIndent(apiReport, "", "  ")
	case "html", "pdf":
		var renderer *render.Renderer
		renderer, err = render.NewRenderer(render.Options{
			WkhtmltopdfPath: cfg.WkhtmltopdfPath,
			PhotoDir:        cfg.PhotoDir,
		})
		if err != nil {
			return err
		}
		if format == "html" {
			out, err = renderer.HTML(apiReport)
		} else {
			out, err = renderer.PDF(ctx, apiReport)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return err
	}

	if outPath == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(outPath, out, 0o644)
}
