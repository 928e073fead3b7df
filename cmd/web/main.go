package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	handlers "github.com/de-tools/scoop-report/pkg/handlers/report"
	"github.com/de-tools/scoop-report/pkg/render"
	"github.com/de-tools/scoop-report/pkg/server"
	"github.com/de-tools/scoop-report/pkg/services/config"
	"github.com/de-tools/scoop-report/pkg/services/report"
	"github.com/de-tools/scoop-report/pkg/store/photos"
	"github.com/de-tools/scoop-report/pkg/store/workbook"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the weekly sales report dashboard",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "config.yaml",
		"Path to the YAML configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	clock, err := cfg.Clock()
	if err != nil {
		return err
	}

	renderer, err := render.NewRenderer(render.Options{
		WkhtmltopdfPath: cfg.WkhtmltopdfPath,
		PhotoDir:        cfg.PhotoDir,
	})
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	generator := report.NewGenerator(report.Options{
		Workbook:       workbook.Settings{Path: cfg.WorkbookPath},
		Photos:         photos.NewDirSource(photos.Settings{Dir: cfg.PhotoDir}),
		PhotoURLPrefix: cfg.PhotoURLPrefix,
		Now:            clock,
	})

	logger.Info().Str("workbook", cfg.WorkbookPath).Msg("configuration loaded")

	host := cfg.Server.Host
	port := cfg.Server.Port
	if v := os.Getenv("SERVER_HOST"); v != "" {
		host = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		port = v
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Report:         handlers.NewHandler(generator, renderer),
			PhotoDir:       cfg.PhotoDir,
			PhotoURLPrefix: cfg.PhotoURLPrefix,
		},
	})

	return api.Start()
}
