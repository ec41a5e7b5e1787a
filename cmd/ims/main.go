package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vladislavdragonenkov/ims/internal/app"
	"github.com/vladislavdragonenkov/ims/internal/version"
)

var (
	flagDataDir   string
	flagReportDir string
)

var rootCmd = &cobra.Command{
	Use:     "ims",
	Short:   "ims — inventory and supplier management",
	Long:    "Menu-driven inventory and supplier tracker: catalogs, purchase orders, sales, PDF reports.",
	Version: version.String(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.LoadConfig()
		if err != nil {
			return err
		}
		// Флаги перекрывают переменные окружения.
		if flagDataDir != "" {
			cfg.DataDir = flagDataDir
		}
		if flagReportDir != "" {
			cfg.ReportDir = flagReportDir
		}
		setupLogger(cfg.LogLevel)

		log.WithFields(log.Fields{
			"data_dir":   cfg.DataDir,
			"report_dir": cfg.ReportDir,
		}).Info("запускаем ims")

		return app.Run(cfg, os.Stdin, os.Stdout)
	},
	SilenceUsage: true,
}

// setupLogger настраивает формат и уровень логирования приложения.
func setupLogger(level string) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}

func init() {
	rootCmd.Flags().StringVar(&flagDataDir, "data-dir", "", "directory with CSV tables (overrides IMS_DATA_DIR)")
	rootCmd.Flags().StringVar(&flagReportDir, "report-dir", "", "directory for generated PDF reports (overrides IMS_REPORT_DIR)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
