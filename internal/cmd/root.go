package cmd

import (
	"io"
	"os"

	"weighttrend/internal/config"
	"weighttrend/internal/logging"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	envName    string
	configPath string

	cfg *config.Config
	// logCloser closes the rotating log file after the command ran.
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "weighttrend",
	Short: "Body-weight log with trend analytics",
	Long: `weighttrend keeps a dated body-weight log and derives weekly and monthly
summaries, a moving average, a linear trend and a projected goal date from it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(envName, configPath)
		if err != nil {
			return err
		}
		cfg = c
		logCloser = logging.Setup(logging.LoggerSetupParams{
			LogFileName:   cfg.LogsPath,
			LogToStdout:   cfg.LogToStdout,
			LogLevel:      cfg.LogLevel,
			LogFormatJSON: cfg.LogFormatJSON,
		})
		log.Debugf("running in [%s] environment, storage [%s]", envName, cfg.Storage)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func closeLog() error {
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	return err
}

func Execute() {
	err := rootCmd.Execute()
	// PersistentPostRunE is skipped when a command fails.
	_ = closeLog()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&envName, "env", "development", "environment [dev | development | prod | production]")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config.toml", "path for the TOML config file")
}
