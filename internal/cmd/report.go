package cmd

import (
	"fmt"

	"weighttrend/internal/domain"

	"github.com/spf13/cobra"
)

var (
	reportToday string
	reportUnit  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the weight overview",
	Long: `Print current weight, BMI, weekly and monthly changes, the trend and the
projected goal date, and the most recent entries.`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportToday, "today", "", "Evaluate as of this date, YYYY-MM-DD (default: today)")
	reportCmd.Flags().StringVarP(&reportUnit, "unit", "u", "", "Display unit, kg or lb (default: configured unit)")
}

func runReport(cmd *cobra.Command, args []string) error {
	today := domain.Today()
	if reportToday != "" {
		d, err := domain.ParseDate(reportToday)
		if err != nil {
			return err
		}
		today = d
	}

	unitName := reportUnit
	if unitName == "" {
		unitName = cfg.Unit
	}
	unit, err := domain.ParseUnit(unitName)
	if err != nil {
		return err
	}

	svc, err := openServices(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.close() }()

	ov, err := svc.metrics.Overview(cmd.Context(), today)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderReport(ov, unit))
	return nil
}
