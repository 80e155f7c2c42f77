package cmd

import (
	"fmt"
	"strconv"

	"weighttrend/internal/domain"

	"github.com/spf13/cobra"
)

var (
	addDate string
	addUnit string
)

var addCmd = &cobra.Command{
	Use:   "add <weight>",
	Short: "Record a weight for a date",
	Long: `Record a body weight. The date defaults to today; recording a second
weight for the same date replaces the first.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "Date of the measurement, YYYY-MM-DD (default: today)")
	addCmd.Flags().StringVarP(&addUnit, "unit", "u", "", "Unit of the weight, kg or lb (default: configured unit)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	weight, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("weight %q is not a number", args[0])
	}

	unitName := addUnit
	if unitName == "" {
		unitName = cfg.Unit
	}
	unit, err := domain.ParseUnit(unitName)
	if err != nil {
		return err
	}

	day := domain.Today()
	if addDate != "" {
		if day, err = domain.ParseDate(addDate); err != nil {
			return err
		}
	}

	svc, err := openServices(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.close() }()

	sample, err := svc.weight.RecordWeight(cmd.Context(), day, domain.ConvertWeight(weight, unit, domain.UnitKg))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "recorded %s %.1f %s\n", sample.Day, domain.ConvertWeight(sample.Weight, domain.UnitKg, unit), unit)
	return nil
}
