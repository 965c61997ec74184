package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var reportFlags struct {
	year  int
	month int
}

func init() {
	reportCmd.Flags().IntVar(&reportFlags.year, "year", 0, "drill into one year")
	reportCmd.Flags().IntVar(&reportFlags.month, "month", 0, "drill into one month (needs --year)")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Browse finished orders by year, month and day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		switch {
		case reportFlags.year == 0 && reportFlags.month != 0:
			return fmt.Errorf("--month needs --year")
		case reportFlags.year == 0:
			years := a.col.FinishedYears()
			if len(years) == 0 {
				fmt.Println("no finished orders")
				return nil
			}
			for _, y := range years {
				fmt.Println(y)
			}
		case reportFlags.month == 0:
			months := a.col.FinishedMonths(reportFlags.year)
			if len(months) == 0 {
				fmt.Printf("no finished orders in %d\n", reportFlags.year)
				return nil
			}
			for _, m := range months {
				fmt.Printf("%d-%02d %s\n", reportFlags.year, int(m), m)
			}
		default:
			days, keys := a.col.FinishedByDay(reportFlags.year, time.Month(reportFlags.month))
			if len(keys) == 0 {
				fmt.Printf("no finished orders in %d-%02d\n", reportFlags.year, reportFlags.month)
				return nil
			}
			now := time.Now()
			for _, key := range keys {
				day := time.Unix(key, 0)
				fmt.Printf("--- %s ---\n", day.Format("02.01.2006"))
				var work int64
				for _, o := range days[key] {
					printOrder(o, now)
					work += o.NetWorkTime(now)
				}
				fmt.Printf("    net work: %s\n", fmtDur(work))
			}
		}
		return nil
	},
}
