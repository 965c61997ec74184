package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/orderclock/internal/export"
)

var exportFlags struct {
	format string
	out    string
}

func init() {
	exportCmd.Flags().StringVar(&exportFlags.format, "format", "csv", "csv or json")
	exportCmd.Flags().StringVar(&exportFlags.out, "out", "", "output file (required)")
	exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all orders with their time breakdowns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		orders := a.col.Orders()
		now := time.Now()

		switch exportFlags.format {
		case "csv":
			err = export.ToCSV(orders, now, exportFlags.out)
		case "json":
			err = export.ToJSON(orders, now, exportFlags.out)
		default:
			return fmt.Errorf("unknown format %q", exportFlags.format)
		}
		if err != nil {
			return err
		}
		fmt.Printf("exported %d orders to %s\n", len(orders), exportFlags.out)
		return nil
	},
}
